package entity

// Deductions — разложение валовой суммы сделки на удержания и остаток.
type Deductions struct {
	Tax             int64
	Leads           int64
	Employees       int64
	TotalDeductions int64
	Final           int64
}

// SummaryWindow — свёртка по одному временному окну.
type SummaryWindow struct {
	Sum       int64
	Tax       int64
	Leads     int64
	Employees int64
}

// Final — чистый остаток окна после всех удержаний.
func (w SummaryWindow) Final() int64 {
	return w.Sum - w.Tax - w.Leads - w.Employees
}

// Summary — свёртки за всё время, календарный месяц и текущий день.
// Окна включающие: сегодняшняя сделка учитывается во всех трёх.
type Summary struct {
	Total SummaryWindow
	Month SummaryWindow
	Day   SummaryWindow
}
