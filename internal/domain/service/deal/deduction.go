package service

import (
	"math"

	"golden_traff/internal/domain/entity"
)

// Константы удержаний исходной финмодели: 6% налог, фиксированная оплата
// лидов и выплата сотрудникам.
const (
	taxRate         = 0.06
	leadsDeduction  = 500
	employeesDeduct = 2000
)

// CalculateDeductions раскладывает валовую сумму на налог, оплату лидов,
// выплаты сотрудникам и чистый остаток. Чистая функция: отрицательные и
// нулевые суммы не отбрасываются, а просто считаются арифметически.
func CalculateDeductions(amount int64) entity.Deductions {
	tax := int64(math.Round(float64(amount) * taxRate))
	total := tax + leadsDeduction + employeesDeduct

	return entity.Deductions{
		Tax:             tax,
		Leads:           leadsDeduction,
		Employees:       employeesDeduct,
		TotalDeductions: total,
		Final:           amount - total,
	}
}
