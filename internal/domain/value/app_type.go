package value

// AppType — вариант приложения, от него зависит фиксированная сумма сделки
// и проверки владельца.
type AppType string

const (
	AppTypeAdmin AppType = "admin"
	AppTypeTeam  AppType = "team"
)

func (t AppType) String() string {
	return string(t)
}

// ParseAppType трактует любой неизвестный вариант как admin — так вела себя
// исходная админка, где поле не передавалось вовсе.
func ParseAppType(raw string) AppType {
	if AppType(raw) == AppTypeTeam {
		return AppTypeTeam
	}

	return AppTypeAdmin
}
