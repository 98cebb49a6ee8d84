package value

import "strings"

// Username — отображаемый хэндл продавца, всегда с ведущей @.
type Username string

const defaultUsername Username = "@user"

func (u Username) String() string {
	return string(u)
}

// Key возвращает ключ для дедупликации: без регистра.
func (u Username) Key() string {
	return strings.ToLower(string(u))
}

// NormalizeUsername приводит пользовательский ввод к канонической форме:
// обрезаем пробелы, снимаем ведущую @ и ставим её обратно, пустой ввод
// превращается в @user.
func NormalizeUsername(raw string) Username {
	name := strings.TrimPrefix(strings.TrimSpace(raw), "@")
	if name == "" {
		return defaultUsername
	}

	return Username("@" + name)
}
