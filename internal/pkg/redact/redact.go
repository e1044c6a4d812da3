// redact маскирует чувствительные данные перед записью в лог.
package redact

import "strings"

// Email маскирует e-mail: первые две руны локальной части + "***", домен без изменений.
// Строка без ровно одного '@' заменяется на "***".
//
//	"foobar@example.com" -> "fo***@example.com"
//	"ab@ex.com"          -> "***@ex.com"
func Email(s string) string {
	if strings.Count(s, "@") != 1 {
		return "***"
	}

	i := strings.IndexByte(s, '@')
	local, domain := s[:i], s[i+1:]

	lr := []rune(local)
	if len(lr) > 2 {
		local = string(lr[:2]) + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

// Key оставляет от ключа объекта только префикс каталога пользователя.
//
//	"app/users/42/cover/uuid_a.png" -> "app/users/42/***"
func Key(k string) string {
	parts := strings.Split(k, "/")
	for i, p := range parts {
		if p == "users" && i+1 < len(parts) {
			return strings.Join(parts[:i+2], "/") + "/***"
		}
	}

	return "***"
}
