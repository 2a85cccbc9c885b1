// Package validation contiene los predicados puros sobre los campos de un
// candidato a propietario. Ninguna regla toca estado persistido; el orden en
// que se evalúan lo decide el caso de uso.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// MinAdultAge edad mínima para registrarse como propietario.
const MinAdultAge = 18

var (
	documentRegex = regexp.MustCompile(`^[0-9]+$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{1,12}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

// Required reporta si el valor no es vacío después de recortar espacios.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// OnlyDigits reporta si el documento de identidad contiene solo dígitos.
func OnlyDigits(value string) bool {
	return documentRegex.MatchString(value)
}

// PhoneShape reporta si el celular es numérico, con '+' inicial opcional y
// máximo 13 caracteres en total (ej. +573005698325).
func PhoneShape(value string) bool {
	return phoneRegex.MatchString(value)
}

// EmailShape reporta si el correo tiene estructura local@dominio.tld.
func EmailShape(value string) bool {
	return emailRegex.MatchString(value)
}

// DateShape reporta si la fecha viene en formato YYYY-MM-DD.
func DateShape(value string) bool {
	return dateRegex.MatchString(value)
}

// NotFuture reporta si la fecha de nacimiento no es posterior a now.
// La comparación es por día calendario, no por instante.
func NotFuture(birthDate, now time.Time) bool {
	return !dateOnly(birthDate).After(dateOnly(now))
}

// IsAdult reporta si la persona ya cumplió MinAdultAge años. El límite es
// estricto: quien cumple 18 exactamente hoy todavía no es mayor de edad.
func IsAdult(birthDate, now time.Time) bool {
	return dateOnly(birthDate).Before(dateOnly(now).AddDate(-MinAdultAge, 0, 0))
}

// dateOnly descarta hora y zona para comparar fechas calendario.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
