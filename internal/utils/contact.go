package utils

import "regexp"

var (
	emailRe   = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	nonDigits = regexp.MustCompile(`\D`)
)

// VerifyEmail: базовая проверка формата, без DNS и прочего.
func VerifyEmail(email string) bool {
	return emailRe.MatchString(email)
}

// StripPhoneNumber оставляет в номере только цифры.
func StripPhoneNumber(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}
