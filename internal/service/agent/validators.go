package agent

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidEmail keeps the check shallow: non-empty local part and a dotted
// domain. Deliverability is the mail layer's problem.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
