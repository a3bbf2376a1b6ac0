package user

import "strings"

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidRole(role string) bool {
	switch role {
	case "customer", "deliveryAgent", "admin":
		return true
	default:
		return false
	}
}
