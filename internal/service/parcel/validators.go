package parcel

import "strings"

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "assigned", "in_transit", "delivered", "failed", "cancelled":
		return true
	default:
		return false
	}
}

func isValidParcelType(parcelType string) bool {
	switch parcelType {
	case "document", "small", "medium", "large":
		return true
	default:
		return false
	}
}

func isValidPaymentType(paymentType string) bool {
	switch paymentType {
	case "cod", "prepaid":
		return true
	default:
		return false
	}
}
