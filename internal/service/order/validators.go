package order

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidUserID(userID string) bool {
	return strings.TrimSpace(userID) != ""
}
