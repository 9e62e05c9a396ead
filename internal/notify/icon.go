package notify

import "strings"

// IconFor returns the freedesktop icon name for a notification type key.
// Unknown keys get the information icon.
func IconFor(typeKey string) string {
	switch strings.ToUpper(typeKey) {
	case "SUCCESS":
		return "emblem-ok-symbolic"
	case "ERROR":
		return "dialog-error"
	case "WARNING":
		return "dialog-warning"
	default:
		return "dialog-information"
	}
}
