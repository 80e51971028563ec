// internal/app/system/status/status.go
//
// Package status holds the user account status values.
package status

const (
	Active   = "active"
	Disabled = "disabled"
)

// IsValid checks if a value is a recognized account status.
func IsValid(value string) bool {
	return value == Active || value == Disabled
}
