//go:build !windows && !linux

package startup

// IsEnabled checks if auto-start is enabled.
func IsEnabled() bool {
	return false
}

// Enable adds the binary to login startup.
func Enable() error {
	return ErrUnsupported
}

// Disable removes the binary from login startup.
func Disable() error {
	return nil
}
