//go:build !linux

package lockhint

// New returns a no-op announcer: only logind consumes the locked hint.
func New() (Announcer, error) {
	return noop{}, ErrUnavailable
}
