// Package startup registers and deregisters the application to run at
// login. Windows uses the HKCU Run registry key, Linux an XDG autostart
// desktop entry; other platforms report ErrUnsupported.
package startup

import "errors"

const appName = "FieldLock"

// ErrUnsupported is returned on platforms without a login-autostart
// mechanism this package knows how to drive.
var ErrUnsupported = errors.New("auto-start not supported on this platform")
