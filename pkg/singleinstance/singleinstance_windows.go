//go:build windows

package singleinstance

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Acquire creates a named mutex in the per-session namespace. The mutex
// outliving us is fine: Windows destroys it with the last handle.
func Acquire(name string) (Release, error) {
	mutexName, err := windows.UTF16PtrFromString("Local\\" + name)
	if err != nil {
		return nil, fmt.Errorf("mutex name: %w", err)
	}

	handle, err := windows.CreateMutex(nil, false, mutexName)
	if err == windows.ERROR_ALREADY_EXISTS {
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		return nil, ErrAlreadyRunning
	}
	if err != nil {
		return nil, fmt.Errorf("create mutex: %w", err)
	}

	return func() {
		windows.CloseHandle(handle)
	}, nil
}
