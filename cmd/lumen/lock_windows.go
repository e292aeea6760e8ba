//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/dixieflatline76/Lumen/config"
	"github.com/dixieflatline76/Lumen/util/log"
)

var mutex windows.Handle

// acquireLock creates a named mutex. It reports false when another
// instance already owns it.
func acquireLock() (bool, error) {
	name, err := windows.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	mutex, err = windows.CreateMutex(nil, false, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		windows.CloseHandle(mutex)
		mutex = 0
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating mutex: %w", err)
	}
	return true, nil
}

// releaseLock closes the mutex handle.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
}
