//go:build !linux

package platform

import (
	"fmt"
	"runtime"
)

// NewDefaultBackend reports that no native backend exists for this OS yet.
func NewDefaultBackend(string) (Backend, func(), error) {
	return nil, nil, fmt.Errorf("no native window backend for %s", runtime.GOOS)
}
