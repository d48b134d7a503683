//go:build unix

package exec

import "syscall"

// detached puts the child in its own session so it survives our terminal.
func detached() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
