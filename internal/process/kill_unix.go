//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, which
// takes down Chrome together with its renderer and GPU helpers.
func KillProcessGroup(pid int) {
	// Errors ignored: the launcher kills the leader itself afterwards.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
