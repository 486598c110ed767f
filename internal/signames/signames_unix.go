//go:build unix

// internal/signames/signames_unix.go
package signames

import "syscall"

func init() {
	signals["USR1"] = syscall.SIGUSR1
	signals["USR2"] = syscall.SIGUSR2
	signals["SYS"] = syscall.SIGSYS
	signals["CONT"] = syscall.SIGCONT
	signals["TSTP"] = syscall.SIGTSTP
	signals["TTIN"] = syscall.SIGTTIN
	signals["TTOU"] = syscall.SIGTTOU
	signals["XCPU"] = syscall.SIGXCPU
	signals["XFSZ"] = syscall.SIGXFSZ
	signals["VTALRM"] = syscall.SIGVTALRM
	signals["PROF"] = syscall.SIGPROF
	signals["WINCH"] = syscall.SIGWINCH
	signals["URG"] = syscall.SIGURG
	signals["CHLD"] = syscall.SIGCHLD
}
