// File: lixenwraith/benchconf/symbols_other.go

//go:build !linux

package benchconf

import "syscall"

// Only the open flags every supported platform defines are listed here.
var openFlagConstants = map[string]int{
	"O_RDONLY":   syscall.O_RDONLY,
	"O_WRONLY":   syscall.O_WRONLY,
	"O_RDWR":     syscall.O_RDWR,
	"O_APPEND":   syscall.O_APPEND,
	"O_CREAT":    syscall.O_CREAT,
	"O_EXCL":     syscall.O_EXCL,
	"O_TRUNC":    syscall.O_TRUNC,
	"O_SYNC":     syscall.O_SYNC,
	"O_NONBLOCK": syscall.O_NONBLOCK,
	"O_NOCTTY":   syscall.O_NOCTTY,
}

// Permission bits are fixed by POSIX.
var permissionConstants = map[string]int{
	"S_ISUID": 0o4000,
	"S_ISGID": 0o2000,
	"S_ISVTX": 0o1000,
	"S_IRWXU": 0o700,
	"S_IRUSR": 0o400,
	"S_IWUSR": 0o200,
	"S_IXUSR": 0o100,
	"S_IRWXG": 0o070,
	"S_IRGRP": 0o040,
	"S_IWGRP": 0o020,
	"S_IXGRP": 0o010,
	"S_IRWXO": 0o007,
	"S_IROTH": 0o004,
	"S_IWOTH": 0o002,
	"S_IXOTH": 0o001,
}
