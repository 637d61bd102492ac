// File: lixenwraith/benchconf/symbols_linux.go

//go:build linux

package benchconf

import "golang.org/x/sys/unix"

var openFlagConstants = map[string]int{
	"O_RDONLY":   unix.O_RDONLY,
	"O_WRONLY":   unix.O_WRONLY,
	"O_RDWR":     unix.O_RDWR,
	"O_APPEND":   unix.O_APPEND,
	"O_CREAT":    unix.O_CREAT,
	"O_EXCL":     unix.O_EXCL,
	"O_TRUNC":    unix.O_TRUNC,
	"O_DSYNC":    unix.O_DSYNC,
	"O_RSYNC":    unix.O_RSYNC,
	"O_SYNC":     unix.O_SYNC,
	"O_NDELAY":   unix.O_NDELAY,
	"O_NONBLOCK": unix.O_NONBLOCK,
	"O_NOCTTY":   unix.O_NOCTTY,
	"O_DIRECT":   unix.O_DIRECT,
	"O_NOATIME":  unix.O_NOATIME,
}

var permissionConstants = map[string]int{
	"S_ISUID": unix.S_ISUID,
	"S_ISGID": unix.S_ISGID,
	"S_ISVTX": unix.S_ISVTX,
	"S_IRWXU": unix.S_IRWXU,
	"S_IRUSR": unix.S_IRUSR,
	"S_IWUSR": unix.S_IWUSR,
	"S_IXUSR": unix.S_IXUSR,
	"S_IRWXG": unix.S_IRWXG,
	"S_IRGRP": unix.S_IRGRP,
	"S_IWGRP": unix.S_IWGRP,
	"S_IXGRP": unix.S_IXGRP,
	"S_IRWXO": unix.S_IRWXO,
	"S_IROTH": unix.S_IROTH,
	"S_IWOTH": unix.S_IWOTH,
	"S_IXOTH": unix.S_IXOTH,
}
