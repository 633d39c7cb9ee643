//go:build windows

package filesystem

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// errno values for conditions some platforms report less precisely.
var (
	errNotDir   = syscall.ENOTDIR
	errNotEmpty = syscall.ENOTEMPTY
)

func linkCount(path string) (uint64, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, &os.PathError{Op: "linkcount", Path: path, Err: err}
	}

	handle, err := windows.CreateFile(
		name,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return 0, &os.PathError{Op: "linkcount", Path: path, Err: err}
	}
	defer func() { _ = windows.CloseHandle(handle) }()

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(handle, &info); err != nil {
		return 0, &os.PathError{Op: "linkcount", Path: path, Err: err}
	}

	return uint64(info.NumberOfLinks), nil
}

func diskSpace(path string) (SpaceInfo, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return SpaceInfo{}, &os.PathError{Op: "space", Path: path, Err: err}
	}

	var available, capacity, free uint64
	if err := windows.GetDiskFreeSpaceEx(name, &available, &capacity, &free); err != nil {
		return SpaceInfo{}, &os.PathError{Op: "space", Path: path, Err: err}
	}

	return SpaceInfo{Capacity: capacity, Free: free, Available: available}, nil
}
