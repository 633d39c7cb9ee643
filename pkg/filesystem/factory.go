package filesystem

import (
	"fmt"
)

// Connector opens the FileSystem for a remote location. Tests substitute it
// to avoid dialing real servers.
type Connector func(loc Location) (FileSystem, func(), error)

// CreateFileSystem creates a FileSystem for the given location string.
// Returns (filesystem, path, closer, error):
//   - filesystem: the platform to operate on
//   - path: the path to use with that platform (URL prefix stripped)
//   - closer: releases the SFTP session; a no-op for local paths
func CreateFileSystem(location string) (FileSystem, string, func(), error) {
	return CreateFileSystemWith(location, ConnectSFTP)
}

// CreateFileSystemWith is CreateFileSystem with an explicit remote connector.
func CreateFileSystemWith(location string, connect Connector) (FileSystem, string, func(), error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, "", nil, err
	}

	if !loc.Remote {
		return NewRealFileSystem(), loc.Path, func() {}, nil
	}

	fs, closer, err := connect(loc)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w", loc.User, loc.Host, loc.Port, err)
	}

	return fs, loc.Path, closer, nil
}

// ConnectSFTP dials loc and returns an SFTPFileSystem.
func ConnectSFTP(loc Location) (FileSystem, func(), error) {
	return SFTPConnector("")(loc)
}

// SFTPConnector returns a Connector that verifies host keys against
// knownHostsFile (~/.ssh/known_hosts when empty).
func SFTPConnector(knownHostsFile string) Connector {
	return func(loc Location) (FileSystem, func(), error) {
		conn, err := Connect(ConnectOptions{
			Host:           loc.Host,
			Port:           loc.Port,
			User:           loc.User,
			KnownHostsFile: knownHostsFile,
		})
		if err != nil {
			return nil, nil, err
		}

		fs := NewSFTPFileSystem(conn)

		return fs, func() { _ = fs.Close() }, nil
	}
}

// CreateFileSystemPair creates filesystems for a source and a destination.
// The returned closer releases both.
func CreateFileSystemPair(sourceLocation, destLocation string) (
	sourceFS FileSystem,
	destFS FileSystem,
	srcPath string,
	dstPath string,
	closer func(),
	err error,
) {
	return CreateFileSystemPairWith(sourceLocation, destLocation, ConnectSFTP)
}

// CreateFileSystemPairWith is CreateFileSystemPair with an explicit remote
// connector. Two local locations share one FileSystem, so identity checks
// between them stay meaningful.
func CreateFileSystemPairWith(sourceLocation, destLocation string, connect Connector) (
	sourceFS FileSystem,
	destFS FileSystem,
	srcPath string,
	dstPath string,
	closer func(),
	err error,
) {
	var srcCloser, dstCloser func()

	sourceFS, srcPath, srcCloser, err = CreateFileSystemWith(sourceLocation, connect)
	if err != nil {
		return nil, nil, "", "", nil, fmt.Errorf("failed to create source filesystem: %w", err)
	}

	destFS, dstPath, dstCloser, err = CreateFileSystemWith(destLocation, connect)
	if err != nil {
		srcCloser()
		return nil, nil, "", "", nil, fmt.Errorf("failed to create destination filesystem: %w", err)
	}

	if isLocal(sourceFS) && isLocal(destFS) {
		destFS = sourceFS
	}

	closer = func() {
		srcCloser()
		dstCloser()
	}

	return sourceFS, destFS, srcPath, dstPath, closer, nil
}

func isLocal(fs FileSystem) bool {
	_, ok := fs.(*RealFileSystem)
	return ok
}
