package filesystem

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSFTPPort is used when an sftp:// URL has no port.
const DefaultSFTPPort = 22

// Location is either a local path or a path on an SFTP server.
type Location struct {
	Remote bool

	Host string
	Port int
	User string

	// Path is the local path, or the remote path for SFTP locations.
	Path string
}

// ParseLocation detects whether s is a local path or an SFTP URL.
// SFTP URLs have the format sftp://user@host[:port]/path:
//   - sftp://joe@myserver.com/data   → data (relative to the login directory)
//   - sftp://joe@myserver.com//srv   → /srv
//   - sftp://joe@myserver.com        → .
func ParseLocation(s string) (Location, error) {
	if !strings.HasPrefix(s, "sftp://") {
		return Location{Path: s}, nil
	}

	return parseSFTPURL(s)
}

// String renders the location back into the form ParseLocation accepts.
func (l Location) String() string {
	if !l.Remote {
		return l.Path
	}

	remotePath := l.Path
	if remotePath == "." {
		remotePath = ""
	}

	return fmt.Sprintf("sftp://%s@%s:%d/%s", l.User, l.Host, l.Port, remotePath)
}

// unexported variables.
var (
	errMissingHost = errors.New("SFTP URL must include host")
	errMissingUser = errors.New("SFTP URL must include username (sftp://user@host/path)")
)

func parseSFTPURL(sftpURL string) (Location, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return Location{}, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return Location{}, errMissingUser
	}

	host := u.Hostname()
	if host == "" {
		return Location{}, errMissingHost
	}

	port := DefaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return Location{}, fmt.Errorf("invalid port number: %w", err)
		}
	}

	remotePath := u.Path

	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return Location{
		Remote: true,
		Host:   host,
		Port:   port,
		User:   u.User.Username(),
		Path:   remotePath,
	}, nil
}
