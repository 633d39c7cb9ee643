//go:build !unix && !windows

package errors

import "strings"

func isNotEmpty(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "not empty")
}
