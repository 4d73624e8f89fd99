package util

import (
	"errors"
	"path"
	"strings"
)

// ErrInvalidKey is returned for object keys that are empty or escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// CleanKey normalizes an object key to a slash-separated relative path and
// rejects traversal patterns.
func CleanKey(key string) (string, error) {
	s := strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	if s == "" {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(s, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	s = strings.TrimLeft(path.Clean("/"+s), "/")
	if s == "" || s == "." {
		return "", ErrInvalidKey
	}
	return s, nil
}
