// internal/fileio/fileio.go

// Package fileio is the single place the tools touch the filesystem:
// gzip-transparent open/create plus the pre-flight checks the pipeline
// runs before spawning work on large inputs.
package fileio

import (
	"fmt"
	"os"
	"strings"

	"github.com/shenwei356/xopen"
)

// Open reads path, decompressing .gz transparently; "-" is stdin.
func Open(path string) (*xopen.Reader, error) {
	return xopen.Ropen(path)
}

// Create writes path, compressing .gz transparently; "-" is stdout.
func Create(path string) (*xopen.Writer, error) {
	return xopen.Wopen(path)
}

// CheckForExistence fails if any named file is missing.
func CheckForExistence(paths ...string) error {
	var missing []string
	for _, p := range paths {
		if fi, err := os.Stat(p); err != nil || fi.IsDir() {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("file(s) missing: %s", strings.Join(missing, " "))
	}
	return nil
}

// CheckForNonempty fails if any named file is missing or empty.
func CheckForNonempty(paths ...string) error {
	if err := CheckForExistence(paths...); err != nil {
		return err
	}
	var empty []string
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && fi.Size() == 0 {
			empty = append(empty, p)
		}
	}
	if len(empty) > 0 {
		return fmt.Errorf("file(s) empty: %s", strings.Join(empty, " "))
	}
	return nil
}

// CheckForCollisions fails if any named destination already exists.
func CheckForCollisions(paths ...string) error {
	var taken []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			taken = append(taken, p)
		}
	}
	if len(taken) > 0 {
		return fmt.Errorf("output file(s) already exist: %s", strings.Join(taken, " "))
	}
	return nil
}

// IsExecutable reports whether path names an executable regular file.
func IsExecutable(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir() && fi.Mode()&0o111 != 0
}
