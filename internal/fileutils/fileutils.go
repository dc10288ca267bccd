// Package fileutils provides the file checks run before a statement is read.
package fileutils

import (
	"os"

	"fjacquet/ccstmt-csv/internal/parsererror"
)

// ValidateInputFile checks that filePath names a regular file that can be
// opened for reading.
func ValidateInputFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &parsererror.ValidationError{FilePath: filePath, Reason: "file does not exist"}
		}
		return &parsererror.ValidationError{FilePath: filePath, Reason: err.Error()}
	}
	if info.IsDir() {
		return &parsererror.ValidationError{FilePath: filePath, Reason: "is a directory"}
	}

	f, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided statement paths
	if err != nil {
		return &parsererror.ValidationError{FilePath: filePath, Reason: err.Error()}
	}
	return f.Close()
}
