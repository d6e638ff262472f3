// Package filex contains filesystem helpers for upload handling.
package filex

import (
	"fmt"
	"net/http"
	"os"
)

// ReadUpload reads the file at path and sniffs its content type from the
// first bytes, falling back to application/octet-stream for unknown formats.
// Intended for avatar and listing-image uploads, which are small enough to
// hold in memory.
func ReadUpload(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read upload %s: %w", path, err)
	}
	return data, http.DetectContentType(data), nil
}
