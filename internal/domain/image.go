package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AllowedImageExtensions lists accepted review photo extensions, lower case with dot.
var AllowedImageExtensions = []string{".jpeg", ".jpg", ".png", ".gif"}

// ImageFileName builds the deterministic photo name "{reviewID}{ext}".
func ImageFileName(reviewID int64, ext string) string {
	return fmt.Sprintf("%d%s", reviewID, ext)
}

// NormalizeImageExtension returns the lower-cased extension of filename and whether
// it is in AllowedImageExtensions.
func NormalizeImageExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedImageExtensions {
		if ext == allowed {
			return ext, true
		}
	}
	return ext, false
}

// ImageContentType maps an allowed extension to its MIME type.
func ImageContentType(ext string) string {
	switch ext {
	case ".jpeg", ".jpg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	}
	return "application/octet-stream"
}
