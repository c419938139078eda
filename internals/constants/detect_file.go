package constants

import (
	"path/filepath"
	"strings"
)

// ImageExt returns the lower-cased extension of filename when it is one of
// the image formats the photo endpoint re-encodes, "" otherwise.
func ImageExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
		return ext
	default:
		return ""
	}
}
