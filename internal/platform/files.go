package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/yt-downloader-cli/internal/filesystem"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// File extensions left behind by interrupted downloads
var (
	SkippedExtensions = []string{".part", ".ytdl"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path is empty")
	}
	exists, err := filesystem.API().DirExists(dirPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dirPath, err)
	}
	if exists {
		return nil
	}
	if isFile, _ := filesystem.API().Exists(dirPath); isFile {
		return fmt.Errorf("output path exists and is not a directory: %s", dirPath)
	}
	return filesystem.API().MkdirAll(dirPath, DefaultDirPermissions)
}

// SwapExtension replaces the extension of path with ext (without dot)
func SwapExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// FindFirstExisting returns the first path that exists on disk, skipping
// partial download artifacts. It returns "" when none exist.
func FindFirstExisting(paths ...string) string {
	for _, p := range paths {
		if p == "" || isPartial(p) {
			continue
		}
		if ok, _ := filesystem.API().Exists(p); ok {
			return p
		}
	}
	return ""
}

func isPartial(path string) bool {
	for _, ext := range SkippedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
