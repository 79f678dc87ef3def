package imaging

import (
	"os"
	"path/filepath"
	"strings"
)

// ArtifactSuffix is appended to an image path to name its BlurHash file.
const ArtifactSuffix = ".bh"

// imageExtensions are the lowercase extensions treated as images.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
}

// IsImageFile reports whether path has a supported image extension.
// The comparison is case-insensitive.
func IsImageFile(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ArtifactPath returns the path of the BlurHash file for an image:
// "photo.jpg" becomes "photo.jpg.bh".
func ArtifactPath(path string) string {
	return path + ArtifactSuffix
}

// ArtifactExists reports whether the BlurHash file for path is present.
func ArtifactExists(path string) bool {
	_, err := os.Stat(ArtifactPath(path))
	return err == nil
}
