package files

import (
	"path/filepath"
)

// Checker answers whether data files named by a document exist under a base directory.
type Checker struct {
	baseDir string
}

// NewChecker creates a Checker rooted at baseDir. An empty baseDir means the working directory.
func NewChecker(baseDir string) *Checker {
	return &Checker{baseDir: baseDir}
}

// Exists reports whether name is a regular file inside the base directory.
// Absolute names and names escaping the base directory never exist.
func (c *Checker) Exists(name string) bool {
	if name == "" || filepath.IsAbs(name) {
		return false
	}

	root := c.baseDir
	if root == "" {
		root = "."
	}
	path, err := EnsureWithinRoot(root, filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		return false
	}
	return ValidatePath(path) == nil
}
