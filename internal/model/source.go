// Package model defines the data structures shared by the installer layers.
package model

// Path represents a file system path.
type Path string

// ElementKind selects whether the locator looks for a file or a directory.
type ElementKind int

const (
	// ElementFile matches regular files (symlinks are resolved).
	ElementFile ElementKind = iota
	// ElementDir matches directories.
	ElementDir
)

// String implements fmt.Stringer.
func (k ElementKind) String() string {
	switch k {
	case ElementFile:
		return "file"
	case ElementDir:
		return "directory"
	}

	return "unknown"
}
