// Package enum discovers puzzle files to solve from a filesystem tree.
package enum

import "context"

// Enumerator discovers puzzle documents from a source.
type Enumerator interface {
	// Enumerate yields puzzle documents.
	// The callback receives the file path and its content.
	Enumerate(ctx context.Context, callback func(path string, content []byte) error) error
}

// Config for enumeration.
type Config struct {
	// Root is the starting path for enumeration.
	Root string

	// Extensions restricts enumeration to files with one of these
	// extensions (with leading dot, e.g. ".txt"). Empty means all files.
	Extensions []string

	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links.
	FollowSymlinks bool
}
