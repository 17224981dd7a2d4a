package ports

import "time"

// FileSystem probes the artifacts that targets and dependencies name.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ModTime returns the modification time of path. The boolean is false when
	// nothing exists at path, in which case the error is nil.
	ModTime(path string) (time.Time, bool, error)
}
