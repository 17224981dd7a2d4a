package ports

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Fingerprint hashes an ordered list of rendered command lines.
	Fingerprint(lines []string) string
	// ComputeFileHash hashes the content of the file at path.
	ComputeFileHash(path string) (uint64, error)
}
