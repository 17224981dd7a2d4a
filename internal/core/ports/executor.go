// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for dispatching rendered command lines.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs line through the host shell and waits for it to finish.
	//
	// A non-zero exit status is reported through the returned code, not as an
	// error. The error is non-nil only when the shell could not be started or the
	// context was cancelled, in which case the code is -1.
	Execute(ctx context.Context, line string) (int, error)
}
