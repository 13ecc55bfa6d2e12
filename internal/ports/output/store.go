package output

import "context"

// UpdateFunc receives the current value of a key (found=false when absent)
// and returns the value to store in its place.
type UpdateFunc func(current string, found bool) (string, error)

// Store is a persistent string-keyed key-value store.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Update runs fn and writes its result as one atomic read-modify-write.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
