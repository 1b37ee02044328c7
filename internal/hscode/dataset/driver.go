package dataset

import (
	"context"
	"io"
)

// Driver abstracts where the HS code dataset is read from. The service loads
// the dataset once at startup; drivers only need to hand back a reader.
type Driver interface {
	// Open returns a reader for the dataset content. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
}
