package objectstore

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get when no object is stored under the key.
// Any other failure is an infrastructure fault and is surfaced verbatim;
// the adapters never retry.
var ErrNotExist = errors.New("object does not exist")

// Object is a stored blob with its content type
type Object struct {
	Body        []byte
	ContentType string
}

// ObjectStore is the adapter over the bucket holding raw resume files.
// Keys follow the {studentId}/{storedFileName} layout.
type ObjectStore interface {
	// Put stores body under key, overwriting any previous object
	Put(ctx context.Context, key string, body []byte, contentType string) error

	// Get retrieves the object stored under key
	Get(ctx context.Context, key string) (*Object, error)
}
