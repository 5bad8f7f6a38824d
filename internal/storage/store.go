package storage

import (
	"context"
	"errors"
	"io"
)

const (
	DefaultLocalDir  = "wwwroot/images/reviews"
	DefaultURLPrefix = "/images/reviews"
	S3KeyPrefix      = "images/reviews/"
)

var ErrInvalidName = errors.New("invalid image name")

// ImageStore keeps review photos under flat names such as "5.png".
type ImageStore interface {
	// Save writes r under name, replacing any previous object with that name.
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	// Remove deletes name. A missing object is not an error.
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	URL(name string) string
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for _, r := range name {
		if r == '/' || r == '\\' {
			return false
		}
	}
	return true
}
