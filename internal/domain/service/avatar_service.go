package service

import (
	"context"
	"io"
)

// AvatarStore persists profile pictures in a blob bucket and returns the
// public URL saved on the profile document.
type AvatarStore interface {
	Save(ctx context.Context, uid, filename, contentType string, body io.Reader) (string, error)
}
