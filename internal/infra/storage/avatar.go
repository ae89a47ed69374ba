// Package storage persists profile avatars in a blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"agenda/config"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/lifecycle"
	"agenda/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved from the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

const defaultMaxAvatarSize = 2 << 20 // 2 MiB

// avatarStore implements service.AvatarStore on a gocloud blob bucket.
type avatarStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSizeBytes  int64
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStore opens the configured bucket and manages its lifecycle.
func NewAvatarStore(params Params) (service.AvatarStore, error) {
	if params.Config.Avatar == nil || params.Config.Avatar.BucketURL == "" {
		return nil, errors.New("avatar.bucketUrl is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Avatar.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open avatar bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	maxSize := params.Config.Avatar.MaxSizeBytes
	if maxSize <= 0 {
		maxSize = defaultMaxAvatarSize
	}

	return &avatarStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Avatar.PublicBaseURL, "/"),
		maxSizeBytes:  maxSize,
		logger:        params.Logger,
	}, nil
}

// Save streams the avatar into the bucket under a per-user key and returns
// the public URL to store on the profile.
func (store *avatarStore) Save(ctx context.Context, uid, filename, contentType string, body io.Reader) (string, error) {
	key := uid + "/avatar" + strings.ToLower(path.Ext(filename))

	writer, err := store.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open avatar writer")
	}

	// Limit to one byte past the cap so oversized uploads are detectable.
	written, err := io.Copy(writer, io.LimitReader(body, store.maxSizeBytes+1))
	if err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write avatar")
	}
	if written > store.maxSizeBytes {
		_ = writer.Close()
		_ = store.bucket.Delete(ctx, key)

		return "", domainerrors.ErrAvatarTooLarge
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize avatar upload")
	}

	store.logger.Debug("Stored avatar",
		slog.String("uid", uid),
		slog.String("key", key),
		slog.Int64("bytes", written))

	return store.publicBaseURL + "/" + key, nil
}
