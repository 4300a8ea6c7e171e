// Package media gives the schema layer its view of the media/file store.
// Category avatars and product images are stored by reference only: this
// package mints unique object keys under the fixed upload prefixes and can
// check that a referenced object exists, but never reads or processes file
// contents.
package media

import (
	"context"
	"log/slog"
	"path"

	"storefront/config"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers for the bucket URL schemes used in practice.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Upload prefixes for media references, matching the persisted reference
// paths ("categories/<key>", "products/<key>").
const (
	CategoryPrefix = "categories"
	ProductPrefix  = "products"
)

// ReferenceStore mints and checks media references.
type ReferenceStore interface {
	// NewReference returns a fresh object key under the given prefix,
	// keeping the original filename's extension.
	NewReference(prefix, filename string) string

	// Exists reports whether the referenced object is present in the bucket.
	Exists(ctx context.Context, reference string) (bool, error)
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket *blob.Bucket
}

// New opens the configured media bucket. When no bucket is configured the
// store still mints references but treats every reference as present.
func New(ctx context.Context, params Params) (ReferenceStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		params.Logger.Info("media bucket not configured, reference checks disabled")

		return &referenceOnlyStore{}, nil
	}

	bucket, err := blob.OpenBucket(ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &bucketStore{bucket: bucket}, nil
}

// NewReference returns a fresh object key under the given prefix.
func (s *bucketStore) NewReference(prefix, filename string) string {
	return newReference(prefix, filename)
}

// Exists reports whether the referenced object is present in the bucket.
func (s *bucketStore) Exists(ctx context.Context, reference string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, reference)
	if err != nil {
		return false, errors.Wrap(err, "failed to check media reference")
	}

	return exists, nil
}

// referenceOnlyStore mints references without a backing bucket.
type referenceOnlyStore struct{}

func (s *referenceOnlyStore) NewReference(prefix, filename string) string {
	return newReference(prefix, filename)
}

func (s *referenceOnlyStore) Exists(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func newReference(prefix, filename string) string {
	return path.Join(prefix, uuid.New().String()+path.Ext(filename))
}
