package storage

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// BlobStore keeps one object per key in a gocloud bucket.
type BlobStore struct {
	bucket *blob.Bucket
	prefix string
}

// OpenBlobStore opens the bucket behind bucketURL
func OpenBlobStore(ctx context.Context, bucketURL, prefix string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &BlobStore{bucket: bucket, prefix: prefix}, nil
}

// NewBlobStore wraps an already opened bucket
func NewBlobStore(bucket *blob.Bucket, prefix string) *BlobStore {
	return &BlobStore{bucket: bucket, prefix: prefix}
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.bucket.ReadAll(ctx, s.objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "read object %s", key)
	}

	return data, true, nil
}

func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, s.objectKey(key), value, opts); err != nil {
		return errors.Wrapf(err, "write object %s", key)
	}

	return nil
}

func (s *BlobStore) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.objectKey(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

// Close releases the bucket
func (s *BlobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *BlobStore) objectKey(key string) string {
	return s.prefix + key + ".json"
}
