package minio

import (
	"context"
	"io"
	"path"

	"github.com/hupe1980/filtex/listsource"
	"github.com/minio/minio-go/v7"
)

// Source implements listsource.Source for MinIO.
type Source struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewSource creates a MinIO list source.
// rootPrefix is prepended to all keys (e.g. "lists/").
func NewSource(client *minio.Client, bucket, rootPrefix string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Source) key(name string) string {
	return path.Join(s.prefix, name)
}

// Fetch downloads the whole list object.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, listsource.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
