package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const imagePrefix = "img/"

// ImageStore keeps ship images in an S3-compatible bucket.
type ImageStore struct {
	client *minio.Client
	bucket string
}

func NewImageStore(ctx context.Context, endpoint, accessKey, secretKey string, useSSL bool, bucket string) (*ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		logrus.Infof("bucket %s created", bucket)
	}
	return &ImageStore{client: client, bucket: bucket}, nil
}

func (s *ImageStore) PutImage(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, imagePrefix+name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put image %s: %w", name, err)
	}
	return nil
}

func (s *ImageStore) RemoveImage(ctx context.Context, name string) error {
	err := s.client.RemoveObject(ctx, s.bucket, imagePrefix+name, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remove image %s: %w", name, err)
	}
	return nil
}
