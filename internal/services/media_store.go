package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// MediaStore хранит вложения ордеров (фото машины, подписи)
// и возвращает ссылку, которая пишется в сам ордер.
type MediaStore interface {
	Save(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

type MinioMediaStore struct {
	client *minio.Client
	bucket string
}

func NewMinioMediaStore(client *minio.Client, bucket string) *MinioMediaStore {
	return &MinioMediaStore{client: client, bucket: bucket}
}

func (m *MinioMediaStore) Save(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", m.bucket, objectName), nil
}
