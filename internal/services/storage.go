package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage buckets
const (
	BucketAvatars       = "avatars"
	BucketProjectImages = "project-images"
	BucketEventImages   = "event-images"
)

// StorageService wraps the object store: upload a file, hand back a public
// URL. Unconfigured deployments get a nil service and callers fall back to
// caller-supplied image URLs.
type StorageService struct {
	client     *minio.Client
	publicBase string
}

var (
	storageService *StorageService
	storageOnce    sync.Once
)

// GetStorage returns the singleton storage service, or nil when MINIO_ENDPOINT
// is not configured.
func GetStorage() *StorageService {
	storageOnce.Do(func() {
		endpoint := os.Getenv("MINIO_ENDPOINT")
		if endpoint == "" {
			log.Println("MINIO_ENDPOINT not set, image uploads disabled")
			return
		}

		useSSL := os.Getenv("MINIO_USE_SSL") == "true"
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: useSSL,
		})
		if err != nil {
			log.Printf("Failed to init object storage: %v", err)
			return
		}

		publicBase := os.Getenv("MINIO_PUBLIC_URL")
		if publicBase == "" {
			scheme := "http"
			if useSSL {
				scheme = "https"
			}
			publicBase = fmt.Sprintf("%s://%s", scheme, endpoint)
		}

		storageService = &StorageService{
			client:     client,
			publicBase: strings.TrimSuffix(publicBase, "/"),
		}

		for _, bucket := range []string{BucketAvatars, BucketProjectImages, BucketEventImages} {
			if err := storageService.ensureBucket(context.Background(), bucket); err != nil {
				log.Printf("Failed to ensure bucket %s: %v", bucket, err)
			}
		}
	})
	return storageService
}

func (s *StorageService) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}

// Upload stores an object and returns its public URL
func (s *StorageService) Upload(ctx context.Context, bucket, object string, file multipart.File, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, object, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, object, err)
	}
	return s.PublicURL(bucket, object), nil
}

// PublicURL builds the public link for a stored object
func (s *StorageService) PublicURL(bucket, object string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBase, bucket, object)
}

// UploadImage stores a multipart image under a random name, keeping the
// original extension.
func (s *StorageService) UploadImage(ctx context.Context, bucket string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	object := uuid.NewString() + ext

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.Upload(ctx, bucket, object, file, header.Size, contentType)
}
