// Package images uploads cat photos to an S3-compatible bucket and returns
// the public URL stored in the cat's image_url field.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxSize is the largest photo accepted for upload.
const MaxSize = 10 << 20

var (
	ErrNotConfigured = errors.New("photo upload is not configured")
	ErrUnsupported   = errors.New("unsupported image type")
	ErrTooLarge      = errors.New("image is too large")
)

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Settings selects the bucket and how to reach it.
type Settings struct {
	Bucket    string
	Region    string
	Endpoint  string
	BaseURL   string
	AccessKey string
	SecretKey string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Uploader struct {
	api     putObjectAPI
	bucket  string
	baseURL string
	newKey  func(ext string) string
}

// New builds an Uploader from s. Without a bucket it returns
// ErrNotConfigured.
func New(ctx context.Context, s Settings) (*Uploader, error) {
	if s.Bucket == "" {
		return nil, ErrNotConfigured
	}
	if s.Region == "" {
		s.Region = "us-east-1"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(s.Region)}
	if s.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newUploader(client, s.Bucket, publicBase(s)), nil
}

func newUploader(api putObjectAPI, bucket, baseURL string) *Uploader {
	return &Uploader{
		api:     api,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		newKey: func(ext string) string {
			return "cats/" + uuid.NewString() + ext
		},
	}
}

// publicBase is the URL prefix objects are served from.
func publicBase(s Settings) string {
	switch {
	case s.BaseURL != "":
		return s.BaseURL
	case s.Endpoint != "":
		return strings.TrimRight(s.Endpoint, "/") + "/" + s.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.Bucket, s.Region)
}

// Upload stores the file at path and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	ctype, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	if info.Size() > MaxSize {
		return "", ErrTooLarge
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read image: %w", err)
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", fmt.Errorf("%w: content is not an image", ErrUnsupported)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image: %w", err)
	}

	key := u.newKey(ext)
	_, err = u.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentType:   aws.String(ctype),
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return u.baseURL + "/" + key, nil
}
