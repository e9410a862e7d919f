package images

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakePut struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePut) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	b, _ := io.ReadAll(in.Body)
	f.body = b
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func testUploader(api putObjectAPI) *Uploader {
	u := newUploader(api, "cat-photos", "https://cdn.example.com/")
	u.newKey = func(ext string) string { return "cats/fixed" + ext }
	return u
}

func TestUpload(t *testing.T) {
	api := &fakePut{}
	u := testUploader(api)
	data := append(append([]byte(nil), pngHeader...), bytes.Repeat([]byte{0}, 600)...)
	path := writeFile(t, "mitzi.PNG", data)

	url, err := u.Upload(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cats/fixed.png", url)

	require.NotNil(t, api.in)
	assert.Equal(t, "cat-photos", aws.ToString(api.in.Bucket))
	assert.Equal(t, "cats/fixed.png", aws.ToString(api.in.Key))
	assert.Equal(t, "image/png", aws.ToString(api.in.ContentType))
	assert.Equal(t, int64(len(data)), aws.ToInt64(api.in.ContentLength))
	assert.Equal(t, data, api.body, "body is sent from the start")
}

func TestUpload_Rejections(t *testing.T) {
	ctx := context.Background()
	api := &fakePut{}
	u := testUploader(api)

	_, err := u.Upload(ctx, writeFile(t, "notes.txt", []byte("hello")))
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = u.Upload(ctx, writeFile(t, "fake.jpg", []byte("plain text, not a photo")))
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = u.Upload(ctx, filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Nil(t, api.in, "nothing reaches the bucket")
}

func TestUpload_PutError(t *testing.T) {
	boom := errors.New("access denied")
	u := testUploader(&fakePut{err: boom})

	_, err := u.Upload(context.Background(), writeFile(t, "a.png", pngHeader))
	require.ErrorIs(t, err, boom)
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), Settings{})
	require.ErrorIs(t, err, ErrNotConfigured)

	u, err := New(context.Background(), Settings{
		Bucket:    "cat-photos",
		Endpoint:  "http://127.0.0.1:9000/",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/cat-photos", u.baseURL)
}

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", publicBase(Settings{Bucket: "b", BaseURL: "https://cdn.example.com"}))
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com", publicBase(Settings{Bucket: "b", Region: "eu-west-1"}))
}
