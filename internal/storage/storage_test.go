package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pawcare-admin/internal/config"
	"pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/testutils"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	backend, err := NewLocalBackend(root, "/uploads")
	require.NoError(t, err)
	return New(backend), root
}

func TestStore_SaveAndRemoveLocal(t *testing.T) {
	store, root := newLocalStore(t)
	ctx := context.Background()

	img, err := store.Save(ctx, Policy{Folder: "vet", MaxBytes: 1 << 20}, FromBytes("clinic.png", testutils.PNG()))
	require.NoError(t, err)

	assert.Equal(t, "image/png", img.Mimetype)
	assert.Equal(t, "clinic.png", img.OriginalName)
	assert.True(t, strings.HasPrefix(img.Path, "vet/"))
	assert.True(t, strings.HasSuffix(img.Filename, ".png"))
	assert.Equal(t, "/uploads/"+img.Path, img.URL)
	assert.Equal(t, int64(len(testutils.PNG())), img.Size)

	onDisk := filepath.Join(root, filepath.FromSlash(img.Path))
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, img.Path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// removing twice is harmless
	require.NoError(t, store.Remove(ctx, img.Path))
}

func TestStore_RejectsNonImage(t *testing.T) {
	store, root := newLocalStore(t)

	_, err := store.Save(context.Background(), Policy{Folder: "vet", MaxBytes: 1 << 20},
		FromBytes("evil.png", []byte("#!/bin/sh\necho hi\n")))
	assert.True(t, service.IsCode(err, service.ErrorCodeValidation), "got %v", err)

	entries, _ := os.ReadDir(root)
	assert.Empty(t, entries)
}

func TestStore_RejectsOversize(t *testing.T) {
	store, _ := newLocalStore(t)
	data := append(testutils.PNG(), bytes.Repeat([]byte{0}, 2048)...)

	_, err := store.Save(context.Background(), Policy{Folder: "vet", MaxBytes: 1024}, FromBytes("big.png", data))
	assert.True(t, service.IsCode(err, service.ErrorCodeValidation), "got %v", err)
}

func TestLocalBackend_RejectsTraversalKey(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir(), "/uploads/")
	require.NoError(t, err)

	err = backend.Delete(context.Background(), "../outside.png")
	assert.Error(t, err)
}

type fakeS3 struct {
	puts    map[string][]byte
	deleted []string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Backend_PutAndDelete(t *testing.T) {
	client := &fakeS3{puts: map[string][]byte{}}
	store := New(NewS3BackendWithClient(client, "pawcare", "https://cdn.example.org/"))
	ctx := context.Background()

	img, err := store.Save(ctx, Policy{Folder: "reports", MaxBytes: 1 << 20}, FromBytes("dog.png", testutils.PNG()))
	require.NoError(t, err)
	assert.Equal(t, testutils.PNG(), client.puts[img.Path])
	assert.Equal(t, "https://cdn.example.org/"+img.Path, img.URL)

	require.NoError(t, store.Remove(ctx, img.Path))
	assert.Equal(t, []string{img.Path}, client.deleted)
}

func TestNewBackend_UnknownDriver(t *testing.T) {
	_, err := NewBackend(context.Background(), configWithDriver("ftp"))
	assert.Error(t, err)
}

func configWithDriver(driver string) config.UploadConfig {
	return config.UploadConfig{Driver: driver}
}
