package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pawcare-admin/internal/utils"
)

// LocalBackend writes files below root and serves them under urlPrefix.
type LocalBackend struct {
	root      string
	urlPrefix string
}

func NewLocalBackend(root, urlPrefix string) (*LocalBackend, error) {
	if err := utils.EnsurePathNotSymlink(root); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", root, err)
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalBackend{root: root, urlPrefix: urlPrefix}, nil
}

func (b *LocalBackend) Root() string {
	return b.root
}

func (b *LocalBackend) Put(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	dst, err := utils.SecureJoin(b.root, filepath.FromSlash(key))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, body); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}

// Delete is idempotent: a missing file is not an error.
func (b *LocalBackend) Delete(_ context.Context, key string) error {
	target, err := utils.SecureJoin(b.root, filepath.FromSlash(key))
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (b *LocalBackend) URL(key string) string {
	return b.urlPrefix + key
}
