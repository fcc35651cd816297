// Package storage persists user uploads. Only avatars exist today.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrUnsupportedImage = errors.New("storage: unsupported image type")

var allowedImages = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type AvatarStore interface {
	// Save stores data for userID and returns the public URL of the file.
	Save(ctx context.Context, userID uuid.UUID, data []byte) (string, error)
}

// DetectImage sniffs data and returns the file extension for a JPEG, PNG or
// WebP image. The client supplied content type is never trusted.
func DetectImage(data []byte) (string, error) {
	mtype := mimetype.Detect(data)

	for mime, ext := range allowedImages {
		if mtype.Is(mime) {
			return ext, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mtype.String())
}

type diskAvatarStore struct {
	dir     string
	baseURL string
}

func NewDiskAvatarStore(dir, baseURL string) (AvatarStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create avatar dir %s: %w", dir, err)
	}

	return &diskAvatarStore{dir: dir, baseURL: baseURL}, nil
}

func (s *diskAvatarStore) Save(ctx context.Context, userID uuid.UUID, data []byte) (string, error) {

	ext, err := DetectImage(data)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := userID.String() + "-" + uuid.NewString()[:8] + ext

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write avatar: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close avatar file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	return path.Join(s.baseURL, name), nil
}
