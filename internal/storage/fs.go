package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FSSink writes files into a local directory
type FSSink struct {
	dir string
}

// NewFSSink creates the directory if needed
func NewFSSink(dir string) (*FSSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FSSink{dir: dir}, nil
}

func (s *FSSink) Driver() Driver { return DriverFS }

func (s *FSSink) Describe() string { return s.dir }

// Put writes data atomically: a temp file in the same directory is renamed into place
func (s *FSSink) Put(ctx context.Context, name string, data []byte, contentType string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return Artifact{}, fmt.Errorf("invalid file name %q", name)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return Artifact{}, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return Artifact{}, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return Artifact{}, err
	}
	if err := tmp.Close(); err != nil {
		return Artifact{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Artifact{}, err
	}

	return Artifact{
		ID:          uuid.New().String(),
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Location:    path,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
