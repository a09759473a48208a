// Package storage publishes exported files to an artifact sink: a local
// directory or an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Driver identifies a sink backend
type Driver string

const (
	DriverFS Driver = "fs"
	DriverS3 Driver = "s3"
)

// Artifact describes a stored file
type Artifact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sink stores exported files. Put overwrites an existing file of the same name.
type Sink interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (Artifact, error)
	Driver() Driver
	Describe() string
}

// Options selects and configures a sink
type Options struct {
	Driver string
	Dir    string
	S3     S3Config
}

// ParseDriver accepts "fs" (or "file", or empty) and "s3"
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fs", "file":
		return DriverFS, nil
	case "s3":
		return DriverS3, nil
	}
	return "", fmt.Errorf("unknown output driver %q (want fs or s3)", s)
}

// Open builds the sink named by opts.Driver
func Open(ctx context.Context, opts Options) (Sink, error) {
	driver, err := ParseDriver(opts.Driver)
	if err != nil {
		return nil, err
	}
	switch driver {
	case DriverS3:
		return NewS3Sink(ctx, opts.S3)
	default:
		return NewFSSink(opts.Dir)
	}
}
