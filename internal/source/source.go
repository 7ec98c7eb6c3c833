package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/staffdb/internal/common"
)

const s3Scheme = "s3://"

// Options holds the object storage settings used for s3:// locations.
type Options struct {
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// Open resolves location to a reader. The caller must close it.
func Open(ctx context.Context, location string, opts Options) (io.ReadCloser, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", common.ErrInputUnavailable)
	}

	var (
		rc   io.ReadCloser
		name string
		err  error
	)
	if strings.HasPrefix(location, s3Scheme) {
		bucket, key, perr := ParseS3URI(location)
		if perr != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInputUnavailable, perr)
		}
		rc, err = openObject(ctx, bucket, key, opts)
		name = key
	} else {
		rc, err = openFile(location)
		name = location
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInputUnavailable, err)
	}

	dr, err := Decompress(rc, name)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("%w: %w", common.ErrInputUnavailable, err)
	}
	return dr, nil
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: is a directory", path)
	}
	return f, nil
}

// ParseS3URI splits s3://bucket/key into its parts.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", errors.New("s3 uri must be s3://bucket/key")
	}
	return bucket, key, nil
}
