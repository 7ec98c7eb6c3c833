package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Decompress wraps rc according to the suffix of name. Closing the result
// closes rc as well.
func Decompress(rc io.ReadCloser, name string) (io.ReadCloser, error) {
	switch lower := strings.ToLower(name); {
	case strings.HasSuffix(lower, ".gz"):
		gzr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return &stackedReader{Reader: gzr, closers: []func() error{gzr.Close, rc.Close}}, nil

	case strings.HasSuffix(lower, ".zst"):
		dec, err := zstd.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		return &stackedReader{Reader: dec, closers: []func() error{
			func() error { dec.Close(); return nil },
			rc.Close,
		}}, nil

	default:
		return rc, nil
	}
}

// stackedReader reads from the outermost reader and closes every layer.
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (s *stackedReader) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
