package dsh

import (
	"io"
)

type nopCloser struct {
	io.Writer
}

// NopCloser shields a writer from being closed while still letting the
// executor unwrap it back to the underlying file.
func NopCloser(w io.Writer) io.WriteCloser {
	return &nopCloser{
		Writer: w,
	}
}

func (_ *nopCloser) Close() error {
	return nil
}

func (c *nopCloser) Unwrap() io.Writer {
	return c.Writer
}
