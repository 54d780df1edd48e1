//go:build !unix

package main

import (
	"io"
	"os"
)

// mapping falls back to reading the whole file where mmap is unavailable.
type mapping struct {
	data []byte
}

func mapFile(f *os.File, size int) (*mapping, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return &mapping{data: data}, nil
}

func (m *mapping) Bytes() []byte { return m.data }

func (m *mapping) Close() error { return nil }
