//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

type mapping struct {
	data []byte
}

func mapFile(f *os.File, size int) (*mapping, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &mapping{data: data}, nil
}

func (m *mapping) Bytes() []byte { return m.data }

func (m *mapping) Close() error { return unix.Munmap(m.data) }
