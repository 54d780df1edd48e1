package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/libblake2/blake2b"
)

var errNotRegular = errors.New("not a regular file")

// sumFile hashes the contents of a regular file without reading it into
// memory first.
func sumFile(h *blake2b.Hasher, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat")
	}
	if !fi.Mode().IsRegular() {
		return nil, errNotRegular
	}

	size := fi.Size()
	logrus.WithField("file", path).WithField("size", size).Debug("mapping")

	// mapping zero bytes fails, and there is nothing to map anyway
	if size == 0 {
		return h.Sum(nil), nil
	}
	if int64(int(size)) != size {
		return nil, errors.Errorf("file too large to map: %d bytes", size)
	}

	data, err := mapFile(f, int(size))
	if err != nil {
		return nil, errors.Wrap(err, "map")
	}
	defer func() {
		if err := data.Close(); err != nil {
			logrus.WithField("file", path).WithError(err).Warn("unmap failed")
		}
	}()

	return h.Sum(data.Bytes()), nil
}
