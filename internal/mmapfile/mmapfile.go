// Package mmapfile provides the memory-mapped file backing shared by
// Reader and Writer. The container format is designed for random-access
// reading via memory mapping (spec section 1); this package is the one
// concrete point where that requirement touches the filesystem.
package mmapfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ReadOnly maps a file for read-only access for the lifetime of the
// returned handle. Close releases both the mapping and the file
// descriptor together, regardless of which step last succeeded.
type ReadOnly struct {
	file *os.File
	Data []byte
}

// OpenReadOnly opens path and maps its full contents read-only.
func OpenReadOnly(path string) (*ReadOnly, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapfile: stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		f.Close()
		return nil, fmt.Errorf("mmapfile: %s is empty", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapfile: mmap %s: %w", path, err)
	}

	return &ReadOnly{file: f, Data: data}, nil
}

// Close unmaps the region and closes the underlying file.
func (r *ReadOnly) Close() error {
	var err error
	if r.Data != nil {
		err = unix.Munmap(r.Data)
		r.Data = nil
	}
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadWrite maps a file for read-write access, growing or creating the
// backing file to the requested size. Writer uses this to reserve image
// payload regions up front, then fill them through Data after Create
// returns.
type ReadWrite struct {
	file *os.File
	Data []byte
}

// Create truncates (or creates) the file at path and maps size bytes of
// it read-write. The mapped region is zero-initialized by the filesystem.
func Create(path string, size int64) (*ReadWrite, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: creating %s: %w", path, err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapfile: truncating %s to %d: %w", path, size, err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapfile: mmap %s: %w", path, err)
	}

	return &ReadWrite{file: f, Data: data}, nil
}

// Close flushes the mapping back to disk, unmaps it, and closes the file.
func (w *ReadWrite) Close() error {
	var err error
	if w.Data != nil {
		if serr := unix.Msync(w.Data, unix.MS_SYNC); serr != nil {
			err = fmt.Errorf("mmapfile: msync: %w", serr)
		}
		if uerr := unix.Munmap(w.Data); err == nil && uerr != nil {
			err = fmt.Errorf("mmapfile: munmap: %w", uerr)
		}
		w.Data = nil
	}
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	return err
}
