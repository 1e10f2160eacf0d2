//go:build darwin || freebsd || linux || netbsd || openbsd

package nativemem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func allocPages(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("nativemem: mmap %d bytes: %w", size, err)
	}
	return data, nil
}

func freePages(data []byte) error {
	return unix.Munmap(data[:cap(data)])
}
