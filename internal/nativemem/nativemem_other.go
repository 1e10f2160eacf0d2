//go:build !(darwin || freebsd || linux || netbsd || openbsd || windows)

package nativemem

func allocPages(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func freePages([]byte) error {
	return nil
}
