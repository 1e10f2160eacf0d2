package gl

import "unsafe"

// goString converts a NUL-terminated C string to a Go string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), length)) != 0 {
		length++
	}
	return string(unsafe.Slice(p, length))
}
