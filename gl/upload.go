package gl

import (
	"unsafe"

	"github.com/agiangrant/beagle/internal/nativemem"
	"go.uber.org/zap"
)

// Element is the set of plain numeric types that can be uploaded byte for byte.
type Element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Upload copies data into the buffer object id bound to target and returns
// the buffer id. An id of 0 creates a new buffer.
//
// The bytes travel through a native buffer that is released before Upload
// returns, on every path. Empty data binds the buffer and uploads nothing.
func Upload[T Element](c *Context, data []T, id uint32, target, usage Enum) (uint32, error) {
	if err := c.require(V1_5, "Upload"); err != nil {
		return 0, err
	}
	f := c.fn
	if err := requireSlots(
		slotCheck{"glGenBuffers", id != 0 || f.GenBuffers != nil},
		slotCheck{"glBindBuffer", f.BindBuffer != nil},
		slotCheck{"glBufferData", f.BufferData != nil},
	); err != nil {
		return 0, err
	}

	if id == 0 {
		f.GenBuffers(1, &id)
	}
	f.BindBuffer(target, id)

	if len(data) == 0 {
		return id, nil
	}

	size := len(data) * int(unsafe.Sizeof(data[0]))
	buf, err := nativemem.Alloc(size)
	if err != nil {
		return id, err
	}
	defer func() {
		if ferr := buf.Free(); ferr != nil {
			c.log.Warn("failed to release upload buffer", zap.Error(ferr))
		}
	}()

	copy(buf.Bytes(), unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), size))
	f.BufferData(target, size, buf.Pointer(), usage)

	if code := c.checkError(); code != NO_ERROR {
		c.log.Error("buffer upload failed",
			zap.Uint32("buffer", id),
			zap.Int("bytes", size),
			zap.String("error", ErrorString(code)))
		return id, &UploadError{Code: code}
	}
	return id, nil
}

// DeleteBuffer deletes a buffer object.
func DeleteBuffer(c *Context, id uint32) error {
	if err := requireSlots(slotCheck{"glDeleteBuffers", c.fn.DeleteBuffers != nil}); err != nil {
		return err
	}
	c.fn.DeleteBuffers(1, &id)
	return nil
}
