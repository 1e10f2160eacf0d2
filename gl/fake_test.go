package gl

import (
	"strings"
	"unsafe"
)

type fakeShader struct {
	stage    uint32
	source   string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
}

// fakeDriver is a capturing in-memory GL implementation.
type fakeDriver struct {
	nextID    uint32
	bound     map[uint32]uint32
	buffers   map[uint32][]byte
	shaders   map[uint32]*fakeShader
	programs  map[uint32]*fakeProgram
	textures  map[uint32]bool
	errors    []uint32
	linkLog   string
	calls     map[string]int
	detached  []uint32
	lastUsage uint32
	// deepCalls moves the goroutine stack inside every output-parameter call.
	deepCalls bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		nextID:   1,
		bound:    make(map[uint32]uint32),
		buffers:  make(map[uint32][]byte),
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		textures: make(map[uint32]bool),
		calls:    make(map[string]int),
	}
}

func (d *fakeDriver) id() uint32 {
	id := d.nextID
	d.nextID++
	return id
}

func writeU32s(ptr *uint32, ids []uint32) {
	copy(unsafe.Slice(ptr, len(ids)), ids)
}

func readU32s(ptr *uint32, n int32) []uint32 {
	return append([]uint32(nil), unsafe.Slice(ptr, n)...)
}

// growStack recurses deep enough to make the runtime move a fresh
// goroutine's stack.
//
//go:noinline
func growStack(depth int) byte {
	var pad [1024]byte
	pad[depth%len(pad)] = byte(depth)
	if depth == 0 {
		return pad[0]
	}
	return pad[depth%len(pad)] + growStack(depth-1)
}

// writeLog mimics glGet*InfoLog: at most bufSize-1 bytes plus a terminator.
func writeLog(log string, bufSize int32, length *int32, out *byte) {
	n := int32(len(log))
	if n > bufSize-1 {
		n = bufSize - 1
	}
	dst := unsafe.Slice(out, bufSize)
	copy(dst, log[:n])
	dst[n] = 0
	if length != nil {
		*length = n
	}
}

func (d *fakeDriver) deep() {
	if d.deepCalls {
		growStack(64)
	}
}

func (d *fakeDriver) functions() *Functions {
	return &Functions{
		Clear:      func(mask uint32) { d.calls["glClear"]++ },
		ClearColor: func(r, g, b, a float32) { d.calls["glClearColor"]++ },
		Viewport:   func(x, y, w, h int32) { d.calls["glViewport"]++ },
		GetError: func() uint32 {
			if len(d.errors) == 0 {
				return NO_ERROR
			}
			code := d.errors[0]
			d.errors = d.errors[1:]
			return code
		},
		GenTextures: func(n int32, textures *uint32) {
			d.deep()
			d.calls["glGenTextures"]++
			ids := make([]uint32, n)
			for i := range ids {
				ids[i] = d.id()
				d.textures[ids[i]] = true
			}
			writeU32s(textures, ids)
		},
		DeleteTextures: func(n int32, textures *uint32) {
			d.calls["glDeleteTextures"]++
			for _, id := range readU32s(textures, n) {
				delete(d.textures, id)
			}
		},
		GenBuffers: func(n int32, buffers *uint32) {
			d.deep()
			d.calls["glGenBuffers"]++
			ids := make([]uint32, n)
			for i := range ids {
				ids[i] = d.id()
			}
			writeU32s(buffers, ids)
		},
		DeleteBuffers: func(n int32, buffers *uint32) {
			for _, id := range readU32s(buffers, n) {
				delete(d.buffers, id)
			}
		},
		BindBuffer: func(target, buffer uint32) {
			d.calls["glBindBuffer"]++
			d.bound[target] = buffer
		},
		BufferData: func(target uint32, size int, data unsafe.Pointer, usage uint32) {
			d.calls["glBufferData"]++
			d.lastUsage = usage
			var copied []byte
			if data != nil && size > 0 {
				copied = append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
			}
			d.buffers[d.bound[target]] = copied
		},
		CreateShader: func(typ uint32) uint32 {
			id := d.id()
			d.shaders[id] = &fakeShader{stage: typ}
			return id
		},
		ShaderSource: func(shader uint32, count int32, sources **byte, lengths *int32) {
			ptrs := unsafe.Slice(sources, count)
			lens := unsafe.Slice(lengths, count)
			var b strings.Builder
			for i := range ptrs {
				b.Write(unsafe.Slice(ptrs[i], lens[i]))
			}
			d.shaders[shader].source = b.String()
		},
		CompileShader: func(shader uint32) {
			s := d.shaders[shader]
			if i := strings.Index(s.source, "ERROR:"); i >= 0 {
				s.log = s.source[i:]
				return
			}
			s.compiled = true
		},
		GetShaderiv: func(shader, pname uint32, params *int32) {
			d.deep()
			s := d.shaders[shader]
			switch pname {
			case COMPILE_STATUS:
				if s.compiled {
					*params = TRUE
				} else {
					*params = FALSE
				}
			case INFO_LOG_LENGTH:
				if s.log == "" {
					*params = 0
				} else {
					*params = int32(len(s.log) + 1)
				}
			}
		},
		GetShaderInfoLog: func(shader uint32, bufSize int32, length *int32, infoLog *byte) {
			d.deep()
			writeLog(d.shaders[shader].log, bufSize, length, infoLog)
		},
		DeleteShader: func(shader uint32) {
			d.calls["glDeleteShader"]++
			d.shaders[shader].deleted = true
		},
		CreateProgram: func() uint32 {
			id := d.id()
			d.programs[id] = &fakeProgram{}
			return id
		},
		AttachShader: func(program, shader uint32) {
			p := d.programs[program]
			p.attached = append(p.attached, shader)
		},
		DetachShader: func(program, shader uint32) {
			d.detached = append(d.detached, shader)
		},
		LinkProgram: func(program uint32) {
			p := d.programs[program]
			if d.linkLog != "" {
				p.log = d.linkLog
				return
			}
			p.linked = true
		},
		GetProgramiv: func(program, pname uint32, params *int32) {
			d.deep()
			p := d.programs[program]
			switch pname {
			case LINK_STATUS:
				if p.linked {
					*params = TRUE
				} else {
					*params = FALSE
				}
			case INFO_LOG_LENGTH:
				if p.log == "" {
					*params = 0
				} else {
					*params = int32(len(p.log) + 1)
				}
			}
		},
		GetProgramInfoLog: func(program uint32, bufSize int32, length *int32, infoLog *byte) {
			d.deep()
			writeLog(d.programs[program].log, bufSize, length, infoLog)
		},
	}
}
