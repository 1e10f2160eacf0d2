package gl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbound is returned when an operation needs an entry point the
	// library did not export.
	ErrUnbound = errors.New("gl: entry point not bound")
	// ErrUnsupported is returned when the detected version is below what an
	// operation requires.
	ErrUnsupported = errors.New("gl: operation not supported by detected version")
	// ErrNoSources is returned by BuildProgram when given nothing to compile.
	ErrNoSources = errors.New("gl: no shader sources")
	// ErrAlreadyPooled is returned by TexturePool.Release for an id that is
	// already waiting in the pool.
	ErrAlreadyPooled = errors.New("gl: texture already released to pool")
)

// UnboundError names the entry point that was missing.
type UnboundError struct {
	Slot string
}

func (e *UnboundError) Error() string {
	return "gl: entry point " + e.Slot + " not bound"
}

func (e *UnboundError) Is(target error) bool { return target == ErrUnbound }

// VersionError reports an operation gated by the detected version.
type VersionError struct {
	Op       string
	Required Version
	Detected Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("gl: %s requires OpenGL %s, detected %s", e.Op, e.Required, e.Detected)
}

func (e *VersionError) Is(target error) bool { return target == ErrUnsupported }

// ShaderCompileError carries the driver's compile log verbatim.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("gl: %s shader compile failed: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the driver's link log verbatim. The program and
// its attached shaders are left alive; the caller decides whether to delete
// them.
type ProgramLinkError struct {
	Program uint32
	Shaders []uint32
	Log     string
}

func (e *ProgramLinkError) Error() string {
	return "gl: program link failed: " + e.Log
}

// UploadError reports a glGetError code raised by a buffer upload.
type UploadError struct {
	Code uint32
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("gl: buffer upload failed: %s (0x%04x)", ErrorString(e.Code), e.Code)
}

type slotCheck struct {
	name  string
	bound bool
}

// requireSlots returns an UnboundError for the first unbound entry point.
func requireSlots(checks ...slotCheck) error {
	for _, c := range checks {
		if !c.bound {
			return &UnboundError{Slot: c.name}
		}
	}
	return nil
}
