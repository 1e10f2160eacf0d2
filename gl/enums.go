package gl

// Enum is a GLenum value.
type Enum = uint32

const (
	ACTIVE_TEXTURE               = 0x84E0
	ARRAY_BUFFER                 = 0x8892
	ARRAY_BUFFER_BINDING         = 0x8894
	BLEND                        = 0xbe2
	CLAMP_TO_EDGE                = 0x812f
	COLOR_BUFFER_BIT             = 0x4000
	COMPILE_STATUS               = 0x8b81
	COMPUTE_SHADER               = 0x91B9
	DEPTH_BUFFER_BIT             = 0x100
	DEPTH_TEST                   = 0xb71
	DYNAMIC_DRAW                 = 0x88E8
	ELEMENT_ARRAY_BUFFER         = 0x8893
	EXTENSIONS                   = 0x1f03
	FALSE                        = 0
	FLOAT                        = 0x1406
	FRAGMENT_SHADER              = 0x8b30
	GEOMETRY_SHADER              = 0x8DD9
	INFO_LOG_LENGTH              = 0x8B84
	INVALID_ENUM                 = 0x0500
	INVALID_OPERATION            = 0x0502
	INVALID_VALUE                = 0x0501
	LINEAR                       = 0x2601
	LINK_STATUS                  = 0x8b82
	MAX_TEXTURE_SIZE             = 0xd33
	NEAREST                      = 0x2600
	NO_ERROR                     = 0x0
	ONE_MINUS_SRC_ALPHA          = 0x303
	OUT_OF_MEMORY                = 0x0505
	RENDERER                     = 0x1F01
	RGBA                         = 0x1908
	RGBA8                        = 0x8058
	SHADING_LANGUAGE_VERSION     = 0x8B8C
	SHADER_STORAGE_BUFFER        = 0x90D2
	SRC_ALPHA                    = 0x302
	STATIC_DRAW                  = 0x88e4
	STENCIL_BUFFER_BIT           = 0x00000400
	STREAM_DRAW                  = 0x88E0
	TESS_CONTROL_SHADER          = 0x8E88
	TESS_EVALUATION_SHADER       = 0x8E87
	TEXTURE_2D                   = 0xde1
	TEXTURE_MAG_FILTER           = 0x2800
	TEXTURE_MIN_FILTER           = 0x2801
	TEXTURE_WRAP_S               = 0x2802
	TEXTURE_WRAP_T               = 0x2803
	TEXTURE0                     = 0x84c0
	TRIANGLE_STRIP               = 0x5
	TRIANGLES                    = 0x4
	TRUE                         = 1
	UNIFORM_BUFFER               = 0x8A11
	UNSIGNED_BYTE                = 0x1401
	UNSIGNED_INT                 = 0x1405
	UNSIGNED_SHORT               = 0x1403
	VENDOR                       = 0x1F00
	VERSION                      = 0x1f02
	VERTEX_SHADER                = 0x8b31
	ELEMENT_ARRAY_BUFFER_BINDING = 0x8895
)

// ErrorString returns the name of a glGetError code.
func ErrorString(code uint32) string {
	switch code {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown GL error"
	}
}
