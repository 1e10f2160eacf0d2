package dynlib

import "runtime"

// Family is the operating system family that decides which dynamic loader is used.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyPOSIX
	FamilyWindows
)

func (f Family) String() string {
	switch f {
	case FamilyPOSIX:
		return "posix"
	case FamilyWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// FamilyOf maps a GOOS value to its loader family.
func FamilyOf(goos string) Family {
	switch goos {
	case "darwin", "ios", "linux", "android", "freebsd", "netbsd", "openbsd":
		return FamilyPOSIX
	case "windows":
		return FamilyWindows
	default:
		return FamilyUnknown
	}
}

// CurrentFamily returns the loader family of the running process.
func CurrentFamily() Family {
	return FamilyOf(runtime.GOOS)
}

// Names holds the default filename of one library for each platform.
// Darwin is split out from the other POSIX systems because its libraries
// use a different naming scheme.
type Names struct {
	POSIX   string
	Darwin  string
	Windows string
}

// DefaultName returns the filename appropriate for goos.
func (n Names) DefaultName(goos string) string {
	switch FamilyOf(goos) {
	case FamilyWindows:
		return n.Windows
	case FamilyPOSIX:
		if (goos == "darwin" || goos == "ios") && n.Darwin != "" {
			return n.Darwin
		}
		return n.POSIX
	default:
		return n.POSIX
	}
}
