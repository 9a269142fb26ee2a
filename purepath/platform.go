package purepath

import (
	"runtime"
	"strings"
)

// Platform is the policy value that selects which path convention the
// pipeline applies: the recognized separator set, prefix detection, and
// the segment comparison rule. It is chosen when a [Resolver] is built,
// so Windows semantics can be exercised on a POSIX host and vice versa.
type Platform int

const (
	// Posix recognizes '/' as the only separator and has no prefixes.
	// Segment comparison is case-sensitive.
	Posix Platform = iota

	// Windows accepts both '/' and '\' on input and prefers '\' on
	// output. It recognizes drive-letter ("C:") and UNC
	// (`\\server\share`) prefixes and compares named segments
	// ASCII-case-insensitively.
	Windows
)

// CurrentPlatform returns the policy matching the host operating system.
func CurrentPlatform() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// String returns the string representation of the platform policy.
func (p Platform) String() string {
	switch p {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Separator returns the preferred output separator: '/' on Posix and
// '\' on Windows.
func (p Platform) Separator() byte {
	if p == Windows {
		return '\\'
	}
	return '/'
}

func (p Platform) isSeparator(c byte) bool {
	return c == '/' || (p == Windows && c == '\\')
}

// IsAbsolute reports whether path is absolute under the platform's rules.
// On Posix a path is absolute when it begins at the root. On Windows it
// must have both a prefix and a root: `C:\foo` and `\\server\share`
// qualify (UNC prefixes imply a root), while drive-relative `C:foo` and
// rooted-but-driveless `\foo` do not.
func (p Platform) IsAbsolute(path string) bool {
	comps := p.decompose(path)
	if p == Windows {
		return len(comps) >= 2 && comps[0].Kind == KindPrefix && comps[1].Kind == KindRootDir
	}
	return len(comps) > 0 && comps[0].Kind == KindRootDir
}

// normalizeSeparators rewrites every '/' to '\' so downstream comparison
// and reassembly are separator-uniform. Posix paths pass through as is.
func (p Platform) normalizeSeparators(path string) string {
	if p != Windows {
		return path
	}
	return strings.ReplaceAll(path, "/", `\`)
}

// prefixLen returns the length of the leading prefix of path: 2 for a
// drive-letter pattern ("C:"), the server+share span for a UNC path
// (`\\server\share`), and 0 when no prefix is present. Posix paths never
// have a prefix.
func (p Platform) prefixLen(path string) int {
	if p != Windows {
		return 0
	}
	if len(path) >= 2 && path[1] == ':' && isASCIILetter(path[0]) {
		return 2
	}
	if len(path) >= 2 && p.isSeparator(path[0]) && p.isSeparator(path[1]) {
		// UNC: the prefix spans the server and share names, ending at
		// the separator that follows the share.
		seps := 0
		for i := 2; i < len(path); i++ {
			if p.isSeparator(path[i]) {
				seps++
				if seps == 2 {
					return i
				}
			}
		}
		// No separator after the share position. Trailing separators
		// stay outside the span: the implicit root supplies one, so
		// swallowing them here would duplicate it on reassembly.
		n := len(path)
		for n > 2 && p.isSeparator(path[n-1]) {
			n--
		}
		return n
	}
	return 0
}

// isUNCPrefix reports whether prefix text names a UNC server/share.
// UNC paths are always absolute: the root is implied even when no
// separator follows the share name.
func (p Platform) isUNCPrefix(prefix string) bool {
	return len(prefix) >= 2 && p.isSeparator(prefix[0]) && p.isSeparator(prefix[1])
}

func (p Platform) isDrivePrefix(prefix string) bool {
	return len(prefix) == 2 && prefix[1] == ':'
}

// segmentsEqual reports whether two named segments match under the
// platform's comparison rule. Windows folds ASCII letters only; folding
// beyond ASCII would change observable results for non-ASCII names.
func (p Platform) segmentsEqual(a, b string) bool {
	if p != Windows {
		return a == b
	}
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toUpperASCII(a[i]) != toUpperASCII(b[i]) {
			return false
		}
	}
	return true
}

// componentsEqual applies the platform match rule used by the relative
// common-prefix walk: named segments use segmentsEqual, every other kind
// requires exact equality.
func (p Platform) componentsEqual(a, b Component) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindNormal {
		return p.segmentsEqual(a.Text, b.Text)
	}
	return a.Text == b.Text
}

func isASCIILetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func toUpperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
