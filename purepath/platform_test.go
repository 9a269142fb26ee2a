package purepath

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformString(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		expected string
	}{
		{"posix", Posix, "posix"},
		{"windows", Windows, "windows"},
		{"unknown negative", Platform(-1), "unknown"},
		{"unknown large value", Platform(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.platform.String())
		})
	}
}

func TestCurrentPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.Equal(t, Windows, CurrentPlatform())
	} else {
		assert.Equal(t, Posix, CurrentPlatform())
	}
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, byte('/'), Posix.Separator())
	assert.Equal(t, byte('\\'), Windows.Separator())
}

func TestIsAbsolute(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		path     string
		want     bool
	}{
		{"posix root", Posix, "/", true},
		{"posix absolute", Posix, "/a/b", true},
		{"posix relative", Posix, "a/b", false},
		{"posix empty", Posix, "", false},
		{"posix ascent", Posix, "../a", false},

		{"windows drive absolute", Windows, `C:\a`, true},
		{"windows drive root", Windows, `C:\`, true},
		{"windows forward slash", Windows, "C:/a", true},
		{"windows drive relative", Windows, "C:a", false},
		{"windows bare drive", Windows, "C:", false},
		{"windows rooted no drive", Windows, `\a`, false},
		{"windows unc", Windows, `\\server\share`, true},
		{"windows unc with path", Windows, `\\server\share\x`, true},
		{"windows relative", Windows, `a\b`, false},
		{"windows empty", Windows, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.platform.IsAbsolute(tt.path))
		})
	}
}

func TestPrefixLen(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{"drive", `C:\x`, 2},
		{"bare drive", "C:", 2},
		{"lowercase drive", "c:x", 2},
		{"digit not a drive", `1:\x`, 0},
		{"unc", `\\server\share\x`, len(`\\server\share`)},
		{"unc bare", `\\server\share`, len(`\\server\share`)},
		{"unc server only", `\\server`, len(`\\server`)},
		{"rooted", `\x`, 0},
		{"relative", "x", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Windows.prefixLen(tt.path))
		})
	}

	assert.Zero(t, Posix.prefixLen(`C:\x`), "posix paths never have a prefix")
}

func TestSegmentsEqual(t *testing.T) {
	// Posix comparison is exact.
	assert.True(t, Posix.segmentsEqual("foo", "foo"))
	assert.False(t, Posix.segmentsEqual("Foo", "foo"))

	// Windows folds ASCII letters only.
	assert.True(t, Windows.segmentsEqual("Foo", "foo"))
	assert.True(t, Windows.segmentsEqual("FOO", "foo"))
	assert.False(t, Windows.segmentsEqual("foo", "bar"))
	assert.False(t, Windows.segmentsEqual("foo", "fooo"))
	assert.False(t, Windows.segmentsEqual("\u00e9", "\u00c9"), "non-ASCII letters never fold")
}
