package purepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativePosix(t *testing.T) {
	r := newResolver(t, WithPlatform(Posix), WithBaseDir("/home/robbie"))

	tests := []struct {
		name   string
		target string
		base   string
		want   string
	}{
		{"identical", "/var/lib", "/var/lib", ""},
		{"identical after normalize", "/var//lib/../lib", "/var/lib", ""},
		{"ascend one", "/var", "/var/lib", ".."},
		{"ascend and descend", "/bin", "/var/lib", "../../bin"},
		{"shared interior prefix", "/a/b/c/d", "/a/b/f/g", "../../c/d"},
		{"descend only", "/a/b/c", "/a", "b/c"},
		{"from root", "/a/b", "/", "a/b"},
		{"to root", "/", "/a/b", "../.."},

		// Relative inputs resolve against the base directory first.
		{"relative target", "docs", "/home/robbie", "docs"},
		{"relative base", "/home/robbie/docs", ".", "docs"},
		{"both relative", "a/b", "a", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Relative(tt.target, tt.base))
		})
	}
}

func TestRelativeWindows(t *testing.T) {
	r := newResolver(t, WithPlatform(Windows), WithBaseDir(`C:\users\robbie`))

	tests := []struct {
		name   string
		target string
		base   string
		want   string
	}{
		{"identical", `C:\var\lib`, `C:\var\lib`, ""},
		{"ascend one", `C:\var`, `C:\var\lib`, ".."},
		{"ascend and descend", `C:\bin`, `C:\var\lib`, `..\..\bin`},

		// Named segments match ASCII-case-insensitively.
		{"case folded match", `C:\Foo\Bar`, `C:\foo\baz`, `..\Bar`},
		{"case folded identical", `C:\Foo`, `C:\foo`, ""},

		// Prefixes never case-fold and never match across drives, so the
		// result falls back to the target's absolute path.
		{"different drives", `D:\b`, `C:\a`, `D:\b`},
		{"unc vs drive", `\\server\share\x`, `C:\a`, `\\server\share\x`},

		{"forward slash input", "C:/a/b", `C:\a`, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Relative(tt.target, tt.base))
		})
	}
}

// TestRelativeSelf verifies relative(a, a) == "" for varied inputs.
func TestRelativeSelf(t *testing.T) {
	r := newResolver(t, WithPlatform(Posix), WithBaseDir("/home/robbie"))
	for _, path := range []string{"", ".", "..", "/", "/a/b", "x/y", "../z"} {
		assert.Equal(t, "", r.Relative(path, path), "path=%q", path)
	}
}

// TestRelativeRoundTrip verifies that joining base with the computed
// relative path resolves back to the target.
func TestRelativeRoundTrip(t *testing.T) {
	r := newResolver(t, WithPlatform(Posix), WithBaseDir("/home/robbie"))

	pairs := []struct{ base, target string }{
		{"/var/lib", "/var"},
		{"/var/lib", "/bin"},
		{"/a/b/f/g", "/a/b/c/d"},
		{"/", "/a/b"},
		{"/a/b", "/"},
		{"/home/robbie", "/home/robbie/docs"},
	}

	for _, pair := range pairs {
		rel := r.Relative(pair.target, pair.base)
		joined := r.Resolve(pair.base + "/" + rel)
		assert.Equal(t, r.Resolve(pair.target), joined,
			"base=%q target=%q rel=%q", pair.base, pair.target, rel)
	}
}
