// Package purepath provides pure, lexical path-string manipulation with
// Node.js path-module semantics: normalize, resolve, and relative, for
// both POSIX and Windows path conventions.
//
// Everything in this package is a pure computation over strings. No
// operation touches the filesystem, checks existence, or follows
// symlinks; the only environmental input is the process working
// directory, read once at first use.
//
// # Operations
//
// All three operations are total: they never fail for any input string.
//
//	purepath.Normalize("/foo/bar//baz/asdf/quux/..")  // "/foo/bar/baz/asdf"
//	purepath.Resolve("lib/util")                      // "<cwd>/lib/util"
//	purepath.Relative("/a/b/c/d", "/a/b/f/g")         // "../../c/d"
//
// Internally each operation decomposes its input into typed components
// (prefix, root, ".", "..", named segment), replays them through a
// stack-based collapse, and reassembles the survivors with the
// platform's preferred separator.
//
// # Resolvers
//
// The package-level functions use the host platform's convention and the
// process working directory. For explicit control, build a [Resolver]:
//
//	r, err := purepath.New(
//	    purepath.WithPlatform(purepath.Windows),
//	    purepath.WithBaseDir(`C:\users\robbie`),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Resolve(`reports\..\archive`)  // `C:\users\robbie\archive`
//
// A Resolver makes the base directory an explicit value instead of
// hidden process state, so tests are deterministic, and makes the
// platform a policy value instead of a build constraint, so Windows
// drive-letter, UNC, and case-folding semantics run on any host.
//
// # Windows notes
//
// On Windows input both '/' and '\' are accepted as separators; output
// always uses '\'. Drive-letter ("C:") and UNC (`\\server\share`)
// prefixes are recognized, and UNC paths are always absolute. A
// drive-relative path ("C:foo") resolves to the drive's root ("C:\foo");
// per-drive working directories are deliberately not consulted.
package purepath
