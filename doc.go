// Package pathtools provides pure, lexical path-string manipulation with
// Node.js path-module semantics for both POSIX and Windows conventions.
//
// pathtools never touches the filesystem: no existence checks, no symlink
// resolution, no I/O. Every operation is a pure computation over the path
// string it is given.
//
// # Overview
//
// The library consists of two packages:
//
//   - purepath: normalize, resolve, and relative operations over path strings
//   - mcpserver: an MCP server exposing the purepath operations as tools
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/pathtools
//
// # Quick Start
//
// Normalize a path:
//
//	import "github.com/erraggy/pathtools/purepath"
//
//	fmt.Println(purepath.Normalize("/foo/bar//baz/asdf/quux/.."))
//	// Output: /foo/bar/baz/asdf
//
// Resolve a path against the process working directory:
//
//	abs := purepath.Resolve("../sibling/config.yaml")
//
// Compute a relative path:
//
//	rel := purepath.Relative("/a/b/c/d", "/a/b/f/g")
//	// rel == "../../c/d"
//
// Path conventions are a policy value, not a build constraint: a Resolver
// built with purepath.WithPlatform(purepath.Windows) applies Windows
// drive-letter, UNC, and case-folding rules on any host. Combined with
// purepath.WithBaseDir this makes every operation deterministic under test:
//
//	r, err := purepath.New(
//	    purepath.WithPlatform(purepath.Windows),
//	    purepath.WithBaseDir(`C:\work`),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(r.Resolve("temp\\..\\reports"))
//	// Output: C:\work\reports
package pathtools
