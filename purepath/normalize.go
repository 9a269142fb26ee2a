package purepath

// Normalize returns the shortest lexically equivalent form of path,
// resolving "." and ".." segments and collapsing runs of separators.
// It is a total function: every input, including the empty string, maps
// to some output, and the empty string maps to ".".
//
// Leading ".." segments are preserved when there is no root to stop them
// ("../../foo" stays "../../foo"), while an ascent past the root is
// discarded ("/../foo" becomes "/foo").
//
// On Windows every '/' is rewritten to '\' before decomposition, so
// "C:////temp\\/\/foo/bar" normalizes to `C:\temp\foo\bar`, and a bare
// drive prefix renders as "C:.".
func (r *Resolver) Normalize(path string) string {
	p := r.platform
	path = p.normalizeSeparators(path)
	return p.assembleCanonical(collapse(p.decompose(path)))
}
