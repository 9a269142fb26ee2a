package purepath

// Relative returns target expressed relative to base: the minimal run of
// ".." ascents followed by the descents that lead from base to target.
// Both arguments are resolved to absolute canonical form first; paths
// that resolve identically yield the empty string.
//
//	r.Relative("/var", "/var/lib")      // ".."
//	r.Relative("/bin", "/var/lib")      // "../../bin"
//	r.Relative("/a/b/c/d", "/a/b/f/g")  // "../../c/d"
//
// On Windows named segments are matched ASCII-case-insensitively during
// the common-prefix walk, and prefixes must match exactly; when the two
// paths live on different drives the result is target's absolute path,
// since no run of ascents can cross drives.
func (r *Resolver) Relative(target, base string) string {
	p := r.platform
	resolvedBase := r.Resolve(base)
	resolvedTarget := r.Resolve(target)
	if resolvedBase == resolvedTarget {
		return ""
	}

	baseComps := filterReal(p.decompose(resolvedBase))
	targetComps := filterReal(p.decompose(resolvedTarget))

	// Lock-step walk to the first mismatch.
	i := 0
	for i < len(baseComps) && i < len(targetComps) {
		if !p.componentsEqual(baseComps[i], targetComps[i]) {
			break
		}
		i++
	}

	out := make([]Component, 0, (len(baseComps)-i)+(len(targetComps)-i))
	for range baseComps[i:] {
		out = append(out, parentDir())
	}
	out = pushComponents(out, targetComps[i:])
	return p.assemble(out)
}
