package purepath

// Resolve returns path as an absolute, normalized path. It is a total
// function: an absolute input is normalized directly, and a relative
// input is first anchored at the resolver's base directory by
// component-wise concatenation. Resolve never touches the filesystem.
//
// On Windows a drive-relative path such as "C:foo" (a prefix with no
// root marker) is anchored at the drive's root. Windows keeps a working
// directory per drive, but consulting it would require OS state; the
// root is synthesized instead, so Resolve("C:foo") is `C:\foo`
// regardless of any per-drive directory.
func (r *Resolver) Resolve(path string) string {
	p := r.platform
	path = p.normalizeSeparators(path)
	if p.IsAbsolute(path) {
		return r.Normalize(path)
	}

	comps := p.decompose(path)
	if p == Windows && len(comps) > 0 && comps[0].Kind == KindPrefix &&
		(len(comps) == 1 || comps[1].Kind != KindRootDir) {
		r.logger.Debug("anchoring drive-relative path at drive root",
			"path", path, "prefix", comps[0].Text)
		withRoot := make([]Component, 0, len(comps)+1)
		withRoot = append(withRoot, comps[0], p.rootDir())
		withRoot = append(withRoot, comps[1:]...)
		return p.assembleCanonical(collapse(withRoot))
	}

	// A rooted-but-driveless Windows path ("\foo") keeps only the base
	// directory's prefix; pushComponents handles that truncation.
	joined := pushComponents(p.decompose(r.base()), comps)
	return p.assembleCanonical(collapse(joined))
}
