package purepath

// decompose splits raw into an ordered sequence of typed components under
// the platform's rules. Consecutive separators produce no component, so
// an empty token never appears. The result satisfies the ordering the
// collapser relies on: at most one prefix, always first, optionally
// followed by a single root marker.
func (p Platform) decompose(raw string) []Component {
	var comps []Component

	rest := raw
	if n := p.prefixLen(raw); n > 0 {
		comps = append(comps, Component{Kind: KindPrefix, Text: raw[:n]})
		rest = raw[n:]
		if p.isUNCPrefix(raw[:n]) {
			comps = append(comps, p.rootDir())
		}
	}

	i := 0
	if i < len(rest) && p.isSeparator(rest[i]) {
		if len(comps) == 0 || comps[len(comps)-1].Kind != KindRootDir {
			comps = append(comps, p.rootDir())
		}
		i++
	}

	for i < len(rest) {
		if p.isSeparator(rest[i]) {
			i++
			continue
		}
		j := i
		for j < len(rest) && !p.isSeparator(rest[j]) {
			j++
		}
		switch token := rest[i:j]; token {
		case ".":
			comps = append(comps, curDir())
		case "..":
			comps = append(comps, parentDir())
		default:
			comps = append(comps, Component{Kind: KindNormal, Text: token})
		}
		i = j
	}

	return comps
}

// filterReal drops any residual "." or ".." markers from a component
// sequence, keeping prefixes, roots, and named segments. Resolved paths
// should never contain the former; the filter is defensive.
func filterReal(comps []Component) []Component {
	out := make([]Component, 0, len(comps))
	for _, c := range comps {
		switch c.Kind {
		case KindPrefix, KindRootDir, KindNormal:
			out = append(out, c)
		}
	}
	return out
}
