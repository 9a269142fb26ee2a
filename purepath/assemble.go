package purepath

import "strings"

// assemble joins a component sequence into a path string using the
// platform's preferred separator. The root directly follows its prefix
// with no duplicate separator, and a segment directly follows a drive
// prefix ("C:foo" stays drive-relative); everything else is
// separator-joined.
func (p Platform) assemble(comps []Component) string {
	var b strings.Builder
	for i, c := range comps {
		switch c.Kind {
		case KindPrefix:
			b.WriteString(c.Text)
		case KindRootDir:
			b.WriteByte(p.Separator())
		default:
			if i > 0 {
				prev := comps[i-1]
				if prev.Kind != KindRootDir && !(prev.Kind == KindPrefix && p.isDrivePrefix(prev.Text)) {
					b.WriteByte(p.Separator())
				}
			}
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

// assembleCanonical renders a collapsed sequence, substituting the "."
// marker when nothing renderable remains: an empty sequence, or on
// Windows a bare prefix ("C:" renders as "C:.").
func (p Platform) assembleCanonical(comps []Component) string {
	if len(comps) == 0 || (p == Windows && len(comps) == 1 && comps[0].Kind == KindPrefix) {
		comps = append(comps, curDir())
	}
	return p.assemble(comps)
}

// pushComponents appends src components onto dst following native path
// join semantics: a pushed prefix replaces everything accumulated so far,
// and a pushed root truncates back to the prefix. This is how a rooted or
// prefixed path supersedes the base it is joined onto.
func pushComponents(dst, src []Component) []Component {
	for _, c := range src {
		switch c.Kind {
		case KindPrefix:
			dst = append(dst[:0], c)
		case KindRootDir:
			if len(dst) > 0 && dst[0].Kind == KindPrefix {
				dst = dst[:1]
			} else {
				dst = dst[:0]
			}
			dst = append(dst, c)
		default:
			dst = append(dst, c)
		}
	}
	return dst
}
