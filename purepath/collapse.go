package purepath

// collapse replays components left to right through an output stack,
// resolving "." and ".." segments. The pass is strictly sequential, so
// collapsing one concatenated sequence (base components followed by path
// components) yields the same result as collapsing incrementally; resolve
// depends on that.
//
// The resulting sequence is canonical:
//
//   - no "." remains;
//   - a ".." never follows a named segment (it would have consumed it);
//   - surviving ".." components form a contiguous run at the start of the
//     sequence or right after the prefix, never after a root; an ascent
//     past the root is discarded.
func collapse(comps []Component) []Component {
	out := make([]Component, 0, len(comps))
	for _, c := range comps {
		switch c.Kind {
		case KindCurDir:
			// Dropped.
		case KindParentDir:
			switch {
			case len(out) == 0 || (len(out) == 1 && out[0].Kind == KindPrefix):
				// A leading escape with nothing to consume.
				out = append(out, c)
			case out[len(out)-1].Kind == KindRootDir:
				// Cannot ascend past the root.
			case out[len(out)-1].Kind == KindParentDir:
				out = append(out, c)
			default:
				out = out[:len(out)-1]
			}
		default:
			out = append(out, c)
		}
	}
	return out
}
