package purepath

// Kind identifies the role a component plays within a decomposed path.
type Kind int

const (
	// KindPrefix is a platform root qualifier preceding the root marker,
	// such as a Windows drive letter ("C:") or a UNC server/share name
	// (`\\server\share`). At most one prefix appears in a decomposition,
	// always as the first component. Prefixes are opaque text compared
	// for equality only.
	KindPrefix Kind = iota

	// KindRootDir marks the filesystem root: the separator at the start
	// of an absolute path, or immediately following a prefix.
	KindRootDir

	// KindCurDir is a literal "." segment. It never survives collapsing.
	KindCurDir

	// KindParentDir is a literal ".." segment. It survives collapsing
	// only when there is no preceding real segment left to consume.
	KindParentDir

	// KindNormal is a named directory or file segment with no embedded
	// separators.
	KindNormal
)

// String returns the string representation of the component kind.
func (k Kind) String() string {
	switch k {
	case KindPrefix:
		return "prefix"
	case KindRootDir:
		return "root"
	case KindCurDir:
		return "curdir"
	case KindParentDir:
		return "parentdir"
	case KindNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Component is one classified unit of a decomposed path. Components are
// plain immutable values: Text holds the raw text for prefixes and named
// segments, the literal marker for "." and "..", and the separator for
// the root.
type Component struct {
	Kind Kind
	Text string
}

func curDir() Component {
	return Component{Kind: KindCurDir, Text: "."}
}

func parentDir() Component {
	return Component{Kind: KindParentDir, Text: ".."}
}

func (p Platform) rootDir() Component {
	return Component{Kind: KindRootDir, Text: string(p.Separator())}
}
