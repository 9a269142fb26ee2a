package purepath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// corpusCase is one entry in testdata/cases.yaml.
type corpusCase struct {
	Name    string `yaml:"name"`
	Op      string `yaml:"op"`
	Path    string `yaml:"path"`
	Target  string `yaml:"target"`
	Base    string `yaml:"base"`
	BaseDir string `yaml:"base_dir"`
	Want    string `yaml:"want"`
}

type corpusFile struct {
	Posix   []corpusCase `yaml:"posix"`
	Windows []corpusCase `yaml:"windows"`
}

// TestCorpus runs the YAML corpus against both platform policies. Cases
// that need a base directory declare one, so every case is deterministic
// on any host.
func TestCorpus(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	var corpus corpusFile
	require.NoError(t, yaml.Unmarshal(data, &corpus))
	require.NotEmpty(t, corpus.Posix)
	require.NotEmpty(t, corpus.Windows)

	t.Run("posix", func(t *testing.T) { runCorpus(t, Posix, "/corpus", corpus.Posix) })
	t.Run("windows", func(t *testing.T) { runCorpus(t, Windows, `C:\corpus`, corpus.Windows) })
}

func runCorpus(t *testing.T, platform Platform, defaultBaseDir string, cases []corpusCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			baseDir := tc.BaseDir
			if baseDir == "" {
				baseDir = defaultBaseDir
			}
			r := newResolver(t, WithPlatform(platform), WithBaseDir(baseDir))

			var got string
			switch tc.Op {
			case "normalize":
				got = r.Normalize(tc.Path)
			case "resolve":
				got = r.Resolve(tc.Path)
			case "relative":
				got = r.Relative(tc.Target, tc.Base)
			default:
				t.Fatalf("unknown op %q", tc.Op)
			}
			require.Equal(t, tc.Want, got)
		})
	}
}
