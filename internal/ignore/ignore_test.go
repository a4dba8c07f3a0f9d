package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]string{".git", "*.log", "src/**/gen", "node_modules/"}))

	err := Validate([]string{"ok", "[abc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "[abc")

	assert.ErrorIs(t, Validate([]string{""}), ErrInvalidPattern)
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(Options{Patterns: []string{"[z-"}})
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestExcludedByPattern(t *testing.T) {
	m, err := New(Options{Patterns: []string{"target", "*.min.js", "docs/**/*.txt", "build/"}})
	require.NoError(t, err)

	cases := map[string]bool{
		"target":               true,
		"target/debug/main.rs": true,
		"crates/a/target/x.rs": true,
		"src/app.min.js":       true,
		"src/app.js":           false,
		"docs/a/b/readme.txt":  true,
		"docs/readme.md":       false,
		"build/out.go":         true,
		"src/targets/lib.rs":   false,
		"src/main.rs":          false,
	}
	for rel, want := range cases {
		assert.Equal(t, want, m.Excluded(rel, false), rel)
	}
}

func TestExcludedByDotSlashPattern(t *testing.T) {
	m, err := New(Options{Patterns: []string{"./vendor", "./docs/"}})
	require.NoError(t, err)

	assert.True(t, m.Excluded("vendor", true))
	assert.True(t, m.Excluded("pkg/vendor/lib.go", false))
	assert.True(t, m.Excluded("docs", true))
	assert.False(t, m.Excluded("src/main.go", false))
}

func TestHiddenFilter(t *testing.T) {
	m, err := New(Options{})
	require.NoError(t, err)

	assert.True(t, m.Excluded(".env", false))
	assert.True(t, m.Excluded(".github/workflows/ci.yml", false))
	assert.True(t, m.Excluded("src/.cache", true))
	assert.False(t, m.Excluded("src/main.go", false))
	assert.False(t, m.Excluded(".", true))

	all, err := New(Options{IncludeHidden: true})
	require.NoError(t, err)
	assert.False(t, all.Excluded(".github/workflows/ci.yml", false))
}

func TestHidden(t *testing.T) {
	assert.True(t, Hidden(".git"))
	assert.True(t, Hidden("a/.b/c"))
	assert.False(t, Hidden("./a/b"))
	assert.False(t, Hidden("../a/b"))
	assert.False(t, Hidden("a.b/c"))
}

func TestGitignoreRules(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, GitignoreFile), []byte("*.gen.go\nout/\n"), 0644))
	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, GitignoreFile), []byte("local.txt\n"), 0644))

	m, err := New(Options{Gitignore: true})
	require.NoError(t, err)
	m.LoadRules(root, ".")
	m.LoadRules(sub, "pkg")

	assert.True(t, m.Excluded("api.gen.go", false))
	assert.True(t, m.Excluded("pkg/types.gen.go", false))
	assert.True(t, m.Excluded("out", true))
	assert.True(t, m.Excluded("pkg/local.txt", false))
	assert.False(t, m.Excluded("local.txt", false))
	assert.False(t, m.Excluded("pkg/main.go", false))
}

func TestGitignoreDisabled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, GitignoreFile), []byte("*.go\n"), 0644))

	m, err := New(Options{})
	require.NoError(t, err)
	m.LoadRules(root, ".")

	assert.False(t, m.Excluded("main.go", false))
}

func TestGitignoreNestedNegation(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, GitignoreFile), []byte("*.gen.go\n/build\n"), 0644))
	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, GitignoreFile), []byte("# keep this one\n!keep.gen.go\n/only\nsub/x.txt\n"), 0644))

	m, err := New(Options{Gitignore: true})
	require.NoError(t, err)
	m.LoadRules(root, ".")
	m.LoadRules(sub, "pkg")

	assert.False(t, m.Excluded("pkg/keep.gen.go", false))
	assert.False(t, m.Excluded("pkg/deep/keep.gen.go", false))
	assert.True(t, m.Excluded("pkg/drop.gen.go", false))
	assert.True(t, m.Excluded("keep.gen.go", false))

	assert.True(t, m.Excluded("build", true))
	assert.False(t, m.Excluded("pkg/build", true))

	assert.True(t, m.Excluded("pkg/only", true))
	assert.False(t, m.Excluded("pkg/a/only", true))
	assert.True(t, m.Excluded("pkg/sub/x.txt", false))
	assert.False(t, m.Excluded("pkg/a/sub/x.txt", false))
}

func TestRebase(t *testing.T) {
	cases := []struct {
		line, rel string
		want      string
		ok        bool
	}{
		{"*.log", ".", "*.log", true},
		{"*.log", "pkg", "/pkg/**/*.log", true},
		{"!keep.log", "pkg", "!/pkg/**/keep.log", true},
		{"/build", "a/b", "/a/b/build", true},
		{"out/", "pkg", "/pkg/**/out/", true},
		{"gen/*.go", "pkg", "/pkg/gen/*.go", true},
		{"# note", "pkg", "", false},
		{"   ", "pkg", "", false},
	}
	for _, tc := range cases {
		got, ok := rebase(tc.line, tc.rel)
		assert.Equal(t, tc.ok, ok, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}
}
