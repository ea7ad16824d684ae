package wordexp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strtools/pkg/wordexp"
)

func TestExpand(t *testing.T) {
	t.Run("plain word passes through", func(t *testing.T) {
		got, err := wordexp.Expand("filename.cfg")
		require.NoError(t, err)
		assert.Equal(t, "filename.cfg", got)
	})

	t.Run("variable substitution", func(t *testing.T) {
		t.Setenv("STRTOOLS_TEST_DIR", "/tmp/data")
		got, err := wordexp.Expand("$STRTOOLS_TEST_DIR/app.conf")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/data/app.conf", got)
	})

	t.Run("quote removal", func(t *testing.T) {
		got, err := wordexp.Expand(`"a quoted name.txt"`)
		require.NoError(t, err)
		assert.Equal(t, "a quoted name.txt", got)
	})

	t.Run("first word of several", func(t *testing.T) {
		got, err := wordexp.Expand("first second third")
		require.NoError(t, err)
		assert.Equal(t, "first", got)
	})

	t.Run("empty input produces no words", func(t *testing.T) {
		_, err := wordexp.Expand("")
		assert.ErrorIs(t, err, wordexp.ErrNoExpansion)
	})

	t.Run("whitespace only produces no words", func(t *testing.T) {
		_, err := wordexp.Expand("   \t ")
		assert.ErrorIs(t, err, wordexp.ErrNoExpansion)
	})

	t.Run("unset variable produces no words", func(t *testing.T) {
		_, err := wordexp.Expand("$STRTOOLS_DEFINITELY_UNSET_VAR")
		assert.ErrorIs(t, err, wordexp.ErrNoExpansion)
	})

	t.Run("malformed input is an error not a passthrough", func(t *testing.T) {
		got, err := wordexp.Expand(`"unterminated`)
		require.Error(t, err)
		assert.NotErrorIs(t, err, wordexp.ErrNoExpansion)
		assert.Empty(t, got)
	})
}

func TestExpandAll(t *testing.T) {
	t.Run("all words in order", func(t *testing.T) {
		t.Setenv("STRTOOLS_TEST_WORD", "beta")
		words, err := wordexp.ExpandAll("alpha $STRTOOLS_TEST_WORD 'gamma delta'")
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "gamma delta"}, words)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := wordexp.ExpandAll("")
		assert.ErrorIs(t, err, wordexp.ErrNoExpansion)
	})
}

func TestGlobbing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.log", "b.log", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	t.Run("glob expands to every matching file", func(t *testing.T) {
		words, err := wordexp.ExpandAll(dir + "/*.log")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.log"),
			filepath.Join(dir, "b.log"),
		}, words)
	})

	t.Run("expand returns the first match", func(t *testing.T) {
		got, err := wordexp.Expand(dir + "/*.log")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "a.log"), got)
	})

	t.Run("unmatched pattern stays literal", func(t *testing.T) {
		pattern := dir + "/*.missing"
		words, err := wordexp.ExpandAll(pattern)
		require.NoError(t, err)
		assert.Equal(t, []string{pattern}, words)
	})

	t.Run("quoted pattern is not expanded", func(t *testing.T) {
		got, err := wordexp.Expand(`"` + dir + `/*.log"`)
		require.NoError(t, err)
		assert.Equal(t, dir+"/*.log", got)
	})
}
