package words

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	t.Parallel()

	d := New([]string{"Ask", " cat ", "a", "", "don't", "naïve", "x1"})
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 0, New([]string{"\u212A"}).Len())

	tests := []struct {
		word string
		want bool
	}{
		{"ask", true},
		{"ASK", true},
		{"aSk", true},
		{" cat\t", true},
		{"a", true},
		{"A", true},
		{"aaa", false},
		{"don't", false},
		{"naïve", false},
		{"as\u212A", false}, // Kelvin sign must not fold to k
		{"\u212Aa", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Contains(tt.word), "Contains(%q)", tt.word)
	}
}

func TestEmbedded(t *testing.T) {
	t.Parallel()

	d, err := Embedded()
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 500)
	for _, w := range []string{"a", "ask", "cat", "zoo"} {
		assert.True(t, d.Contains(w), w)
	}
	assert.False(t, d.Contains("aaa"))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nApple\n\n  pear \nbad-word\n"), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("apple"))
	assert.True(t, d.Contains("PEAR"))
	assert.False(t, d.Contains("bad-word"))
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n\n"), 0o644))
	_, err = LoadFile(empty)
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "dict.db")

	require.NoError(t, WriteSQLite(ctx, dsn, "", []string{"ask", "cat", "cat"}))
	require.NoError(t, WriteSQLite(ctx, dsn, "", []string{"Dog"}))

	d, err := LoadSQLite(ctx, dsn, "")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("dog"))
	assert.True(t, d.Contains("ASK"))
}

func TestSQLiteCustomTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "dict.db")

	require.NoError(t, WriteSQLite(ctx, dsn, "lexicon_en", []string{"tea"}))
	d, err := LoadSQLite(ctx, dsn, "lexicon_en")
	require.NoError(t, err)
	assert.True(t, d.Contains("tea"))

	_, err = LoadSQLite(ctx, dsn, "missing_table")
	assert.Error(t, err)
}

func TestSQLiteEmptyTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "dict.db")
	require.NoError(t, WriteSQLite(ctx, dsn, "", nil))

	_, err := LoadSQLite(ctx, dsn, "")
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestTableName(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"words", "Words_2", "_w"} {
		got, err := tableName(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, got)
	}
	got, err := tableName("")
	require.NoError(t, err)
	assert.Equal(t, "words", got)

	for _, bad := range []string{"1words", "words; DROP TABLE x", "w-x", "w.x"} {
		_, err := tableName(bad)
		assert.Error(t, err, bad)
	}
}

func TestInitOnceAndConcurrentReads(t *testing.T) {
	require.NoError(t, Init(context.Background(), Source{}))
	d := Default()
	require.NotNil(t, d)

	// A second Init keeps the first dictionary.
	require.NoError(t, Init(context.Background(), Source{File: "/does/not/exist"}))
	assert.Same(t, d, Default())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, Default().Contains("ask"))
			assert.False(t, Default().Contains("aaa"))
		}()
	}
	wg.Wait()
}
