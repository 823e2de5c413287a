// internal/words/words.go
//
// Dictionary management for the Boggle engine.
//
// Responsibilities:
//   - Build an immutable lowercase word set from a list, a file, a SQLite
//     table, or the embedded default list.
//   - Answer case-insensitive membership queries in O(1).
//   - Hold the process-wide dictionary, loaded exactly once at startup.
//
// Initialization behavior (Init):
//   1. If Source.DSN is set, load words from the SQLite table Source.Table.
//   2. Else if Source.File is set, load one word per line from that file.
//   3. Else fall back to the embedded assets/words.txt.
//
// Constraints:
//   • Words are ASCII letters only (a–z after lowercasing); others are dropped.
//   • A Dictionary is never mutated after construction, so concurrent
//     readers need no locking.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/stgibson/boggle/assets"
)

// ErrEmptyDictionary is returned when a source yields no usable words.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Dictionary is a read-only set of lowercase words.
type Dictionary struct {
	set map[string]struct{}
}

// New builds a Dictionary from list. Entries are trimmed and lowercased;
// entries that are not purely a–z are skipped.
func New(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		if w, ok := normalize(w); ok {
			d.set[w] = struct{}{}
		}
	}
	return d
}

// Contains reports whether word is in the dictionary, ignoring ASCII case
// and surrounding whitespace. Words with non-ASCII bytes are never members.
func (d *Dictionary) Contains(word string) bool {
	w, ok := normalize(word)
	if !ok {
		return false
	}
	_, ok = d.set[w]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.set) }

// Embedded returns the dictionary shipped in assets/words.txt.
func Embedded() (*Dictionary, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return nonEmpty(New(list))
}

// LoadFile reads one word per line from path.
// Blank lines and lines starting with "#" are ignored.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var list []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return nonEmpty(New(list))
}

// Source selects where Init loads the process-wide dictionary from.
type Source struct {
	File  string // plain text word list
	DSN   string // SQLite database; takes precedence over File
	Table string // SQLite table holding a "word" column
}

var (
	initOnce   sync.Once
	shared     *Dictionary
	initialErr error
)

// Init loads the process-wide dictionary exactly once.
// Later calls return the first call's error and ignore src.
func Init(ctx context.Context, src Source) error {
	initOnce.Do(func() {
		switch {
		case src.DSN != "":
			shared, initialErr = LoadSQLite(ctx, src.DSN, src.Table)
		case src.File != "":
			shared, initialErr = LoadFile(src.File)
		default:
			shared, initialErr = Embedded()
		}
	})
	return initialErr
}

// Default returns the dictionary loaded by Init, or nil before Init succeeds.
func Default() *Dictionary { return shared }

// normalize trims w and folds ASCII case, reporting whether it is all a–z.
// Folding is byte-wise so no non-ASCII rune can map onto a letter.
func normalize(w string) (string, bool) {
	w = strings.TrimSpace(w)
	if w == "" {
		return "", false
	}
	b := make([]byte, len(w))
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return "", false
		}
		b[i] = c
	}
	return string(b), true
}

func nonEmpty(d *Dictionary) (*Dictionary, error) {
	if d.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}
