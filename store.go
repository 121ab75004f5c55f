package khata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// StorageKey is the fixed name of the snapshot inside the data directory.
//
// Earlier deployments of this app used different keys and broke
// compatibility across versions; this one is it, and there is no automatic
// migration from older keys.
const StorageKey = "khata_v2.json"

// Store reads and writes the whole book snapshot under a fixed key in a
// local data directory. One logical writer, one key, no locking.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, StorageKey)
}

// Load reads the snapshot into a book. An absent or unreadable snapshot is
// not an error: the seed book is returned instead and the condition is
// logged, so a corrupt file can never keep the store from opening.
func (s *Store) Load() *Book {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no snapshot at %q, starting from the seed book", s.path())
		return SeedBook()
	}
	if err != nil {
		log.Printf("could not open snapshot %q: %v, starting from the seed book", s.path(), err)
		return SeedBook()
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		log.Printf("could not decode snapshot %q: %v, starting from the seed book", s.path(), err)
		return SeedBook()
	}
	return b
}

// Save serializes the full book and rewrites the snapshot unconditionally.
// It is called after every mutation; there is no debouncing and no partial
// write, the whole document is replaced each time.
func (s *Store) Save(b *Book) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("could not open snapshot %q for writing: %w", s.path(), err)
	}
	defer f.Close()

	return EncodeBook(f, b)
}
