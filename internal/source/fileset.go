package source

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every file of one run. Adding a path twice keeps both
// versions; Lookup returns the newest.
type FileSet struct {
	files  []File
	byPath map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{byPath: make(map[string]FileID)}
}

func (s *FileSet) Len() int { return len(s.files) }

func (s *FileSet) add(path string, content []byte, flags Flags) FileID {
	n, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	id := FileID(n)
	s.files = append(s.files, newFile(id, path, content, flags))
	s.byPath[path] = id
	return id
}

// Load reads path from disk. Files whose size does not fit the uint32
// offsets used for line lookup are rejected.
func (s *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if uint64(len(content)) > math.MaxUint32 {
		return 0, fmt.Errorf("%s: file too large (%d bytes)", path, len(content))
	}
	return s.add(filepath.ToSlash(filepath.Clean(path)), content, 0), nil
}

// AddVirtual stores in-memory text under name, which is kept as is.
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	return s.add(name, content, Virtual)
}

// Get returns nil for ids the set never issued.
func (s *FileSet) Get(id FileID) *File {
	if int(id) >= len(s.files) {
		return nil
	}
	return &s.files[id]
}

// Lookup finds the newest file stored under path.
func (s *FileSet) Lookup(path string) (*File, bool) {
	id, ok := s.byPath[filepath.ToSlash(filepath.Clean(path))]
	if !ok {
		id, ok = s.byPath[path]
	}
	if !ok {
		return nil, false
	}
	return &s.files[id], true
}
