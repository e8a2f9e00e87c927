package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
)

// FileID indexes a FileSet; the first file gets 0.
type FileID uint32

// Flags describe how a file entered the set and what its bytes look like.
type Flags uint8

const (
	// Virtual files come from memory: stdin, --text, tests.
	Virtual Flags = 1 << iota
	// HasBOM is set when the content starts with EF BB BF. The mark stays in
	// Content; analysis sees it as an ordinary character.
	HasBOM
	// HasCRLF is set when at least one "\r\n" occurs.
	HasCRLF
)

// File is one loaded input. Content is never rewritten.
type File struct {
	ID       FileID
	Path     string
	Content  []byte
	Newlines []uint32 // byte offset of every '\n'
	Flags    Flags
}

func newFile(id FileID, path string, content []byte, flags Flags) File {
	f := File{ID: id, Path: path, Content: content, Flags: flags}
	if bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) {
		f.Flags |= HasBOM
	}
	for i, b := range content {
		if b != '\n' {
			continue
		}
		if i > 0 && content[i-1] == '\r' {
			f.Flags |= HasCRLF
		}
		off, err := safecast.Conv[uint32](i)
		if err != nil {
			// Load отсекает такие файлы заранее
			panic(fmt.Errorf("newline offset overflow: %w", err))
		}
		f.Newlines = append(f.Newlines, off)
	}
	return f
}

func (f *File) Text() string { return string(f.Content) }

// LineCount is the number of '\n'-separated lines, at least 1.
func (f *File) LineCount() int { return len(f.Newlines) + 1 }

// Line returns 1-based line n without its '\n'. A trailing '\r' is kept.
func (f *File) Line(n int) (string, bool) {
	if n < 1 || n > f.LineCount() {
		return "", false
	}
	start, end := 0, len(f.Content)
	if n > 1 {
		start = int(f.Newlines[n-2]) + 1
	}
	if n <= len(f.Newlines) {
		end = int(f.Newlines[n-1])
	}
	return string(f.Content[start:end]), true
}

// DisplayPath shortens Path relative to baseDir when Path lies inside it.
func (f *File) DisplayPath(baseDir string) string {
	if f.Flags&Virtual != 0 || baseDir == "" || !filepath.IsAbs(f.Path) {
		return f.Path
	}
	rel, err := filepath.Rel(baseDir, f.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return f.Path
	}
	return filepath.ToSlash(rel)
}
