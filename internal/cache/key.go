package cache

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"lexiscope/internal/phase"
)

// Key is the BLAKE2b-256 digest of everything that determines a result.
type Key [blake2b.Size256]byte

// Option bits mixed into the key. Only options that change the output
// belong here; MaxDiagnostics does, since it truncates bags.
const (
	keySymmetric byte = 1 << iota
	keyHints
)

// KeyFor hashes the schema version, the options and the text.
func KeyFor(text string, opts phase.Options) Key {
	var header [2 + 1 + 8]byte
	binary.LittleEndian.PutUint16(header[0:2], schemaVersion)
	var flags byte
	if opts.SymmetricDelimiters {
		flags |= keySymmetric
	}
	if opts.KeywordHints {
		flags |= keyHints
	}
	header[2] = flags
	limit := opts.MaxDiagnostics
	if limit < 0 {
		limit = 0
	}
	binary.LittleEndian.PutUint64(header[3:], uint64(limit))

	h, _ := blake2b.New256(nil) // ошибка возможна только при длинном ключе
	h.Write(header[:])
	h.Write([]byte(text))

	var k Key
	copy(k[:], h.Sum(nil))
	return k
}
