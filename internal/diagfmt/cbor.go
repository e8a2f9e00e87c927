package diagfmt

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborMode is canonical: map keys sorted, shortest integer forms.
// Field names come from the json tags.
var cborMode = mustCanonical()

// Token and character values are raw input and may hold invalid UTF-8.
var cborDecMode = mustDecMode()

func mustCanonical() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("cbor enc mode: %w", err))
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{UTF8: cbor.UTF8DecodeInvalid}.DecMode()
	if err != nil {
		panic(fmt.Errorf("cbor dec mode: %w", err))
	}
	return dm
}

// WriteCBOR пишет документ в каноническом CBOR.
func WriteCBOR(w io.Writer, doc Document) error {
	if err := cborMode.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode cbor: %w", err)
	}
	return nil
}

// CBOR строит документ и пишет его в CBOR.
func CBOR(w io.Writer, entries []Entry, opts JSONOpts, tool, version string) error {
	return WriteCBOR(w, BuildDocument(entries, opts, tool, version))
}

// DecodeCBOR reads a document written by WriteCBOR.
func DecodeCBOR(data []byte) (Document, error) {
	var doc Document
	if err := cborDecMode.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode cbor: %w", err)
	}
	return doc, nil
}
