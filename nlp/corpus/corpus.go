// Package corpus reads a zip archive of news documents into memory.
//
// Directory entries are skipped; every other entry becomes one document
// keyed by its base file name, so "reuters-vol1-disk1-subset/2286.xml" is
// stored as "2286.xml". Two entries with the same base name in different
// directories collapse to the last one read.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zip"
)

var (
	// ErrOpen is returned when the archive or one of its entries cannot be read.
	ErrOpen = errors.New("corpus: cannot read archive")
	// ErrDecode is returned when an entry is not valid UTF-8 text.
	ErrDecode = errors.New("corpus: entry is not valid UTF-8")
)

// Corpus maps a document identifier to its raw markup.
type Corpus map[string]string

// IDs returns the document identifiers in lexical order.
func (c Corpus) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Load opens the zip archive at name and reads every document in it.
func Load(name string) (Corpus, error) {
	zr, err := zip.OpenReader(name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrOpen, name, err)
	}
	defer zr.Close()
	return read(&zr.Reader)
}

// Read reads the documents of a zip archive held in r.
func Read(r io.ReaderAt, size int64) (Corpus, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return read(zr)
}

func read(zr *zip.Reader) (Corpus, error) {
	c := make(Corpus, len(zr.File))
	for _, f := range zr.File {
		if isDir(f) {
			continue
		}
		text, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		c[path.Base(f.Name)] = text
	}
	return c, nil
}

func isDir(f *zip.File) bool {
	return strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir()
}

func readEntry(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrOpen, f.Name, err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrOpen, f.Name, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s", ErrDecode, f.Name)
	}
	return string(b), nil
}
