package fds

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/notargets/fdsmesh/mesh"
)

// Writer emits FDS text, one namelist or comment per line
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (fw *Writer) line(s string) {
	if fw.err != nil {
		return
	}
	_, fw.err = io.WriteString(fw.w, s+"\n")
}

func (fw *Writer) WriteHead(chid, title string) error {
	nl := NewNamelist("HEAD", "CHID="+quote(chid))
	if title != "" {
		nl.Add("TITLE=%s", quote(title))
	}
	fw.line(nl.String())
	return fw.err
}

func (fw *Writer) WriteGeometry(g mesh.Geometry, fyi string, process []int) error {
	lines, err := MeshNamelists(g, fyi, process)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fw.line(l)
	}
	return fw.err
}

func (fw *Writer) WriteTail() error {
	fw.line(NewNamelist("TAIL").String())
	return fw.err
}

type zstdFile struct {
	*zstd.Encoder
	f *os.File
}

func (z *zstdFile) Close() error {
	if err := z.Encoder.Close(); err != nil {
		z.f.Close()
		return err
	}
	return z.f.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

/*
Create opens path for writing. "" and "-" are stdout, a path ending in .zst
is zstd compressed.
*/
func Create(path string) (wc io.WriteCloser, err error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	var enc *zstd.Encoder
	if enc, err = zstd.NewWriter(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("zstd writer for %s: %w", path, err)
	}
	return &zstdFile{Encoder: enc, f: f}, nil
}
