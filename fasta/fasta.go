// Package fasta reads and writes FASTA formatted sequence files and
// converts entries into alphabet-coded sequences from the seq package.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sefgit/biotite/seq"
)

// An Entry corresponds to an entry in a FASTA file: a single line header
// and a sequence over multiple lines concatenated into one slice of bytes.
type Entry struct {
	Header   string
	Residues []byte
}

// String is the entry in FASTA format, with the sequence wrapped at 60
// columns.
func (e Entry) String() string {
	return e.StringCols(60)
}

// StringCols returns the FASTA string corresponding to this entry with the
// sequence wrapped at the number of columns given.
//
// If cols is <= 0, then no wrapping is done.
func (e Entry) StringCols(cols int) string {
	if cols <= 0 {
		return fmt.Sprintf(">%s\n%s", e.Header, string(e.Residues))
	}
	wrapped := make([]string, 1+((len(e.Residues)-1)/cols))
	for i := range wrapped {
		start := cols * i
		end := start + cols
		if end > len(e.Residues) {
			end = len(e.Residues)
		}
		wrapped[i] = string(e.Residues[start:end])
	}
	return fmt.Sprintf(">%s\n%s", e.Header, strings.Join(wrapped, "\n"))
}

func (e Entry) isNull() bool {
	return len(e.Header) == 0 && e.Residues == nil
}

// Sequence encodes the entry's residues: a NucleotideSequence when every
// residue is a nucleotide symbol, a ProteinSequence otherwise. The format
// itself does not distinguish the two, so the choice is by content.
// Alignment gaps are removed before encoding; neither alphabet has a gap
// symbol.
func (e Entry) Sequence() (*seq.Sequence, error) {
	residues := string(bytes.ReplaceAll(e.Residues, []byte{'-'}, nil))
	if n, err := seq.NewNucleotide(residues); err == nil {
		return n.Sequence, nil
	}
	p, err := seq.NewProtein(residues)
	if err != nil {
		return nil, err
	}
	return p.Sequence, nil
}

// A Reader reads entries from FASTA encoded input.
//
// If TrustSequences is true, then sequence data will not be checked to
// make sure that it conforms to the NCBI spec. If you trust the data, this
// may improve performance.
type Reader struct {
	TrustSequences bool
	buf            *bufio.Reader
	line           int
	nextHeader     []byte
}

// NewReader creates a new FASTA reader from an io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf:  bufio.NewReader(r),
		line: 1,
	}
}

// ReadAll reads all entries in the FASTA input and returns them as a
// slice. If an error is encountered, processing is stopped and the error
// is returned.
func (r *Reader) ReadAll() ([]Entry, error) {
	entries := make([]Entry, 0, 10)
	for {
		entry, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Read reads the next entry in the FASTA input.
//
// The only characters allowed in the sequence section are a-z, A-Z, * and
// -. Any other character results in an error. All lower case letters in
// the sequence section are translated to upper case. Blank lines, leading
// and trailing whitespace are always ignored.
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read() (Entry, error) {
	entry := Entry{}
	seenHeader := false

	// The previous Read stops at the next entry's header, so it may
	// already be buffered.
	if r.nextHeader != nil {
		entry.Header = trimHeader(r.nextHeader)
		r.nextHeader = nil
		seenHeader = true
	}
	for {
		line, err := r.buf.ReadBytes('\n')
		if err == io.EOF {
			if len(line) == 0 {
				if entry.isNull() {
					return Entry{}, io.EOF
				}
				return entry, nil
			}
		} else if err != nil {
			return Entry{}, err
		}
		line = bytes.TrimSpace(line)

		if len(line) == 0 {
			r.line++
			continue
		}
		if !seenHeader {
			if line[0] != '>' {
				return Entry{}, fmt.Errorf(
					"fasta: expected '>' on line %d, got '%c'",
					r.line, line[0])
			}
			entry.Header = trimHeader(line)
			seenHeader = true
			r.line++
			continue
		} else if line[0] == '>' {
			// This is the next entry's header; keep it for the next Read.
			r.nextHeader = line
			r.line++
			return entry, nil
		}

		if entry.Residues == nil {
			entry.Residues = make([]byte, 0, 50)
		}
		if !r.TrustSequences {
			for i, b := range line {
				bNew, ok := normalize(b)
				if !ok {
					return Entry{}, fmt.Errorf(
						"fasta: invalid character '%c' on line %d", b, r.line)
				}
				line[i] = bNew
			}
		}
		// 'line...' copies the bytes, which is what we want, lest we pin
		// the read buffer so that the garbage collector can't free it.
		entry.Residues = append(entry.Residues, line...)
		r.line++
	}
}

// normalize checks whether a sequence character is valid and upper-cases
// it.
func normalize(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', true
	case b >= 'A' && b <= 'Z':
		return b, true
	case b == '*' || b == '-':
		return b, true
	}
	return 0, false
}

func trimHeader(line []byte) string {
	return string(bytes.TrimSpace(bytes.TrimLeft(line, ">")))
}

// A Writer writes entries to a FASTA encoded file.
type Writer struct {
	// The number of columns to wrap a sequence at. By default, this is set
	// to 60. A value <= 0 results in no wrapping.
	Columns int
	buf     *bufio.Writer
}

// NewWriter creates a new FASTA writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Columns: 60, buf: bufio.NewWriter(w)}
}

// Write writes a single FASTA entry. You may need to call Flush for the
// entry to reach the underlying writer.
func (w *Writer) Write(entry Entry) error {
	_, err := w.buf.WriteString(entry.StringCols(w.Columns))
	if err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// WriteAll writes all given entries and flushes.
func (w *Writer) WriteAll(entries []Entry) error {
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
