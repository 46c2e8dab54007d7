package pdb

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sefgit/biotite/hybrid36"
)

// A Writer formats PDB entries. The zero value writes plain decimal
// identifier fields and fails on values that overflow them; with Hybrid36
// set, overflowing atom serials and residue numbers are written in
// hybrid-36 notation instead.
type Writer struct {
	Hybrid36 bool
}

// Write formats the entry with a zero Writer.
func Write(out io.Writer, e *Entry) error {
	var w Writer
	return w.Write(out, e)
}

// Write formats the entry as PDB text: HEADER, SEQRES, coordinate records
// (wrapped in MODEL/ENDMDL when the entry has several models), TER after
// each chain, CONECT for every bond, and END.
func (w *Writer) Write(out io.Writer, e *Entry) error {
	buf := bufio.NewWriter(out)

	if e.IDCode != "" {
		fmt.Fprintf(buf, "HEADER%56s%4s\n", "", e.IDCode)
	}
	for _, c := range e.Chains {
		writeSeqres(buf, c)
	}

	nums := modelNums(e)
	multi := len(nums) > 1
	for _, num := range nums {
		if multi {
			fmt.Fprintf(buf, "MODEL     %4d\n", num)
		}
		for _, c := range e.Chains {
			m := c.Model(num)
			if m == nil {
				continue
			}
			if err := w.writeModel(buf, c, m); err != nil {
				return err
			}
		}
		if multi {
			fmt.Fprintln(buf, "ENDMDL")
		}
	}

	for _, b := range e.Bonds {
		s1, err := w.idField(b.Serial1, 5)
		if err != nil {
			return err
		}
		s2, err := w.idField(b.Serial2, 5)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "CONECT%s%s\n", s1, s2)
	}

	fmt.Fprintln(buf, "END")
	return buf.Flush()
}

func (w *Writer) writeModel(buf *bufio.Writer, c *Chain, m *Model) error {
	lastSerial := 0
	for _, r := range m.Residues {
		for _, a := range r.Atoms {
			if err := w.writeAtom(buf, c, r, a); err != nil {
				return err
			}
			lastSerial = a.Serial
		}
	}
	if len(m.Residues) == 0 {
		return nil
	}
	last := m.Residues[len(m.Residues)-1]
	ts, err := w.idField(lastSerial+1, 5)
	if err != nil {
		return err
	}
	rs, err := w.idField(last.SeqNum, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "TER   %s      %3s %c%s%c\n",
		ts, last.Name, printable(c.Ident), rs, printable(last.InsCode))
	return nil
}

func (w *Writer) writeAtom(buf *bufio.Writer, c *Chain, r *Residue,
	a Atom) error {

	record := "ATOM  "
	if a.Het {
		record = "HETATM"
	}
	serial, err := w.idField(a.Serial, 5)
	if err != nil {
		return err
	}
	seqNum, err := w.idField(r.SeqNum, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf,
		"%s%s %s%c%3s %c%s%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%s\n",
		record, serial, nameField(a.Name), printable(a.AltLoc), r.Name,
		printable(c.Ident), seqNum, printable(r.InsCode),
		a.Coords.X, a.Coords.Y, a.Coords.Z, a.Occupancy, a.BFactor,
		a.Element, chargeField(a.Charge))
	return nil
}

// writeSeqres emits the chain's SEQRES records, 13 residue names per line.
func writeSeqres(buf *bufio.Writer, c *Chain) {
	for i, ser := 0, 1; i < len(c.SeqRes); i, ser = i+13, ser+1 {
		end := i + 13
		if end > len(c.SeqRes) {
			end = len(c.SeqRes)
		}
		names := make([]string, end-i)
		for j, name := range c.SeqRes[i:end] {
			names[j] = fmt.Sprintf("%3s", name)
		}
		fmt.Fprintf(buf, "SEQRES %3d %c %4d  %s\n",
			ser, printable(c.Ident), len(c.SeqRes), strings.Join(names, " "))
	}
}

// idField formats an identifier into a right-aligned fixed-width field,
// switching to hybrid-36 when the value overflows the field and the writer
// allows it.
func (w *Writer) idField(n, width int) (string, error) {
	limit := 1
	for i := 0; i < width; i++ {
		limit *= 10
	}
	if n < limit && (n >= 0 || !w.Hybrid36) && n > -limit/10 {
		return fmt.Sprintf("%*d", width, n), nil
	}
	if !w.Hybrid36 {
		return "", fmt.Errorf("pdb: identifier %d overflows a %d column "+
			"field; enable hybrid-36 output", n, width)
	}
	return hybrid36.Encode(n, width)
}

// nameField left-justifies an atom name in its four columns. Names shorter
// than four characters start one column in, per the format's alignment
// convention for single-letter element symbols.
func nameField(name string) string {
	if len(name) >= 4 {
		return name[:4]
	}
	return fmt.Sprintf(" %-3s", name)
}

func chargeField(charge int) string {
	switch {
	case charge > 0:
		return fmt.Sprintf("%d+", charge)
	case charge < 0:
		return fmt.Sprintf("%d-", -charge)
	}
	return "  "
}

func printable(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

func modelNums(e *Entry) []int {
	seen := make(map[int]bool)
	nums := make([]int, 0, 1)
	for _, c := range e.Chains {
		for _, m := range c.Models {
			if !seen[m.Num] {
				seen[m.Num] = true
				nums = append(nums, m.Num)
			}
		}
	}
	sort.Ints(nums)
	return nums
}
