package pdb

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/sefgit/biotite/seq"
)

var testEntryText = strings.Join([]string{
	"HEADER" + strings.Repeat(" ", 56) + "1ABC",
	"SEQRES   1 A    5  MET ALA GLY LYS CYS",
	"ATOM      1  N   MET A   1      11.104   6.134  -6.504  1.00  0.00           N",
	"ATOM      2  CA  MET A   1      12.560   7.330  -5.800  1.00 10.00           C",
	"ATOM      3  CA  ALA A   2      13.000   8.000  -4.000  1.00  0.00           C",
	"HETATM    4  O   HOH A 101      10.000   9.000  -3.000  1.00  0.00           O",
	"TER       5      ALA A   2",
	"CONECT    1    2",
	"CONECT    2    1",
	"END",
}, "\n") + "\n"

func readTestEntry(t *testing.T, text string) *Entry {
	t.Helper()
	var r Reader
	entry, err := r.Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("reading test entry: %s", err)
	}
	return entry
}

func TestRead(t *testing.T) {
	entry := readTestEntry(t, testEntryText)

	if entry.IDCode != "1ABC" {
		t.Errorf("ID code is %q, want 1ABC", entry.IDCode)
	}
	if len(entry.Chains) != 1 {
		t.Fatalf("entry has %d chains, want 1", len(entry.Chains))
	}
	chain := entry.OneChain()
	if chain.Ident != 'A' {
		t.Errorf("chain ident is %c, want A", chain.Ident)
	}
	if got := strings.Join(chain.SeqRes, " "); got != "MET ALA GLY LYS CYS" {
		t.Errorf("SEQRES names are %q", got)
	}

	if len(chain.Models) != 1 {
		t.Fatalf("chain has %d models, want 1", len(chain.Models))
	}
	model := chain.Models[0]
	if model.Num != 1 {
		t.Errorf("model number is %d, want 1", model.Num)
	}
	if len(model.Residues) != 3 {
		t.Fatalf("model has %d residues, want 3", len(model.Residues))
	}

	met := model.Residues[0]
	if met.Name != "MET" || met.SeqNum != 1 || len(met.Atoms) != 2 {
		t.Fatalf("first residue is %s %d with %d atoms",
			met.Name, met.SeqNum, len(met.Atoms))
	}
	ca := met.Atoms[1]
	if ca.Name != "CA" || ca.Serial != 2 || ca.Element != "C" {
		t.Errorf("unexpected CA atom %+v", ca)
	}
	if ca.Coords.X != 12.560 || ca.Coords.Y != 7.330 ||
		ca.Coords.Z != -5.800 {
		t.Errorf("CA coordinates are %+v", ca.Coords)
	}
	if ca.Occupancy != 1.00 || ca.BFactor != 10.00 {
		t.Errorf("CA occupancy/B-factor are %f/%f",
			ca.Occupancy, ca.BFactor)
	}

	water := model.Residues[2]
	if water.Name != "HOH" || water.SeqNum != 101 || !water.Atoms[0].Het {
		t.Errorf("unexpected water residue %+v", water)
	}

	// The duplicate CONECT direction collapses into one bond.
	if len(entry.Bonds) != 1 {
		t.Fatalf("entry has %d bonds, want 1", len(entry.Bonds))
	}
	if b := entry.Bonds[0]; b.Serial1 != 1 || b.Serial2 != 2 {
		t.Errorf("bond is %+v", b)
	}

	if cas := model.CAlphaCoords(); len(cas) != 2 {
		t.Errorf("model has %d CA coordinates, want 2", len(cas))
	}
}

func TestChainSequence(t *testing.T) {
	entry := readTestEntry(t, testEntryText)
	s, err := entry.OneChain().Sequence()
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s.String() != "MAGKC" {
		t.Errorf("chain sequence is %q, want MAGKC", s.String())
	}
	if !s.Alphabet().Equal(seq.Protein) {
		t.Error("an amino acid chain should decode over the protein " +
			"alphabet")
	}

	dna := &Chain{Ident: 'B', SeqRes: []string{"DA", "DC", "DG", "DT"}}
	s, err = dna.Sequence()
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s.String() != "ACGT" {
		t.Errorf("nucleic chain sequence is %q, want ACGT", s.String())
	}
	if !s.Alphabet().Equal(seq.NucleotideUnambiguous) {
		t.Error("a nucleic acid chain should decode over a nucleotide " +
			"alphabet")
	}
}

func TestReadHybrid36Serial(t *testing.T) {
	text := "ATOM  A0000  CA  GLY A   1       1.000   2.000   3.000" +
		"  1.00  0.00           C\n"
	entry := readTestEntry(t, text)
	atom := entry.OneChain().Models[0].Residues[0].Atoms[0]
	if atom.Serial != 100000 {
		t.Errorf("hybrid-36 serial decodes to %d, want 100000", atom.Serial)
	}
}

func TestReadMultiModel(t *testing.T) {
	text := strings.Join([]string{
		"MODEL        1",
		"ATOM      1  CA  GLY A   1       1.000   2.000   3.000  1.00  0.00           C",
		"ENDMDL",
		"MODEL        2",
		"ATOM      1  CA  GLY A   1       1.500   2.500   3.500  1.00  0.00           C",
		"ENDMDL",
		"END",
	}, "\n") + "\n"
	entry := readTestEntry(t, text)

	chain := entry.OneChain()
	if len(chain.Models) != 2 {
		t.Fatalf("chain has %d models, want 2", len(chain.Models))
	}
	m2 := chain.Model(2)
	if m2 == nil {
		t.Fatal("model 2 is missing")
	}
	if x := m2.Residues[0].Atoms[0].Coords.X; x != 1.500 {
		t.Errorf("model 2 CA x is %f, want 1.5", x)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	entry := readTestEntry(t, testEntryText)

	buf := new(bytes.Buffer)
	if err := Write(buf, entry); err != nil {
		t.Fatalf("writing entry: %s", err)
	}
	again := readTestEntry(t, buf.String())

	testEntriesEqual(t, entry, again)
}

func TestWriteMultiModelRoundTrip(t *testing.T) {
	text := strings.Join([]string{
		"MODEL        1",
		"ATOM      1  CA  GLY A   1       1.000   2.000   3.000  1.00  0.00           C",
		"ENDMDL",
		"MODEL        2",
		"ATOM      1  CA  GLY A   1       1.500   2.500   3.500  1.00  0.00           C",
		"ENDMDL",
		"END",
	}, "\n") + "\n"
	entry := readTestEntry(t, text)

	buf := new(bytes.Buffer)
	if err := Write(buf, entry); err != nil {
		t.Fatalf("writing entry: %s", err)
	}
	testEntriesEqual(t, entry, readTestEntry(t, buf.String()))
}

func TestWriteHybrid36(t *testing.T) {
	entry := readTestEntry(t, testEntryText)
	entry.OneChain().Models[0].Residues[0].Atoms[0].Serial = 100000

	if err := Write(new(bytes.Buffer), entry); err == nil {
		t.Fatal("writing an overflowing serial without hybrid-36 should " +
			"fail")
	}

	w := Writer{Hybrid36: true}
	buf := new(bytes.Buffer)
	if err := w.Write(buf, entry); err != nil {
		t.Fatalf("writing entry: %s", err)
	}
	if !strings.Contains(buf.String(), "A0000") {
		t.Error("output should contain the hybrid-36 serial A0000")
	}
	again := readTestEntry(t, buf.String())
	if s := again.OneChain().Models[0].Residues[0].Atoms[0].Serial; s != 100000 {
		t.Errorf("round-tripped serial is %d, want 100000", s)
	}
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pdb.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(testEntryText)); err != nil {
		t.Fatalf("%s", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("%s", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("%s", err)
	}

	entry, err := ReadFile(path)
	if err != nil {
		t.Fatalf("reading gzipped entry: %s", err)
	}
	if entry.Path != path {
		t.Errorf("entry path is %q, want %q", entry.Path, path)
	}
	if entry.IDCode != "1ABC" {
		t.Errorf("ID code is %q, want 1ABC", entry.IDCode)
	}
}

func TestSkipsMalformedRecords(t *testing.T) {
	text := strings.Join([]string{
		"ATOM      1  CA  GLY A   1       1.000   2.000   3.000  1.00  0.00           C",
		"ATOM      x  CA  GLY A   2       1.000   2.000   3.000  1.00  0.00           C",
		"ATOM      3  CA  GLY A   3       1.000     bad   3.000  1.00  0.00           C",
		"END",
	}, "\n") + "\n"
	entry := readTestEntry(t, text)
	if n := len(entry.OneChain().Models[0].Residues); n != 1 {
		t.Errorf("model has %d residues, want only the well-formed one", n)
	}
}

func testEntriesEqual(t *testing.T, e1, e2 *Entry) {
	t.Helper()
	if e1.IDCode != e2.IDCode {
		t.Errorf("ID codes differ: %q vs %q", e1.IDCode, e2.IDCode)
	}
	if len(e1.Chains) != len(e2.Chains) {
		t.Fatalf("chain counts differ: %d vs %d",
			len(e1.Chains), len(e2.Chains))
	}
	for i, c1 := range e1.Chains {
		c2 := e2.Chains[i]
		if c1.Ident != c2.Ident {
			t.Errorf("chain idents differ: %c vs %c", c1.Ident, c2.Ident)
		}
		if strings.Join(c1.SeqRes, " ") != strings.Join(c2.SeqRes, " ") {
			t.Errorf("SEQRES differ for chain %c", c1.Ident)
		}
		if len(c1.Models) != len(c2.Models) {
			t.Fatalf("model counts differ for chain %c", c1.Ident)
		}
		for j, m1 := range c1.Models {
			m2 := c2.Models[j]
			if m1.Num != m2.Num {
				t.Errorf("model numbers differ: %d vs %d", m1.Num, m2.Num)
			}
			a1, a2 := m1.Atoms(), m2.Atoms()
			if len(a1) != len(a2) {
				t.Fatalf("atom counts differ: %d vs %d", len(a1), len(a2))
			}
			for k := range a1 {
				if a1[k] != a2[k] {
					t.Errorf("atom %d differs:\n%+v\n%+v", k, a1[k], a2[k])
				}
			}
		}
	}
	if len(e1.Bonds) != len(e2.Bonds) {
		t.Fatalf("bond counts differ: %d vs %d",
			len(e1.Bonds), len(e2.Bonds))
	}
	for i := range e1.Bonds {
		if e1.Bonds[i] != e2.Bonds[i] {
			t.Errorf("bond %d differs: %+v vs %+v",
				i, e1.Bonds[i], e2.Bonds[i])
		}
	}
}
