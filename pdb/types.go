package pdb

import (
	"fmt"

	"github.com/sefgit/biotite/seq"
)

// Entry represents all information read from a single PDB file.
type Entry struct {
	Path   string
	IDCode string
	Chains []*Chain

	// Bonds holds the connectivity declared by CONECT records, as pairs of
	// atom serial numbers with Serial1 < Serial2.
	Bonds []Bond
}

// Chain represents one chain or subunit of an entry. SeqRes holds the
// three-letter residue names declared by SEQRES records, which may cover
// residues that have no coordinates.
type Chain struct {
	Entry  *Entry
	Ident  byte
	SeqRes []string
	Models []*Model
}

// Model is one coordinate set of a chain. Files without MODEL records
// produce a single model numbered 1.
type Model struct {
	Chain    *Chain
	Num      int
	Residues []*Residue
}

// Residue groups the atoms of one residue within a model.
type Residue struct {
	Name    string
	SeqNum  int
	InsCode byte
	Atoms   []Atom
}

// Atom is a single ATOM or HETATM record.
type Atom struct {
	Serial    int
	Name      string
	AltLoc    byte
	Het       bool
	Coords    Coords
	Occupancy float64
	BFactor   float64
	Element   string
	Charge    int
}

// Coords is a point in orthogonal angstrom coordinates.
type Coords struct {
	X, Y, Z float64
}

// Bond is an explicit bond between two atoms, identified by serial number.
type Bond struct {
	Serial1, Serial2 int
}

// Chain returns the chain with the given identifier, or nil if the entry
// has no such chain.
func (e *Entry) Chain(ident byte) *Chain {
	for _, c := range e.Chains {
		if c.Ident == ident {
			return c
		}
	}
	return nil
}

// OneChain returns the entry's only chain and panics if the entry does not
// have exactly one. Convenient for files known to be single-chain.
func (e *Entry) OneChain() *Chain {
	if len(e.Chains) != 1 {
		panic(fmt.Sprintf("OneChain called on PDB entry '%s' with %d chains",
			e.Path, len(e.Chains)))
	}
	return e.Chains[0]
}

func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if c := e.Chain(ident); c != nil {
		return c
	}
	c := &Chain{
		Entry:  e,
		Ident:  ident,
		SeqRes: make([]string, 0, 10),
	}
	e.Chains = append(e.Chains, c)
	return c
}

func (c *Chain) getOrMakeModel(num int) *Model {
	for _, m := range c.Models {
		if m.Num == num {
			return m
		}
	}
	m := &Model{Chain: c, Num: num}
	c.Models = append(c.Models, m)
	return m
}

// Model returns the model with the given number, or nil.
func (c *Chain) Model(num int) *Model {
	for _, m := range c.Models {
		if m.Num == num {
			return m
		}
	}
	return nil
}

// IsNucleicAcid reports whether the majority of the chain's SEQRES residue
// names are nucleotide names.
func (c *Chain) IsNucleicAcid() bool {
	if len(c.SeqRes) == 0 {
		return false
	}
	n := 0
	for _, name := range c.SeqRes {
		if _, ok := NucleotideNameToBase[name]; ok {
			n++
		}
	}
	return n*2 > len(c.SeqRes)
}

// Sequence decodes the chain's SEQRES residue names into a sequence:
// a NucleotideSequence for nucleic acid chains, a ProteinSequence
// otherwise. Unknown residue names map to 'N' and 'X' respectively.
func (c *Chain) Sequence() (*seq.Sequence, error) {
	letters := make([]byte, len(c.SeqRes))
	if c.IsNucleicAcid() {
		for i, name := range c.SeqRes {
			base, ok := NucleotideNameToBase[name]
			if !ok {
				base = 'N'
			}
			letters[i] = base
		}
		s, err := seq.NewNucleotide(string(letters))
		if err != nil {
			return nil, err
		}
		return s.Sequence, nil
	}
	for i, name := range c.SeqRes {
		single, ok := AminoThreeToOne[name]
		if !ok {
			single = 'X'
		}
		// Selenocysteine and pyrrolysine fall outside the sequence alphabet;
		// substitute the residues they derive from.
		switch single {
		case 'U':
			single = 'C'
		case 'O':
			single = 'K'
		}
		letters[i] = single
	}
	s, err := seq.NewProtein(string(letters))
	if err != nil {
		return nil, err
	}
	return s.Sequence, nil
}

// CAlphaCoords returns the coordinates of the model's alpha-carbon atoms in
// residue order. Residues without a CA atom are skipped.
func (m *Model) CAlphaCoords() []Coords {
	coords := make([]Coords, 0, len(m.Residues))
	for _, r := range m.Residues {
		for _, a := range r.Atoms {
			if a.Name == "CA" && !a.Het {
				coords = append(coords, a.Coords)
				break
			}
		}
	}
	return coords
}

// Atoms returns all atoms of the model in file order.
func (m *Model) Atoms() []Atom {
	atoms := make([]Atom, 0, len(m.Residues)*8)
	for _, r := range m.Residues {
		atoms = append(atoms, r.Atoms...)
	}
	return atoms
}
