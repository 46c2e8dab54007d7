package seq

import (
	"fmt"
	"strings"
)

// Nucleotide alphabets. The ambiguous alphabet appends the IUPAC ambiguity
// codes to the unambiguous one, so it extends it by construction and the
// two kinds of nucleotide sequence concatenate freely.
var (
	NucleotideUnambiguous = Letters("ACGT")
	NucleotideAmbiguous   = Letters("ACGTRYWSMKHBVDN")
)

// complement of each code in the ambiguous nucleotide alphabet. The first
// four entries double as the unambiguous table.
var nucComplement = [15]uint64{
	3, 2, 1, 0, // A C G T -> T G C A
	5, 4, 6, 7, // R Y W S -> Y R W S
	9, 8, // M K -> K M
	13, 12, 11, 10, // H B V D -> D V B H
	14, // N -> N
}

// Codon table for the standard genetic code, indexed by
// 16*code(base1) + 4*code(base2) + code(base3) over the unambiguous
// alphabet. '*' marks a stop.
const standardCodonTable = "KNKNTTTTRSRSIIMI" +
	"QHQHPPPPRRRRLLLL" +
	"EDEDAAAAGGGGVVVV" +
	"*Y*YSSSS*CWCLFLF"

// A NucleotideSequence is a DNA sequence over the unambiguous ACGT alphabet
// or, when needed, the ambiguous IUPAC alphabet. It shares all Sequence
// behavior and adds the nucleotide-specific transforms.
type NucleotideSequence struct {
	*Sequence
}

// NewNucleotide creates a nucleotide sequence from a string, one base per
// character. Lower case letters are accepted and upper-cased, 'U' is read
// as 'T'. The unambiguous alphabet is used when the string allows it,
// otherwise the ambiguous one.
func NewNucleotide(s string) (NucleotideSequence, error) {
	s = strings.ReplaceAll(strings.ToUpper(s), "U", "T")
	seq, err := NewFromString(NucleotideUnambiguous, s)
	if err != nil {
		seq, err = NewFromString(NucleotideAmbiguous, s)
	}
	if err != nil {
		return NucleotideSequence{}, err
	}
	return NucleotideSequence{seq}, nil
}

// Complement returns a new sequence with every base replaced by its
// complement. The sequence must be valid.
func (s NucleotideSequence) Complement() NucleotideSequence {
	code := s.Code()
	out := NewCodeArray(code.Width(), code.Len())
	for i := 0; i < code.Len(); i++ {
		out.Set(i, nucComplement[code.At(i)])
	}
	return NucleotideSequence{s.CopyWithCode(out)}
}

// ReverseComplement returns the complement in reverse order, i.e. the
// opposite strand read 5' to 3'.
func (s NucleotideSequence) ReverseComplement() NucleotideSequence {
	return NucleotideSequence{s.Complement().Reverse()}
}

// Translate translates the sequence into a protein sequence using the
// standard genetic code, reading from position 0. A trailing partial codon
// is dropped. Only unambiguous bases can be translated.
func (s NucleotideSequence) Translate() (ProteinSequence, error) {
	code := s.Code()
	letters := make([]byte, 0, code.Len()/3)
	for i := 0; i+2 < code.Len(); i += 3 {
		c1, c2, c3 := code.At(i), code.At(i+1), code.At(i+2)
		if c1 >= 4 || c2 >= 4 || c3 >= 4 {
			return ProteinSequence{}, fmt.Errorf(
				"seq: cannot translate ambiguous codon at position %d", i)
		}
		letters = append(letters, standardCodonTable[16*c1+4*c2+c3])
	}
	seq, err := NewFromString(Protein, string(letters))
	if err != nil {
		return ProteinSequence{}, err
	}
	return ProteinSequence{seq}, nil
}
