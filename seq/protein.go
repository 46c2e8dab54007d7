package seq

import "strings"

// Protein is the amino acid alphabet: the twenty standard residues followed
// by the ambiguity codes B, Z and X and the stop symbol.
var Protein = Letters("ACDEFGHIKLMNPQRSTVWYBZX*")

// A ProteinSequence is an amino acid sequence over the Protein alphabet.
type ProteinSequence struct {
	*Sequence
}

// NewProtein creates a protein sequence from a string, one residue per
// character. Lower case letters are accepted and upper-cased.
func NewProtein(s string) (ProteinSequence, error) {
	seq, err := NewFromString(Protein, strings.ToUpper(s))
	if err != nil {
		return ProteinSequence{}, err
	}
	return ProteinSequence{seq}, nil
}
