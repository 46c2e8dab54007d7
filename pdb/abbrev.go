package pdb

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
	"ASX": 'B', "GLX": 'Z', "UNK": 'X',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in this
// package's 'init' function.
var AminoOneToThree = map[byte]string{}

// NucleotideNameToBase maps PDB nucleotide residue names to single letter
// bases. Deoxyribonucleotides carry a 'D' prefix in the PDB format; RNA
// uses the bare base letter.
var NucleotideNameToBase = map[string]byte{
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T', "DU": 'U', "DI": 'N',
	"A": 'A', "C": 'C', "G": 'G', "T": 'T', "U": 'U', "I": 'N',
}

func init() {
	// Create a reverse map of AminoThreeToOne.
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}
