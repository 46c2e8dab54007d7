package seq

import "testing"

func TestNucleotideAlphabets(t *testing.T) {
	if !NucleotideAmbiguous.Extends(NucleotideUnambiguous) {
		t.Error("the ambiguous alphabet should extend the unambiguous one")
	}
}

func TestNewNucleotide(t *testing.T) {
	s, err := NewNucleotide("acgta")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s.String() != "ACGTA" {
		t.Errorf("sequence is %q, want ACGTA", s.String())
	}
	if !s.Alphabet().Equal(NucleotideUnambiguous) {
		t.Error("plain ACGT content should use the unambiguous alphabet")
	}

	// RNA input reads as its cDNA.
	s, err = NewNucleotide("ACGUA")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s.String() != "ACGTA" {
		t.Errorf("sequence is %q, want ACGTA", s.String())
	}

	s, err = NewNucleotide("ACGTN")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !s.Alphabet().Equal(NucleotideAmbiguous) {
		t.Error("content with ambiguity codes should use the ambiguous " +
			"alphabet")
	}

	if _, err := NewNucleotide("ACGT!"); err == nil {
		t.Error("invalid characters should be rejected")
	}
}

func TestComplement(t *testing.T) {
	tests := []struct {
		in, answer string
	}{
		{"ACGTA", "TGCAT"},
		{"AACC", "TTGG"},
		{"RYWSMKHBVDN", "YRWSKMDVBHN"},
	}
	for _, test := range tests {
		s, err := NewNucleotide(test.in)
		if err != nil {
			t.Fatalf("%s", err)
		}
		if got := s.Complement().String(); got != test.answer {
			t.Errorf("complement of %q is %q, want %q",
				test.in, got, test.answer)
		}
		// Complementing twice restores the sequence.
		if got := s.Complement().Complement().String(); got != test.in {
			t.Errorf("double complement of %q is %q", test.in, got)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	s, err := NewNucleotide("ATGCCC")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if got := s.ReverseComplement().String(); got != "GGGCAT" {
		t.Errorf("reverse complement is %q, want GGGCAT", got)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		in, answer string
	}{
		{"ATGAAACGCATTAGC", "MKRIS"},
		{"ATGTAA", "M*"},
		{"ATGGC", "M"}, // trailing partial codon dropped
		{"TGGTGCTTATTCGTA", "WCLFV"},
	}
	for _, test := range tests {
		s, err := NewNucleotide(test.in)
		if err != nil {
			t.Fatalf("%s", err)
		}
		prot, err := s.Translate()
		if err != nil {
			t.Fatalf("translating %q: %s", test.in, err)
		}
		if prot.String() != test.answer {
			t.Errorf("translation of %q is %q, want %q",
				test.in, prot.String(), test.answer)
		}
	}

	amb, err := NewNucleotide("ATGNNN")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if _, err := amb.Translate(); err == nil {
		t.Error("translating ambiguous bases should fail")
	}
}

func TestNewProtein(t *testing.T) {
	s, err := NewProtein("mkr*")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s.String() != "MKR*" {
		t.Errorf("sequence is %q, want MKR*", s.String())
	}
	if _, err := NewProtein("MK1"); err == nil {
		t.Error("invalid residues should be rejected")
	}
}
