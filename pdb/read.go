package pdb

import (
	"bufio"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/sefgit/biotite/hybrid36"
)

// A Reader parses PDB entries. The zero value is ready to use.
//
// Malformed records are skipped rather than aborting the parse, matching
// how permissive the format is in the wild. Set Logger to see diagnostics
// for every skipped record; by default the reader is silent.
type Reader struct {
	Logger *zap.Logger
}

// ReadFile parses the PDB file at the given path. Files ending in ".gz"
// are decompressed on the fly.
func ReadFile(fileName string) (*Entry, error) {
	var r Reader
	return r.ReadFile(fileName)
}

// ReadFile parses the PDB file at the given path. Files ending in ".gz"
// are decompressed on the fly.
func (r *Reader) ReadFile(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in io.Reader = f
	if path.Ext(fileName) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		in = gz
	}

	entry, err := r.Read(in)
	if err != nil {
		return nil, err
	}
	entry.Path = fileName
	return entry, nil
}

// Read parses a PDB entry from an uncompressed stream.
func (r *Reader) Read(in io.Reader) (*Entry, error) {
	lg := r.Logger
	if lg == nil {
		lg = zap.NewNop()
	}

	entry := &Entry{}
	p := &parser{entry: entry, lg: lg, model: 0}

	// Traverse each line and process it according to the record name in the
	// first six columns. Lines longer than the buffer do not occur in
	// conforming files.
	scanner := bufio.NewReaderSize(in, 1024)
	lineNum := 0
	for {
		line, _, err := scanner.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		lineNum++
		p.line, p.lineNum = line, lineNum

		switch strings.TrimSpace(field(line, 0, 6)) {
		case "HEADER":
			entry.IDCode = strings.TrimSpace(field(line, 62, 66))
		case "SEQRES":
			p.parseSeqres()
		case "MODEL":
			p.parseModel()
		case "ENDMDL":
			p.model = 0
		case "ATOM":
			p.parseAtom(false)
		case "HETATM":
			p.parseAtom(true)
		case "CONECT":
			p.parseConect()
		}
	}
	return entry, nil
}

type parser struct {
	entry   *Entry
	lg      *zap.Logger
	line    []byte
	lineNum int

	// model is the number of the MODEL block being read, or 0 outside any
	// block. Files without MODEL records store everything in model 1.
	model int

	// bonds deduplicates CONECT pairs, which files commonly declare in both
	// directions.
	bonds map[Bond]bool
}

// field returns the columns [start, end) of the line, tolerating short
// lines: trailing fields of right-trimmed records read as empty.
func field(line []byte, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return string(line[start:end])
}

// parseSeqres reads the residue names of a SEQRES record into the chain's
// SeqRes list. Residues are in columns 20-22, 24-26, ..., 68-70.
//
// N.B. This assumes that the SEQRES records are in order in the PDB file.
func (p *parser) parseSeqres() {
	chain := p.entry.getOrMakeChain(byteAt(p.line, 11))
	for i := 19; i <= 67; i += 4 {
		name := strings.TrimSpace(field(p.line, i, i+3))
		if name == "" {
			break
		}
		chain.SeqRes = append(chain.SeqRes, name)
	}
}

func (p *parser) parseModel() {
	num, err := strconv.Atoi(strings.TrimSpace(field(p.line, 10, 14)))
	if err != nil {
		p.lg.Warn("pdb: skipping MODEL record with bad number",
			zap.Int("line", p.lineNum))
		return
	}
	p.model = num
}

// parseAtom reads one ATOM or HETATM record and appends the atom to the
// residue it belongs to, creating chain, model and residue on demand.
func (p *parser) parseAtom(het bool) {
	line := p.line

	serial, err := p.serial(field(line, 6, 11))
	if err != nil {
		p.lg.Warn("pdb: skipping atom with bad serial",
			zap.Int("line", p.lineNum), zap.Error(err))
		return
	}
	seqNum, err := p.serial(field(line, 22, 26))
	if err != nil {
		p.lg.Warn("pdb: skipping atom with bad residue number",
			zap.Int("line", p.lineNum), zap.Error(err))
		return
	}

	var coords Coords
	coords.X, err = strconv.ParseFloat(
		strings.TrimSpace(field(line, 30, 38)), 64)
	if err == nil {
		coords.Y, err = strconv.ParseFloat(
			strings.TrimSpace(field(line, 38, 46)), 64)
	}
	if err == nil {
		coords.Z, err = strconv.ParseFloat(
			strings.TrimSpace(field(line, 46, 54)), 64)
	}
	if err != nil {
		p.lg.Warn("pdb: skipping atom with bad coordinates",
			zap.Int("line", p.lineNum), zap.Error(err))
		return
	}

	atom := Atom{
		Serial:  serial,
		Name:    strings.TrimSpace(field(line, 12, 16)),
		AltLoc:  byteAt(line, 16),
		Het:     het,
		Coords:  coords,
		Element: strings.TrimSpace(field(line, 76, 78)),
	}
	// Occupancy, B-factor and charge are optional in practice.
	atom.Occupancy, _ = strconv.ParseFloat(
		strings.TrimSpace(field(line, 54, 60)), 64)
	atom.BFactor, _ = strconv.ParseFloat(
		strings.TrimSpace(field(line, 60, 66)), 64)
	atom.Charge = parseCharge(field(line, 78, 80))

	chain := p.entry.getOrMakeChain(byteAt(line, 21))
	modelNum := p.model
	if modelNum == 0 {
		modelNum = 1
	}
	model := chain.getOrMakeModel(modelNum)

	name := strings.TrimSpace(field(line, 17, 20))
	insCode := byteAt(line, 26)
	n := len(model.Residues)
	if n > 0 {
		last := model.Residues[n-1]
		if last.SeqNum == seqNum && last.InsCode == insCode &&
			last.Name == name {
			last.Atoms = append(last.Atoms, atom)
			return
		}
	}
	model.Residues = append(model.Residues, &Residue{
		Name:    name,
		SeqNum:  seqNum,
		InsCode: insCode,
		Atoms:   []Atom{atom},
	})
}

// parseConect reads the bonded serial numbers of a CONECT record. Each line
// names one atom in columns 7-11 and up to four partners after it.
func (p *parser) parseConect() {
	base, err := p.serial(field(p.line, 6, 11))
	if err != nil {
		p.lg.Warn("pdb: skipping CONECT record with bad serial",
			zap.Int("line", p.lineNum), zap.Error(err))
		return
	}
	if p.bonds == nil {
		p.bonds = make(map[Bond]bool)
	}
	for i := 11; i <= 26; i += 5 {
		f := strings.TrimSpace(field(p.line, i, i+5))
		if f == "" {
			continue
		}
		partner, err := p.serial(f)
		if err != nil {
			p.lg.Warn("pdb: skipping malformed CONECT partner",
				zap.Int("line", p.lineNum), zap.Error(err))
			continue
		}
		bond := Bond{Serial1: base, Serial2: partner}
		if bond.Serial1 > bond.Serial2 {
			bond.Serial1, bond.Serial2 = bond.Serial2, bond.Serial1
		}
		if !p.bonds[bond] {
			p.bonds[bond] = true
			p.entry.Bonds = append(p.entry.Bonds, bond)
		}
	}
}

// serial parses a fixed-width identifier field, falling back to hybrid-36
// for values beyond the decimal range of the field.
func (p *parser) serial(f string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(f)); err == nil {
		return n, nil
	}
	return hybrid36.Decode(f)
}

func byteAt(line []byte, i int) byte {
	if i >= len(line) || line[i] == ' ' {
		return 0
	}
	return line[i]
}

// parseCharge reads the two-column charge field, formatted like "2-" or
// "1+". A missing or malformed field reads as zero.
func parseCharge(f string) int {
	f = strings.TrimSpace(f)
	if len(f) != 2 {
		return 0
	}
	n := int(f[0] - '0')
	if n < 0 || n > 9 {
		return 0
	}
	switch f[1] {
	case '-':
		return -n
	case '+':
		return n
	}
	return 0
}
