package genotype

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"
)

// VCFParser extracts marker genotypes from a single-sample VCF file.
// Only the first sample column is read; the GT field is resolved against
// REF/ALT to produce a two-letter genotype string.
type VCFParser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	sampleName string
}

// NewVCFParserFromReader creates a VCF parser from an io.Reader.
func NewVCFParserFromReader(r io.Reader) (*VCFParser, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := &VCFParser{reader: br}
	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	return p, nil
}

// SampleName returns the name of the sample column being read.
func (p *VCFParser) SampleName() string {
	return p.sampleName
}

// parseHeader consumes header lines through #CHROM.
func (p *VCFParser) parseHeader() error {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, "##") {
			continue
		}
		if strings.HasPrefix(line, "#CHROM") {
			fields := strings.Split(line, "\t")
			if len(fields) > 9 {
				p.sampleName = fields[9]
			}
			return nil
		}
		return &ParseError{Line: p.lineNumber, Message: "expected #CHROM header line"}
	}
	return &ParseError{Line: p.lineNumber, Message: "no #CHROM header line found"}
}

// Next reads the next marker call. Returns nil, nil at end of input.
// Records without an rs identifier or without a resolvable GT field are
// skipped rather than reported as errors.
func (p *VCFParser) Next() (*Call, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 10 {
			return nil, &ParseError{Line: p.lineNumber, Message: "expected at least 10 columns"}
		}

		id := fields[2]
		if id == "." || id == "" {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		genotype, ok := resolveGT(fields[3], fields[4], fields[8], fields[9])
		if !ok {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		pos, _ := strconv.ParseInt(fields[1], 10, 64)

		c := &Call{
			RSID:     id,
			Chrom:    fields[0],
			Pos:      pos,
			Genotype: genotype,
		}
		return c, nil
	}
}

// resolveGT turns a VCF GT field into a two-letter genotype using REF/ALT.
// Only biallelic SNV records with a diploid GT are resolvable.
func resolveGT(ref, alt, format, sample string) (string, bool) {
	gtIndex := -1
	for i, key := range strings.Split(format, ":") {
		if key == "GT" {
			gtIndex = i
			break
		}
	}
	if gtIndex < 0 {
		return "", false
	}

	values := strings.Split(sample, ":")
	if gtIndex >= len(values) {
		return "", false
	}

	gt := strings.ReplaceAll(values[gtIndex], "|", "/")
	indices := strings.Split(gt, "/")
	if len(indices) != 2 {
		return "", false
	}

	alleles := append([]string{ref}, strings.Split(alt, ",")...)

	var out [2]string
	for i, idx := range indices {
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n >= len(alleles) {
			return "", false
		}
		a := alleles[n]
		if len(a) != 1 {
			return "", false
		}
		out[i] = a
	}

	return out[0] + out[1], true
}

// Close closes the underlying file handles.
func (p *VCFParser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
