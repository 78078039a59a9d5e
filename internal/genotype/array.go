package genotype

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"
)

// ArrayParser reads consumer genotyping array exports.
// Two layouts are supported:
//   - 23andMe: rsid <tab> chromosome <tab> position <tab> genotype
//   - AncestryDNA: rsid <tab> chromosome <tab> position <tab> allele1 <tab> allele2
//
// Comment lines (leading '#') and the AncestryDNA column header are skipped.
type ArrayParser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	format     Format
	lineNumber int
}

func newArrayParser(r *bufio.Reader, format Format) *ArrayParser {
	return &ArrayParser{reader: r, format: format}
}

// NewArrayParserFromReader creates an array parser from an io.Reader.
func NewArrayParserFromReader(r io.Reader, format Format) *ArrayParser {
	return newArrayParser(bufio.NewReader(r), format)
}

// Next reads the next marker call. Returns nil, nil at end of input.
func (p *ArrayParser) Next() (*Call, error) {
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
		// AncestryDNA repeats its header as a plain line.
		if fields[0] == "rsid" {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		c, perr := p.parseFields(fields)
		if perr != nil {
			return nil, perr
		}
		return c, nil
	}
}

func (p *ArrayParser) parseFields(fields []string) (*Call, error) {
	min := 4
	if p.format == FormatAncestry {
		min = 5
	}
	if len(fields) < min {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: "expected " + strconv.Itoa(min) + " tab-separated columns",
		}
	}

	pos, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		// Some exports use 0 or non-numeric positions for unplaced markers;
		// position is informational only, so keep the call.
		pos = 0
	}

	genotype := fields[3]
	if p.format == FormatAncestry {
		genotype = fields[3] + fields[4]
	}

	return &Call{
		RSID:     fields[0],
		Chrom:    fields[1],
		Pos:      pos,
		Genotype: genotype,
	}, nil
}

// Close closes the underlying file handles.
func (p *ArrayParser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
