package genotype

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser reads raw marker calls from a genotype file.
// Next returns nil, nil when there are no more calls.
type Parser interface {
	Next() (*Call, error)
	Close() error
}

// ParseError represents a parsing error with line information.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Format identifies a supported raw genotype file format.
type Format string

const (
	FormatTwentyThree Format = "23andme"
	FormatAncestry    Format = "ancestry"
	FormatVCF         Format = "vcf"
)

// Open creates a parser for the given path, detecting the format from the
// file content when format is empty. Supports gzipped files and "-" for stdin.
func Open(path string, format Format) (Parser, error) {
	if path == "-" {
		return openReader(os.Stdin, format)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open genotype file: %w", err)
	}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	if _, err := file.Read(buf); err != nil {
		file.Close()
		return nil, fmt.Errorf("read genotype file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek genotype file: %w", err)
	}

	var gz *gzip.Reader
	var r io.Reader = file
	if buf[0] == 0x1f && buf[1] == 0x8b {
		gz, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r = gz
	}

	p, err := openReader(r, format)
	if err != nil {
		if gz != nil {
			gz.Close()
		}
		file.Close()
		return nil, err
	}

	switch t := p.(type) {
	case *ArrayParser:
		t.file, t.gzipReader = file, gz
	case *VCFParser:
		t.file, t.gzipReader = file, gz
	}
	return p, nil
}

// openReader builds a parser over r, sniffing the format if needed.
func openReader(r io.Reader, format Format) (Parser, error) {
	br := bufio.NewReader(r)

	if format == "" {
		head, err := br.Peek(4096)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("detect format: %w", err)
		}
		format = DetectFormat(string(head))
	}

	switch format {
	case FormatTwentyThree, FormatAncestry:
		return newArrayParser(br, format), nil
	case FormatVCF:
		return NewVCFParserFromReader(br)
	default:
		return nil, fmt.Errorf("unknown genotype format %q", format)
	}
}

// DetectFormat detects the raw file format from leading content.
func DetectFormat(head string) Format {
	if strings.HasPrefix(head, "##fileformat=VCF") || strings.HasPrefix(head, "#CHROM") {
		return FormatVCF
	}
	// AncestryDNA exports carry a five-column header with split alleles.
	if strings.Contains(head, "allele1") && strings.Contains(head, "allele2") {
		return FormatAncestry
	}
	// 23andMe exports start with comment lines mentioning the company, but a
	// bare four-column rsid table is the same shape.
	return FormatTwentyThree
}

// CollectSample drains a parser into a Sample, canonicalizing each genotype.
// Calls whose genotype cannot be canonicalized (no-calls, indel codes) are
// skipped: downstream treats the marker as absent rather than erroring.
// When keep is non-nil, only rsids present in keep are retained.
func CollectSample(p Parser, keep map[string]bool) (Sample, error) {
	s := make(Sample)
	for {
		c, err := p.Next()
		if err != nil {
			return nil, fmt.Errorf("read genotype call: %w", err)
		}
		if c == nil {
			return s, nil
		}
		if keep != nil && !keep[c.RSID] {
			continue
		}
		g, ok := Canonicalize(c.Genotype)
		if !ok {
			continue
		}
		s[c.RSID] = g
	}
}
