package gbk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// iupacAmbiguity are the ambiguity codes a lenient parse accepts in the
// ORIGIN block on top of ACGT
const iupacAmbiguity = "NRYWSKMBDHV"

// locationRegex matches "start..end" or a single base, optionally inside
// complement(...)
var locationRegex = regexp.MustCompile(`^(complement\()?(\d+)(?:\.\.(\d+))?(\))?$`)

// Parser reads GenBank records. The zero value is a strict parser
type Parser struct {
	// AllowAmbiguity permits IUPAC ambiguity codes (N, R, Y, ...) in the
	// sequence instead of requiring strict ACGT
	AllowAmbiguity bool
}

// Parse reads a single GenBank record from the reader. Malformed
// locations, qualifiers outside a feature, sequence characters outside
// the allowed alphabet, and a LOCUS length that disagrees with the
// ORIGIN base count are all errors, never silently corrected
func (p *Parser) Parse(r io.Reader) (*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rec := &Record{}
	var sequence strings.Builder

	const (
		inHeader = iota
		inFeatures
		inOrigin
		done
	)
	state := inHeader

	// last header keyword seen, for continuation lines
	var keyword string
	sawLocus := false

	// quoted qualifier value still open across lines
	inQuote := false

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		switch state {
		case inHeader:
			if strings.HasPrefix(line, "FEATURES") {
				state = inFeatures
				continue
			}
			if strings.HasPrefix(line, "ORIGIN") {
				state = inOrigin
				continue
			}
			if err := p.parseHeaderLine(rec, line, lineNo, &keyword, &sawLocus); err != nil {
				return nil, err
			}

		case inFeatures:
			if strings.HasPrefix(line, "ORIGIN") {
				state = inOrigin
				inQuote = false
				continue
			}
			if err := p.parseFeatureLine(rec, line, lineNo, &inQuote); err != nil {
				return nil, err
			}

		case inOrigin:
			if strings.TrimSpace(line) == "//" {
				state = done
				continue
			}
			if err := p.parseOriginLine(&sequence, line, lineNo); err != nil {
				return nil, err
			}

		case done:
			// trailing content after the record terminator is ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !sawLocus {
		return nil, fmt.Errorf("no LOCUS line found, not a GenBank record")
	}
	if state == inHeader || state == inFeatures {
		return nil, fmt.Errorf("no ORIGIN block found")
	}

	rec.Seq = sequence.String()
	if rec.Length != len(rec.Seq) {
		return nil, fmt.Errorf(
			"LOCUS declares %d bp but the ORIGIN block has %d bases",
			rec.Length, len(rec.Seq),
		)
	}

	return rec, nil
}

// parseHeaderLine handles one line of the block before FEATURES. Keywords
// sit flush left (LOCUS, DEFINITION, ...), sub-keywords are indented two
// spaces (ORGANISM, AUTHORS, ...), and deeper indentation continues the
// value of the last keyword
func (p *Parser) parseHeaderLine(rec *Record, line string, lineNo int, keyword *string, sawLocus *bool) error {
	indent := len(line) - len(strings.TrimLeft(line, " "))

	// continuation of the previous keyword's value
	if indent >= 10 {
		return appendHeaderValue(rec, *keyword, strings.TrimSpace(line))
	}

	key := line
	value := ""
	if len(line) > 12 {
		key, value = line[:12], strings.TrimSpace(line[12:])
	}
	key = strings.TrimSpace(key)

	switch key {
	case "LOCUS":
		*sawLocus = true
		if err := parseLocus(rec, value); err != nil {
			return fmt.Errorf("line %d: %v", lineNo, err)
		}
	case "DEFINITION":
		rec.Definition = value
	case "ACCESSION":
		rec.Accession = value
	case "VERSION":
		rec.Version = value
	case "KEYWORDS":
		rec.Keywords = value
	case "SOURCE":
		rec.Source = value
	case "ORGANISM":
		rec.Organism = value
	case "REFERENCE":
		ref := Reference{}
		fields := strings.Fields(value)
		if len(fields) > 0 {
			ref.Number, _ = strconv.Atoi(fields[0])
			ref.Info = strings.TrimSpace(strings.TrimPrefix(value, fields[0]))
		}
		rec.References = append(rec.References, ref)
	case "AUTHORS", "TITLE", "JOURNAL":
		if len(rec.References) == 0 {
			return fmt.Errorf("line %d: %s outside of a REFERENCE", lineNo, key)
		}
		ref := &rec.References[len(rec.References)-1]
		switch key {
		case "AUTHORS":
			ref.Authors = value
		case "TITLE":
			ref.Title = value
		case "JOURNAL":
			ref.Journal = value
		}
	case "COMMENT":
		rec.Comment = value
	default:
		// unrecognized keywords (BASE COUNT, DBLINK, ...) are skipped
	}

	*keyword = key
	return nil
}

// parseLocus pulls the name, length, molecule type, topology, division,
// and date out of the LOCUS line's value
func parseLocus(rec *Record, value string) error {
	fields := strings.Fields(value)
	if len(fields) < 3 || fields[2] != "bp" {
		return fmt.Errorf("malformed LOCUS line %q", value)
	}

	rec.Name = fields[0]

	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("bad LOCUS length %q: %v", fields[1], err)
	}
	rec.Length = length

	for _, f := range fields[3:] {
		switch {
		case f == "circular":
			rec.Topology = Circular
		case f == "linear":
			rec.Topology = Linear
		case strings.Contains(f, "DNA") || strings.Contains(f, "RNA"):
			rec.MoleculeType = f
		case len(f) == 3 && f == strings.ToUpper(f):
			rec.Division = f
		case strings.Count(f, "-") == 2:
			rec.Date = f
		}
	}

	return nil
}

// appendHeaderValue joins a continuation line onto the keyword it continues
func appendHeaderValue(rec *Record, keyword, text string) error {
	join := func(existing string) string {
		if existing == "" {
			return text
		}
		return existing + " " + text
	}

	switch keyword {
	case "DEFINITION":
		rec.Definition = join(rec.Definition)
	case "ACCESSION":
		rec.Accession = join(rec.Accession)
	case "KEYWORDS":
		rec.Keywords = join(rec.Keywords)
	case "SOURCE":
		rec.Source = join(rec.Source)
	case "ORGANISM":
		rec.Organism = join(rec.Organism)
	case "COMMENT":
		rec.Comment = join(rec.Comment)
	case "AUTHORS", "TITLE", "JOURNAL":
		if len(rec.References) == 0 {
			return nil
		}
		ref := &rec.References[len(rec.References)-1]
		switch keyword {
		case "AUTHORS":
			ref.Authors = join(ref.Authors)
		case "TITLE":
			ref.Title = join(ref.Title)
		case "JOURNAL":
			ref.Journal = join(ref.Journal)
		}
	}

	return nil
}

// parseFeatureLine handles one line of the FEATURES table: either a new
// feature (kind at column 6, location at column 22), a /qualifier line,
// or the continuation of a quoted qualifier value
func (p *Parser) parseFeatureLine(rec *Record, line string, lineNo int, inQuote *bool) error {
	// new feature rows have their kind at the fixed feature column
	if len(line) > 5 && strings.HasPrefix(line, "     ") && line[5] != ' ' {
		kind := ""
		locString := ""
		if len(line) > 21 {
			kind = strings.TrimSpace(line[5:21])
			locString = strings.TrimSpace(line[21:])
		} else {
			kind = strings.TrimSpace(line[5:])
		}

		loc, err := ParseLocation(locString)
		if err != nil {
			return fmt.Errorf("line %d: %v", lineNo, err)
		}

		rec.Features = append(rec.Features, Feature{Kind: kind, Location: loc})
		*inQuote = false
		return nil
	}

	text := strings.TrimSpace(line)

	// a new qualifier, unless we're still inside a quoted value
	if strings.HasPrefix(text, "/") && !*inQuote {
		if len(rec.Features) == 0 {
			return fmt.Errorf("line %d: qualifier line %q outside of a feature", lineNo, text)
		}
		f := &rec.Features[len(rec.Features)-1]

		eq := strings.Index(text, "=")
		if eq < 0 {
			// flag qualifier without a value, like /pseudo
			f.Qualifiers = append(f.Qualifiers, Qualifier{Key: text[1:]})
			return nil
		}

		qual := Qualifier{Key: text[1:eq]}
		value := text[eq+1:]
		if strings.HasPrefix(value, `"`) {
			qual.Quoted = true
			value = value[1:]
			if strings.HasSuffix(value, `"`) && len(value) >= 1 {
				value = strings.TrimSuffix(value, `"`)
			} else {
				*inQuote = true
			}
		}
		qual.Value = value

		f.Qualifiers = append(f.Qualifiers, qual)
		return nil
	}

	// continuation of the last qualifier's quoted value
	if len(rec.Features) == 0 {
		return fmt.Errorf("line %d: unexpected line %q in the feature table", lineNo, text)
	}
	f := &rec.Features[len(rec.Features)-1]
	if len(f.Qualifiers) == 0 || !*inQuote {
		return fmt.Errorf("line %d: continuation line %q without an open qualifier value", lineNo, text)
	}

	if strings.HasSuffix(text, `"`) {
		text = strings.TrimSuffix(text, `"`)
		*inQuote = false
	}

	qual := &f.Qualifiers[len(f.Qualifiers)-1]
	if qual.Key == "translation" {
		// protein sequences are wrapped mid-residue, no separator
		qual.Value += text
	} else if qual.Value == "" {
		qual.Value = text
	} else {
		qual.Value += " " + text
	}

	return nil
}

// parseOriginLine appends one ORIGIN block line (offset then up to six
// ten-base groups) to the growing sequence
func (p *Parser) parseOriginLine(sequence *strings.Builder, line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("line %d: malformed ORIGIN line %q", lineNo, line)
	}

	offset, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("line %d: bad ORIGIN offset %q: %v", lineNo, fields[0], err)
	}
	if offset != sequence.Len()+1 {
		return fmt.Errorf("line %d: ORIGIN offset %d, expected %d", lineNo, offset, sequence.Len()+1)
	}

	for _, group := range fields[1:] {
		group = strings.ToUpper(group)
		for _, b := range group {
			if strings.ContainsRune("ACGT", b) {
				continue
			}
			if p.AllowAmbiguity && strings.ContainsRune(iupacAmbiguity, b) {
				continue
			}
			return fmt.Errorf("line %d: base %q outside of the allowed alphabet", lineNo, b)
		}
		sequence.WriteString(group)
	}

	return nil
}

// ParseLocation reads a feature location expression: "start..end", a
// single base "n", or either wrapped in complement(...). Multi-interval
// join(...) expressions aren't part of the supported grammar
func ParseLocation(s string) (Location, error) {
	if s == "" {
		return Location{}, fmt.Errorf("feature line is missing a location")
	}
	if strings.HasPrefix(s, "join(") || strings.HasPrefix(s, "order(") {
		return Location{}, fmt.Errorf("unsupported multi-interval location %q", s)
	}

	matches := locationRegex.FindStringSubmatch(s)
	if matches == nil || (matches[1] == "") != (matches[4] == "") {
		return Location{}, fmt.Errorf("malformed location %q", s)
	}

	start, err := strconv.Atoi(matches[2])
	if err != nil {
		return Location{}, fmt.Errorf("bad location start in %q: %v", s, err)
	}

	// single-base locations, like "643", cover one base
	end := start
	if matches[3] != "" {
		if end, err = strconv.Atoi(matches[3]); err != nil {
			return Location{}, fmt.Errorf("bad location end in %q: %v", s, err)
		}
	}
	if start < 1 || end < 1 {
		return Location{}, fmt.Errorf("location %q is not 1-based", s)
	}

	return Location{Start: start, End: end, Complement: matches[1] != ""}, nil
}

// Parse reads a single GenBank record with a strict ACGT alphabet
func Parse(r io.Reader) (*Record, error) {
	return (&Parser{}).Parse(r)
}

// ParseFile reads the GenBank record at the path
func (p *Parser) ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return rec, nil
}
