package gbk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// maxLineWidth is the canonical width records are wrapped at
	maxLineWidth = 79

	// headerIndent is the column header keyword values start at
	headerIndent = 12

	// featureColumn is the column feature kinds start at
	featureColumn = 5

	// qualifierColumn is the column locations and qualifiers start at
	qualifierColumn = 21

	// originBasesPerGroup and originGroupsPerLine shape the ORIGIN block
	originBasesPerGroup = 10
	originGroupsPerLine = 6
)

// Write serializes the record back to the GenBank flat-file format with
// the canonical column layout, so that a conformant file survives a
// parse/write round trip byte for byte
func Write(rec *Record, w io.Writer) error {
	bw := bufio.NewWriter(w)

	writeLocus(rec, bw)
	writeHeaderValue(bw, "DEFINITION", rec.Definition)
	writeHeaderValue(bw, "ACCESSION", rec.Accession)
	writeHeaderValue(bw, "VERSION", rec.Version)
	writeHeaderValue(bw, "KEYWORDS", rec.Keywords)
	writeHeaderValue(bw, "SOURCE", rec.Source)
	writeHeaderValue(bw, "  ORGANISM", rec.Organism)
	for _, ref := range rec.References {
		writeHeaderValue(bw, "REFERENCE", fmt.Sprintf("%d  %s", ref.Number, ref.Info))
		writeHeaderValue(bw, "  AUTHORS", ref.Authors)
		writeHeaderValue(bw, "  TITLE", ref.Title)
		writeHeaderValue(bw, "  JOURNAL", ref.Journal)
	}
	if rec.Comment != "" {
		writeHeaderValue(bw, "COMMENT", rec.Comment)
	}

	fmt.Fprintln(bw, "FEATURES             Location/Qualifiers")
	for i := range rec.Features {
		writeFeature(&rec.Features[i], bw)
	}

	writeOrigin(rec.Seq, bw)
	fmt.Fprintln(bw, "//")

	return bw.Flush()
}

// WriteFile serializes the record to a new file at the path
func WriteFile(rec *Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(rec, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeLocus prints the LOCUS line: name, length right-aligned beside it,
// then molecule type, topology, division, and date at fixed columns
func writeLocus(rec *Record, w io.Writer) {
	fmt.Fprintf(
		w,
		"LOCUS       %-16s%12d bp %-11s%-9s%s %s\n",
		rec.Name,
		rec.Length,
		rec.MoleculeType,
		rec.Topology,
		rec.Division,
		rec.Date,
	)
}

// writeHeaderValue prints a header keyword with its value wrapped on
// spaces at the canonical width, continuation lines indented to the
// value column
func writeHeaderValue(w io.Writer, keyword, value string) {
	prefix := keyword + strings.Repeat(" ", headerIndent-len(keyword))
	indent := strings.Repeat(" ", headerIndent)

	for i, line := range wrapOnSpaces(value, maxLineWidth-headerIndent) {
		if i == 0 {
			fmt.Fprintln(w, prefix+line)
		} else {
			fmt.Fprintln(w, indent+line)
		}
	}
}

// writeFeature prints the feature's kind/location row and each of its
// qualifiers in file order
func writeFeature(f *Feature, w io.Writer) {
	fmt.Fprintf(
		w,
		"%s%-*s%s\n",
		strings.Repeat(" ", featureColumn),
		qualifierColumn-featureColumn,
		f.Kind,
		f.Location,
	)

	for _, qual := range f.Qualifiers {
		writeQualifier(qual, w)
	}
}

// writeQualifier prints one /key=value pair, wrapping on spaces where the
// value has them and splitting mid-token (the /translation case) where it
// doesn't
func writeQualifier(qual Qualifier, w io.Writer) {
	indent := strings.Repeat(" ", qualifierColumn)
	room := maxLineWidth - qualifierColumn

	if qual.Value == "" && !qual.Quoted {
		fmt.Fprintln(w, indent+"/"+qual.Key)
		return
	}

	raw := "/" + qual.Key + "=" + qual.Value
	if qual.Quoted {
		raw = fmt.Sprintf("/%s=%q", qual.Key, qual.Value)
	}

	if len(raw) <= room {
		fmt.Fprintln(w, indent+raw)
		return
	}

	if !strings.Contains(qual.Value, " ") {
		for len(raw) > room {
			fmt.Fprintln(w, indent+raw[:room])
			raw = raw[room:]
		}
		fmt.Fprintln(w, indent+raw)
		return
	}

	for _, line := range wrapOnSpaces(raw, room) {
		fmt.Fprintln(w, indent+line)
	}
}

// writeOrigin prints the sequence in lowercase ten-base groups, six per
// line, each line prefixed with the 1-based offset of its first base
func writeOrigin(sequence string, w io.Writer) {
	fmt.Fprintln(w, "ORIGIN")

	sequence = strings.ToLower(sequence)
	perLine := originBasesPerGroup * originGroupsPerLine

	for offset := 0; offset < len(sequence); offset += perLine {
		end := offset + perLine
		if end > len(sequence) {
			end = len(sequence)
		}
		chunk := sequence[offset:end]

		groups := make([]string, 0, originGroupsPerLine)
		for i := 0; i < len(chunk); i += originBasesPerGroup {
			groupEnd := i + originBasesPerGroup
			if groupEnd > len(chunk) {
				groupEnd = len(chunk)
			}
			groups = append(groups, chunk[i:groupEnd])
		}

		fmt.Fprintf(w, "%9d %s\n", offset+1, strings.Join(groups, " "))
	}
}

// wrapOnSpaces greedily wraps text into lines of at most width, breaking
// only on spaces. A single token longer than the width gets its own line
func wrapOnSpaces(text string, width int) []string {
	words := strings.Split(text, " ")

	lines := []string{}
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}

	return append(lines, current)
}
