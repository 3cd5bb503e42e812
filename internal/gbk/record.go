// Package gbk reads, checks, and writes GenBank-format plasmid records:
// the LOCUS/DEFINITION header block, the FEATURES table, and the ORIGIN
// sequence block terminated by "//"
package gbk

import (
	"encoding/json"
	"fmt"

	"github.com/plasmap/plasmap/internal/seq"
)

// Topology is whether the molecule is circular or linear
type Topology int

const (
	// Linear molecules have no wraparound coordinates
	Linear Topology = iota

	// Circular molecules (plasmids) wrap from the last base back to 1
	Circular
)

func (t Topology) String() string {
	if t == Circular {
		return "circular"
	}
	return "linear"
}

// MarshalJSON writes the topology as its LOCUS-line word
func (t Topology) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Qualifier is a single key/value annotation on a feature, like
// /gene="bla". Flag qualifiers without a value have an empty Value and
// Quoted false
type Qualifier struct {
	Key   string `json:"key"`
	Value string `json:"value"`

	// Quoted is whether the value was double-quoted in the source file
	Quoted bool `json:"-"`
}

// Qualifiers is the ordered multi-map of a feature's annotations. The
// same key can repeat (features carry multiple /note and /label entries)
// and file order is kept
type Qualifiers []Qualifier

// Get returns the first value stored against the key
func (q Qualifiers) Get(key string) (string, bool) {
	for _, qual := range q {
		if qual.Key == key {
			return qual.Value, true
		}
	}
	return "", false
}

// All returns every value stored against the key, in file order
func (q Qualifiers) All(key string) (values []string) {
	for _, qual := range q {
		if qual.Key == key {
			values = append(values, qual.Value)
		}
	}
	return
}

// Location is a contiguous interval on the molecule. Start and End are
// 1-based and inclusive. Start > End means the interval wraps through
// the origin, which is only legal on a circular molecule. Complement
// means the feature is read on the reverse strand
type Location struct {
	Start      int  `json:"start"`
	End        int  `json:"end"`
	Complement bool `json:"complement"`
}

func (l Location) String() string {
	interval := fmt.Sprintf("%d..%d", l.Start, l.End)
	if l.Complement {
		return fmt.Sprintf("complement(%s)", interval)
	}
	return interval
}

// Len is the number of bases the location covers on a molecule of
// seqLength bases, accounting for wraparound
func (l Location) Len(seqLength int) int {
	if l.Start <= l.End {
		return l.End - l.Start + 1
	}
	return (seqLength - l.Start + 1) + l.End
}

// Feature is an annotated region of the record: a kind from the GenBank
// feature vocabulary (gene, CDS, promoter, rep_origin, ...), a location,
// and its qualifiers
type Feature struct {
	Kind       string     `json:"kind"`
	Location   Location   `json:"location"`
	Qualifiers Qualifiers `json:"qualifiers"`
}

// Label returns the feature's display name: the first /label, falling
// back to /gene then /product, then the location itself
func (f *Feature) Label() string {
	for _, key := range []string{"label", "gene", "product"} {
		if v, ok := f.Qualifiers.Get(key); ok {
			return v
		}
	}
	return f.Location.String()
}

// Reference is a single REFERENCE entry from the header block
type Reference struct {
	Number  int    `json:"number"`
	Info    string `json:"info"`
	Authors string `json:"authors"`
	Title   string `json:"title"`
	Journal string `json:"journal"`
}

// Record is one GenBank record: a single molecule with its metadata,
// feature table, and sequence. Records are authored once by an external
// tool and treated as immutable reference data after parsing
type Record struct {
	// Name is the molecule name from the LOCUS line
	Name string `json:"name"`

	// Length is the declared length in bp from the LOCUS line
	Length int `json:"length"`

	// MoleculeType is e.g. "ds-DNA"
	MoleculeType string `json:"moleculeType"`

	Topology Topology `json:"topology"`

	// Division is the GenBank division code, e.g. "SYN"
	Division string `json:"division"`

	// Date the record was authored, e.g. "01-AUG-2016"
	Date string `json:"date"`

	Definition string      `json:"definition"`
	Accession  string      `json:"accession"`
	Version    string      `json:"version"`
	Keywords   string      `json:"keywords"`
	Source     string      `json:"source"`
	Organism   string      `json:"organism"`
	References []Reference `json:"references,omitempty"`
	Comment    string      `json:"comment,omitempty"`

	Features []Feature `json:"features"`

	// Seq is the uppercase nucleotide sequence from the ORIGIN block
	Seq string `json:"seq"`
}

// FeatureByLabel returns the first feature whose /label, /gene, or
// /product matches the name exactly
func (r *Record) FeatureByLabel(name string) (*Feature, bool) {
	for i := range r.Features {
		f := &r.Features[i]
		for _, key := range []string{"label", "gene", "product"} {
			if v, ok := f.Qualifiers.Get(key); ok && v == name {
				return f, true
			}
		}
	}
	return nil, false
}

// LocationSeq resolves a location against the record's sequence,
// reverse-complementing when the location is on the reverse strand
func (r *Record) LocationSeq(l Location) (string, error) {
	s, err := seq.Range(r.Seq, l.Start, l.End, r.Topology == Circular)
	if err != nil {
		return "", err
	}

	if l.Complement {
		s = seq.ReverseComplement(s)
	}
	return s, nil
}
