package plasmap

import (
	"reflect"
	"testing"

	"github.com/plasmap/plasmap/internal/gbk"
)

func Test_annotate(t *testing.T) {
	//                  123456789012
	rec := &gbk.Record{
		Name:     "pAnno",
		Length:   12,
		Topology: gbk.Circular,
		Seq:      "AACGTTTTGCAT",
	}

	features := map[string]string{
		"f1":      "CGTT", // forward at 3..6, reverse complement AACG at 1..4
		"f2":      "ATAA", // wraps through the origin at 11..2
		"missing": "GGGG",
	}

	got := annotate(rec, features)

	want := []annotation{
		{name: "f1", loc: gbk.Location{Start: 1, End: 4, Complement: true}},
		{name: "f1", loc: gbk.Location{Start: 3, End: 6}},
		{name: "f2", loc: gbk.Location{Start: 11, End: 2}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("annotate() = %v, want %v", got, want)
	}
}

// a linear molecule isn't searched across the origin
func Test_annotate_linear(t *testing.T) {
	rec := &gbk.Record{
		Name:     "linear",
		Length:   12,
		Topology: gbk.Linear,
		Seq:      "AACGTTTTGCAT",
	}

	got := annotate(rec, map[string]string{"f2": "ATAA"})
	if len(got) != 0 {
		t.Errorf("annotate() = %v, want no matches on a linear molecule", got)
	}
}

// palindromic features are reported once, not once per strand
func Test_annotate_palindrome(t *testing.T) {
	rec := &gbk.Record{
		Name:     "pPal",
		Length:   10,
		Topology: gbk.Linear,
		Seq:      "AGAATTCAAA",
	}

	got := annotate(rec, map[string]string{"EcoRI site": "GAATTC"})

	want := []annotation{
		{name: "EcoRI site", loc: gbk.Location{Start: 2, End: 7}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("annotate() = %v, want %v", got, want)
	}
}

func Test_occurrences(t *testing.T) {
	type args struct {
		target    string
		query     string
		seqLength int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			"repeated hits",
			args{"ACGACGACG", "ACG", 9},
			[]int{0, 3, 6},
		},
		{
			"overlapping hits",
			args{"AAAA", "AAA", 4},
			[]int{0, 1},
		},
		{
			"doubled circular target reports each hit once",
			args{"ACGTACG", "ACG", 4},
			[]int{0},
		},
		{
			"no hit",
			args{"ACGT", "TTT", 4},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occurrences(tt.args.target, tt.args.query, tt.args.seqLength); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("occurrences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_wrapLocation(t *testing.T) {
	type args struct {
		start      int
		length     int
		seqLength  int
		complement bool
	}
	tests := []struct {
		name string
		args args
		want gbk.Location
	}{
		{
			"within the molecule",
			args{2, 4, 12, false},
			gbk.Location{Start: 3, End: 6},
		},
		{
			"crosses the origin",
			args{10, 4, 12, true},
			gbk.Location{Start: 11, End: 2, Complement: true},
		},
		{
			"ends exactly at the last base",
			args{8, 4, 12, false},
			gbk.Location{Start: 9, End: 12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapLocation(tt.args.start, tt.args.length, tt.args.seqLength, tt.args.complement); got != tt.want {
				t.Errorf("wrapLocation() = %v, want %v", got, tt.want)
			}
		})
	}
}

// the packaged feature library entries are all found in the packaged record
func Test_annotate_reference(t *testing.T) {
	rec := readReference(t)

	got := annotate(rec, map[string]string{
		"AmpR promoter":   rec.Seq[103:208],
		"pBR322-R primer": "CAAGCTGATCGGAGTCGAAT",
	})

	want := []annotation{
		{name: "AmpR promoter", loc: gbk.Location{Start: 104, End: 208}},
		{name: "pBR322-R primer", loc: gbk.Location{Start: 2450, End: 2469, Complement: true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("annotate() = %v, want %v", got, want)
	}
}
