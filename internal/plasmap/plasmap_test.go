package plasmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plasmap/plasmap/internal/gbk"
)

const referenceRecord = "../../assets/pBR322.gb"

// expected values for the packaged pBR322 record
const (
	blaProteinPrefix = "MSIQHFRVALIPFFAAFCLPVFAHPETLVKVKDAEDQLGARVGYI"
	blaProteinSuffix = "LIKHW"
	tetProteinPrefix = "MKSNNALIVILGTVTLDAVGIGLVMPVLPGLLRDIVHSDSIASHY"

	forwardPrimerSeq = "CCGGCACAGTCAGGGAGGTC"
	reversePrimerSeq = "CAAGCTGATCGGAGTCGAAT"
)

// readReference parses the packaged record once per test
func readReference(t *testing.T) *gbk.Record {
	t.Helper()

	rec, err := (&gbk.Parser{}).ParseFile(referenceRecord)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", referenceRecord, err)
	}
	return rec
}

func Test_extract(t *testing.T) {
	rec := readReference(t)

	type args struct {
		label      string
		start      int
		end        int
		complement bool
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"forward primer by coordinates",
			args{"", 30, 49, false},
			forwardPrimerSeq,
			false,
		},
		{
			"reverse primer on the reverse strand",
			args{"", 2450, 2469, true},
			reversePrimerSeq,
			false,
		},
		{
			"named feature",
			args{"pBR322-F", 0, 0, false},
			forwardPrimerSeq,
			false,
		},
		{
			"no label and no interval",
			args{"", 0, 0, false},
			"",
			true,
		},
		{
			"unknown label",
			args{"no such feature", 0, 0, false},
			"",
			true,
		},
		{
			"interval past the end",
			args{"", 4000, 5000, false},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := extract(rec, tt.args.label, tt.args.start, tt.args.end, tt.args.complement)
			if (err != nil) != tt.wantErr {
				t.Errorf("extract() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

// an interval with start > end wraps through the origin of the plasmid
func Test_extract_wraparound(t *testing.T) {
	rec := readReference(t)

	_, got, err := extract(rec, "", 4350, 60, false)
	if err != nil {
		t.Fatalf("extract() error = %v", err)
	}

	if len(got) != 72 {
		t.Errorf("extract() returned %d bases, want 72", len(got))
	}
	want := "TATTTGAAAACA" + rec.Seq[:60]
	if got != want {
		t.Errorf("extract() = %v, want %v", got, want)
	}
}

func Test_translateRegion(t *testing.T) {
	rec := readReference(t)

	// the forward CDS decodes to the beta-lactamase protein and matches
	// its /translation qualifier
	_, protein, declared, err := translateRegion(rec, "AmpR", 0, 0, false)
	if err != nil {
		t.Fatalf("translateRegion() error = %v", err)
	}
	if len(protein) != 286 {
		t.Errorf("translateRegion() protein length = %d, want 286", len(protein))
	}
	if !strings.HasPrefix(protein, blaProteinPrefix) {
		t.Errorf("translateRegion() = %s..., want prefix %s", protein[:50], blaProteinPrefix)
	}
	if !strings.HasSuffix(protein, blaProteinSuffix) {
		t.Errorf("translateRegion() suffix = %s, want %s", protein[len(protein)-5:], blaProteinSuffix)
	}
	if declared != protein {
		t.Error("translateRegion() declared /translation differs from the decoded protein")
	}

	// the reverse-strand CDS by explicit coordinates
	_, protein, _, err = translateRegion(rec, "", 3086, 4276, true)
	if err != nil {
		t.Fatalf("translateRegion() error = %v", err)
	}
	if !strings.HasPrefix(protein, tetProteinPrefix) {
		t.Errorf("translateRegion() = %s..., want prefix %s", protein[:50], tetProteinPrefix)
	}

	// an interval that isn't in frame errors out
	if _, _, _, err = translateRegion(rec, "", 209, 1068, false); err == nil {
		t.Error("translateRegion() expected an error for a partial codon")
	}
}

// a /codon_start pointing past the end of the coding sequence is an
// error, not a crash
func Test_translateRegion_codonStartBounds(t *testing.T) {
	rec := readReference(t)
	f, ok := cdsByLabel(rec, "AmpR")
	if !ok {
		t.Fatal("no AmpR feature in the reference record")
	}
	for i, qual := range f.Qualifiers {
		if qual.Key == "codon_start" {
			f.Qualifiers[i].Value = "9999"
		}
	}

	_, _, _, err := translateRegion(rec, "AmpR", 0, 0, false)
	if err == nil {
		t.Fatal("translateRegion() expected an error for an oversized /codon_start")
	}
	if !strings.Contains(err.Error(), "codon_start") {
		t.Errorf("translateRegion() error = %v, want it to name /codon_start", err)
	}
}

func Test_info(t *testing.T) {
	rec := readReference(t)

	var out bytes.Buffer
	info(&out, rec, referenceRecord)

	for _, want := range []string{
		"pBR322",
		"4361 bp",
		"circular",
		"ds-DNA",
		"47.2%",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("info() output is missing %q:\n%s", want, out.String())
		}
	}
}

func Test_featureTable(t *testing.T) {
	rec := readReference(t)

	var out bytes.Buffer
	featureTable(&out, rec, "")

	for _, want := range []string{
		"complement(3086..4276)",
		"beta-lactamase",
		"rep_origin",
		"RNAI",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("featureTable() output is missing %q", want)
		}
	}

	// filtering by kind drops everything else
	out.Reset()
	featureTable(&out, rec, "CDS")
	if strings.Contains(out.String(), "rep_origin") {
		t.Error("featureTable() kind filter leaked other kinds")
	}
	if !strings.Contains(out.String(), "tetracycline efflux protein") {
		t.Error("featureTable() kind filter dropped a CDS")
	}
}

func Test_featureStats(t *testing.T) {
	rec := readReference(t)

	var out bytes.Buffer
	if err := featureStats(&out, rec, ""); err != nil {
		t.Fatalf("featureStats() error = %v", err)
	}

	for _, want := range []string{
		"count",
		"12",
		"min",
		"6 bp",
		"mean",
		"780.3 bp",
		"median",
		"348.5 bp",
		"4361 bp",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("featureStats() output is missing %q:\n%s", want, out.String())
		}
	}

	if err := featureStats(&out, rec, "no_such_kind"); err == nil {
		t.Error("featureStats() expected an error with nothing to summarize")
	}
}

func Test_writeFasta(t *testing.T) {
	var out bytes.Buffer
	writeFasta(&out, "test seq", "ACGTACGTAC", 4)

	want := ">test seq\nACGT\nACGT\nAC\n"
	if out.String() != want {
		t.Errorf("writeFasta() = %q, want %q", out.String(), want)
	}
}
