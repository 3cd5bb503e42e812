package gbk

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const referenceRecord = "../../assets/pBR322.gb"

// a conformant record must survive a parse/write round trip byte for byte
func Test_Write_roundTrip(t *testing.T) {
	original, err := os.ReadFile(referenceRecord)
	if err != nil {
		t.Fatalf("failed to read %s: %v", referenceRecord, err)
	}

	rec, err := Parse(bytes.NewReader(original))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var out bytes.Buffer
	if err := Write(rec, &out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !bytes.Equal(original, out.Bytes()) {
		t.Errorf("Write() did not reproduce the input:\n%s", firstDiff(string(original), out.String()))
	}
}

// writing and re-parsing must produce an equal record
func Test_Write_reparse(t *testing.T) {
	rec, err := (&Parser{}).ParseFile(referenceRecord)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	var out bytes.Buffer
	if err := Write(rec, &out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	reparsed, err := Parse(&out)
	if err != nil {
		t.Fatalf("Parse() of written output error = %v", err)
	}

	if diff := cmp.Diff(rec, reparsed); diff != "" {
		t.Errorf("reparsed record mismatch (-want +got):\n%s", diff)
	}
}

func Test_Write_testRecordRoundTrip(t *testing.T) {
	rec, err := Parse(strings.NewReader(testRecord))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var out bytes.Buffer
	if err := Write(rec, &out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// the hand-written header above isn't at the canonical columns, but
	// the feature table and ORIGIN block must reproduce exactly
	written := out.String()
	for _, section := range []string{
		`     CDS             1..9`,
		`                     /codon_start=1`,
		`                     /note="second note"`,
		`                     /note="a note that is deliberately long enough to wrap`,
		`     misc_feature    complement(100..111)`,
		`        1 atgagcatac aacacttcag agtagcacta gctagctaga tcgatcgatc gatcgatcga`,
		`       61 aaccggttaa ccggttaacc ggttaaccgg ttaaccggtt aaccggttaa ccggttaacc`,
	} {
		if !strings.Contains(written, section+"\n") {
			t.Errorf("Write() output is missing %q", section)
		}
	}
}

// firstDiff returns the first line where two strings disagree
func firstDiff(want, got string) string {
	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(got, "\n")

	for i := 0; i < len(wantLines) && i < len(gotLines); i++ {
		if wantLines[i] != gotLines[i] {
			return cmp.Diff(wantLines[i], gotLines[i])
		}
	}
	return cmp.Diff(want, got)
}
