package plasmap

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/plasmap/plasmap/config"
	"github.com/spf13/cobra"
)

// FeatureDB is the local library of named feature sequences that
// annotate matches against records
type FeatureDB struct {
	// features is a map between a feature's name and its sequence
	features map[string]string
}

// NewFeatureDB returns a new copy of the features db
func NewFeatureDB() *FeatureDB {
	features := make(map[string]string)

	featureFile, err := os.Open(config.FeatureDB)
	if err != nil {
		stderr.Fatal(err)
	}

	scanner := bufio.NewScanner(featureFile)
	for scanner.Scan() {
		columns := strings.SplitN(scanner.Text(), "\t", 2)
		if len(columns) < 2 {
			continue
		}
		features[columns[0]] = strings.ToUpper(columns[1]) // feature name = feature seq
	}

	if err := featureFile.Close(); err != nil {
		stderr.Fatal(err)
	}

	return &FeatureDB{features: features}
}

// ReadCmd prints features whose names contain the name requested, or the
// whole library without one
func (f *FeatureDB) ReadCmd(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	query := strings.ToLower(strings.Join(args, " "))

	names := []string{}
	for name := range f.features {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	// print the names and the first few bp of each
	for _, name := range names {
		bases := f.features[name]
		if len(bases) > 20 {
			bases = bases[:20] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\n", name, bases)
	}

	w.Flush()
}

// CreateCmd adds a feature to the features database
func (f *FeatureDB) CreateCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		cmd.Help()
		stderr.Fatal("\nexpecting a feature name and sequence")
	}

	name := strings.Join(args[:len(args)-1], " ")
	bases := strings.ToUpper(args[len(args)-1])
	if err := validBases(bases); err != nil {
		stderr.Fatalf("failed to create %s: %v", name, err)
	}

	f.features[name] = bases
	f.save()
}

// UpdateCmd replaces a feature's sequence in the features database
func (f *FeatureDB) UpdateCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		cmd.Help()
		stderr.Fatal("\nexpecting a feature name and sequence")
	}

	name := strings.Join(args[:len(args)-1], " ")
	if _, exists := f.features[name]; !exists {
		stderr.Fatalf("no feature named %q in the features database", name)
	}

	bases := strings.ToUpper(args[len(args)-1])
	if err := validBases(bases); err != nil {
		stderr.Fatalf("failed to update %s: %v", name, err)
	}

	f.features[name] = bases
	f.save()
}

// validBases errors on the first base outside of ACGT. annotate matches
// exact sequences, so anything else in the library would never hit
func validBases(bases string) error {
	for _, b := range bases {
		if !strings.ContainsRune("ACGT", b) {
			return fmt.Errorf("base %q is outside of ACGT", b)
		}
	}
	return nil
}

// DeleteCmd removes a feature from the features database
func (f *FeatureDB) DeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatal("\nexpecting a feature name")
	}

	name := strings.Join(args, " ")
	if _, exists := f.features[name]; !exists {
		stderr.Fatalf("no feature named %q in the features database", name)
	}

	delete(f.features, name)
	f.save()
}

// save writes the library back to the tab-separated file, sorted by name
func (f *FeatureDB) save() {
	names := make([]string, 0, len(f.features))
	for name := range f.features {
		names = append(names, name)
	}
	sort.Strings(names)

	var output strings.Builder
	for _, name := range names {
		fmt.Fprintf(&output, "%s\t%s\n", name, f.features[name])
	}

	if err := os.WriteFile(config.FeatureDB, []byte(output.String()), 0644); err != nil {
		stderr.Fatal(err)
	}
}
