package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josiahhuergo/Harmonica/search"
	"github.com/josiahhuergo/Harmonica/theory"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search templates or enumerate pitch-class sets by predicate",
	Long: `Find searches the catalog's scale and chord templates for entries
matching the given predicates. With --modulus it instead enumerates
every pitch-class set over that modulus.`,
	RunE: runFind,
}

// addFindFlags registers the predicate flags for the find command.
func addFindFlags(cmd *cobra.Command) {
	cmd.Flags().Int("modulus", 0, "enumerate sets over this modulus instead of searching templates")
	cmd.Flags().Int("cardinality", 0, "require exactly this many pitch classes")
	cmd.Flags().IntSlice("contains", nil, "require these pitch classes")
	cmd.Flags().Int("interval", 0, "require some pair at this cyclic interval")
	cmd.Flags().String("like", "", "require equivalence under transposition to this chord template")
}

func init() {
	addFindFlags(findCmd)
	rootCmd.AddCommand(findCmd)
}

func findFilters(cmd *cobra.Command, c *theory.Catalog) ([]search.Filter, error) {
	var filters []search.Filter
	if cmd.Flags().Changed("cardinality") {
		n, _ := cmd.Flags().GetInt("cardinality")
		filters = append(filters, search.Cardinality(n))
	}
	if classes, _ := cmd.Flags().GetIntSlice("contains"); len(classes) > 0 {
		filters = append(filters, search.Contains(classes...))
	}
	if cmd.Flags().Changed("interval") {
		iv, _ := cmd.Flags().GetInt("interval")
		filters = append(filters, search.ContainsInterval(iv))
	}
	if name, _ := cmd.Flags().GetString("like"); name != "" {
		probe, ok := c.Chord(name)
		if !ok {
			return nil, fmt.Errorf("unknown chord %q for --like", name)
		}
		filters = append(filters, search.EquivalentTo(probe))
	}
	return filters, nil
}

func runFind(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	filters, err := findFilters(cmd, c)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("modulus") {
		modulus, _ := cmd.Flags().GetInt("modulus")
		sets, err := search.Sets(modulus, filters...)
		if err != nil {
			return err
		}
		for _, s := range sets {
			fmt.Printf("%v mod %d\n", s.Residues(), s.Modulus())
		}
		fmt.Printf("%d set(s)\n", len(sets))
		return nil
	}

	scales := search.Scales(c, filters...)
	chords := search.Chords(c, filters...)
	for _, m := range scales {
		fmt.Printf("scale %-18s %v mod %d\n", m.Name, m.Set.Residues(), m.Set.Modulus())
	}
	for _, m := range chords {
		fmt.Printf("chord %-18s %v mod %d\n", m.Name, m.Set.Residues(), m.Set.Modulus())
	}
	fmt.Printf("%d match(es)\n", len(scales)+len(chords))
	return nil
}
