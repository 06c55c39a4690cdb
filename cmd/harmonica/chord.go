package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josiahhuergo/Harmonica/theory"
)

var chordCmd = &cobra.Command{
	Use:   "chord",
	Short: "Inspect chord templates",
}

var chordInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a chord template's structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runChordInfo,
}

func init() {
	chordInfoCmd.Flags().Int("root", 0, "root pitch class")
	chordInfoCmd.Flags().Bool("free-root", false, "allow a root outside the chord's classes")

	chordCmd.AddCommand(chordInfoCmd)
	rootCmd.AddCommand(chordCmd)
}

func runChordInfo(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	set, ok := c.Chord(args[0])
	if !ok {
		return fmt.Errorf("unknown chord %q (see: harmonica find)", args[0])
	}

	rootClass, _ := cmd.Flags().GetInt("root")
	policy := theory.StrictRoot
	if free, _ := cmd.Flags().GetBool("free-root"); free {
		policy = theory.FreeRoot
	}
	root, err := theory.NewModulus(rootClass, set.Modulus())
	if err != nil {
		return err
	}
	// templates are rooted on class 0; transpose to the requested root
	ch, err := theory.NewChord(set.Transpose(root.Residue()), root, nil, policy)
	if err != nil {
		return err
	}

	fmt.Printf("chord:       %s\n", args[0])
	fmt.Printf("classes:     %v\n", ch.Set().Residues())
	fmt.Printf("modulus:     %d\n", ch.Set().Modulus())
	fmt.Printf("root:        %d\n", ch.Root().Residue())
	fmt.Printf("voicing:     %s\n", ch)
	fmt.Printf("normal form: %v\n", residueList(ch.Set().NormalForm()))
	return nil
}

func residueList(ms []theory.Modulus) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.Residue()
	}
	return out
}
