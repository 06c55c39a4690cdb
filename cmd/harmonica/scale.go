package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josiahhuergo/Harmonica/theory"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Inspect scale templates (info, modes)",
}

var scaleInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a scale template's structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runScaleInfo,
}

var scaleModesCmd = &cobra.Command{
	Use:   "modes <name>",
	Short: "List a scale template's modes",
	Args:  cobra.ExactArgs(1),
	RunE:  runScaleModes,
}

func init() {
	scaleInfoCmd.Flags().Int("tonic", 0, "tonic pitch (default from config)")
	scaleModesCmd.Flags().Bool("relative", false, "rotate relative to the tonic instead of parallel")
	scaleModesCmd.Flags().Int("tonic", 0, "tonic pitch (default from config)")

	scaleCmd.AddCommand(scaleInfoCmd)
	scaleCmd.AddCommand(scaleModesCmd)
	rootCmd.AddCommand(scaleCmd)
}

// catalogScale builds a Scale from a named template and the tonic flag.
func catalogScale(cmd *cobra.Command, name string) (theory.Scale, error) {
	c, err := loadCatalog()
	if err != nil {
		return theory.Scale{}, err
	}
	cycle, ok := c.Scale(name)
	if !ok {
		return theory.Scale{}, fmt.Errorf("unknown scale %q (see: harmonica find)", name)
	}
	tonic := viper.GetInt("tonic")
	if cmd.Flags().Changed("tonic") {
		tonic, _ = cmd.Flags().GetInt("tonic")
	}
	return theory.NewScale(cycle, tonic)
}

func runScaleInfo(cmd *cobra.Command, args []string) error {
	s, err := catalogScale(cmd, args[0])
	if err != nil {
		return err
	}
	set := s.PitchClassSet()

	fmt.Printf("scale:          %s\n", args[0])
	fmt.Printf("steps:          %v\n", s.Cycle().Steps())
	fmt.Printf("modulus:        %d\n", s.Cycle().Modulus())
	fmt.Printf("degrees:        %d\n", s.Degrees())
	fmt.Printf("span:           %d\n", s.Cycle().Span())
	fmt.Printf("tonic:          %d\n", s.Tonic())
	fmt.Printf("classes:        %v\n", set.Residues())
	fmt.Printf("modes:          %d\n", s.CountModes())
	fmt.Printf("transpositions: %d\n", s.CountTranspositions())
	return nil
}

func runScaleModes(cmd *cobra.Command, args []string) error {
	s, err := catalogScale(cmd, args[0])
	if err != nil {
		return err
	}
	relative, _ := cmd.Flags().GetBool("relative")

	for i := 0; i < s.CountModes(); i++ {
		m := s.Rotate(i)
		if relative {
			m = s.RelativeMode(i)
		}
		fmt.Printf("%d: %v @ %d\n", i, m.Cycle().Steps(), m.Tonic())
	}
	return nil
}
