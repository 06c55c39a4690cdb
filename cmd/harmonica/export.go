package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josiahhuergo/Harmonica/smf"
	"github.com/josiahhuergo/Harmonica/theory"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render templates to standard MIDI files",
}

var exportScaleCmd = &cobra.Command{
	Use:   "scale <name> <file>",
	Short: "Render one ascending cycle of a scale",
	Args:  cobra.ExactArgs(2),
	RunE:  runExportScale,
}

var exportChordCmd = &cobra.Command{
	Use:   "chord <name> <file>",
	Short: "Render a chord template as a block chord",
	Args:  cobra.ExactArgs(2),
	RunE:  runExportChord,
}

func init() {
	exportScaleCmd.Flags().Int("tonic", 0, "tonic pitch (default from config)")
	exportScaleCmd.Flags().Float64("bpm", 120, "tempo")
	exportChordCmd.Flags().Int("root", 0, "root pitch class")
	exportChordCmd.Flags().Int("octave", 5, "base cycle for the lowest voice")
	exportChordCmd.Flags().Float64("bpm", 120, "tempo")

	exportCmd.AddCommand(exportScaleCmd)
	exportCmd.AddCommand(exportChordCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportScale(cmd *cobra.Command, args []string) error {
	s, err := catalogScale(cmd, args[0])
	if err != nil {
		return err
	}
	bpm, _ := cmd.Flags().GetFloat64("bpm")
	if err := smf.WriteScale(args[1], s, smf.Options{BPM: bpm}); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func runExportChord(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	set, ok := c.Chord(args[0])
	if !ok {
		return fmt.Errorf("unknown chord %q (see: harmonica find)", args[0])
	}
	rootClass, _ := cmd.Flags().GetInt("root")
	root, err := theory.NewModulus(rootClass, set.Modulus())
	if err != nil {
		return err
	}
	ch, err := theory.NewChord(set.Transpose(root.Residue()), root, nil, theory.StrictRoot)
	if err != nil {
		return err
	}
	octave, _ := cmd.Flags().GetInt("octave")
	bpm, _ := cmd.Flags().GetFloat64("bpm")
	if err := smf.WriteChord(args[1], ch, octave, smf.Options{BPM: bpm}); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}
