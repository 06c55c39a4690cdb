package theory

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Catalog is a read-only dictionary of named scale and chord
// templates. The default catalog is populated once at process start;
// user catalogs are decoded from TOML and merged into fresh Catalog
// values. A Catalog is never mutated after construction.
type Catalog struct {
	scales map[string]CycleModulus
	chords map[string]PitchClassSet
}

type catalogFile struct {
	Scales []scaleEntry `toml:"scale"`
	Chords []chordEntry `toml:"chord"`
}

type scaleEntry struct {
	Name    string `toml:"name"`
	Modulus int    `toml:"modulus"`
	Steps   []int  `toml:"steps"`
}

type chordEntry struct {
	Name    string `toml:"name"`
	Modulus int    `toml:"modulus"`
	Classes []int  `toml:"classes"`
}

var defaultCatalog = mustCatalog(catalogFile{
	Scales: []scaleEntry{
		{Name: "major", Modulus: 12, Steps: []int{2, 2, 1, 2, 2, 2, 1}},
		{Name: "minor", Modulus: 12, Steps: []int{2, 1, 2, 2, 1, 2, 2}},
		{Name: "harmonic-minor", Modulus: 12, Steps: []int{2, 1, 2, 2, 1, 3, 1}},
		{Name: "melodic-minor", Modulus: 12, Steps: []int{2, 1, 2, 2, 2, 2, 1}},
		{Name: "dorian", Modulus: 12, Steps: []int{2, 1, 2, 2, 2, 1, 2}},
		{Name: "phrygian", Modulus: 12, Steps: []int{1, 2, 2, 2, 1, 2, 2}},
		{Name: "lydian", Modulus: 12, Steps: []int{2, 2, 2, 1, 2, 2, 1}},
		{Name: "mixolydian", Modulus: 12, Steps: []int{2, 2, 1, 2, 2, 1, 2}},
		{Name: "locrian", Modulus: 12, Steps: []int{1, 2, 2, 1, 2, 2, 2}},
		{Name: "major-pentatonic", Modulus: 12, Steps: []int{2, 2, 3, 2, 3}},
		{Name: "minor-pentatonic", Modulus: 12, Steps: []int{3, 2, 2, 3, 2}},
		{Name: "whole-tone", Modulus: 12, Steps: []int{2, 2, 2, 2, 2, 2}},
		{Name: "octatonic", Modulus: 12, Steps: []int{2, 1, 2, 1, 2, 1, 2, 1}},
		{Name: "chromatic", Modulus: 12, Steps: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{Name: "porcupine-7", Modulus: 22, Steps: []int{3, 3, 3, 3, 3, 3, 4}},
		{Name: "orwell-9", Modulus: 22, Steps: []int{2, 3, 2, 3, 2, 3, 2, 3, 2}},
	},
	Chords: []chordEntry{
		{Name: "maj", Modulus: 12, Classes: []int{0, 4, 7}},
		{Name: "min", Modulus: 12, Classes: []int{0, 3, 7}},
		{Name: "dim", Modulus: 12, Classes: []int{0, 3, 6}},
		{Name: "aug", Modulus: 12, Classes: []int{0, 4, 8}},
		{Name: "sus2", Modulus: 12, Classes: []int{0, 2, 7}},
		{Name: "sus4", Modulus: 12, Classes: []int{0, 5, 7}},
		{Name: "dom7", Modulus: 12, Classes: []int{0, 4, 7, 10}},
		{Name: "maj7", Modulus: 12, Classes: []int{0, 4, 7, 11}},
		{Name: "min7", Modulus: 12, Classes: []int{0, 3, 7, 10}},
		{Name: "min7b5", Modulus: 12, Classes: []int{0, 3, 6, 10}},
		{Name: "dim7", Modulus: 12, Classes: []int{0, 3, 6, 9}},
	},
})

// DefaultCatalog returns the built-in template catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }

// mustCatalog builds a catalog from entries known to be valid.
func mustCatalog(f catalogFile) *Catalog {
	c, err := buildCatalog(f)
	if err != nil {
		panic(err)
	}
	return c
}

func buildCatalog(f catalogFile) (*Catalog, error) {
	c := &Catalog{
		scales: make(map[string]CycleModulus, len(f.Scales)),
		chords: make(map[string]PitchClassSet, len(f.Chords)),
	}
	for _, e := range f.Scales {
		cycle, err := NewCycleModulus(e.Steps, e.Modulus)
		if err != nil {
			return nil, fmt.Errorf("scale %q: %w", e.Name, err)
		}
		c.scales[e.Name] = cycle
	}
	for _, e := range f.Chords {
		set, err := NewPitchClassSet(e.Classes, e.Modulus)
		if err != nil {
			return nil, fmt.Errorf("chord %q: %w", e.Name, err)
		}
		c.chords[e.Name] = set
	}
	return c, nil
}

// ReadCatalog decodes a TOML catalog. Each [[scale]] table needs name,
// modulus and steps; each [[chord]] table needs name, modulus and
// classes.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return buildCatalog(f)
}

// LoadCatalog reads a TOML catalog file and merges it over the default
// catalog, so user templates shadow built-ins of the same name.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	user, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defaultCatalog.Merge(user), nil
}

// Merge returns a new catalog with o's templates added, shadowing any
// of c's with the same name. Neither input is modified.
func (c *Catalog) Merge(o *Catalog) *Catalog {
	out := &Catalog{
		scales: make(map[string]CycleModulus, len(c.scales)+len(o.scales)),
		chords: make(map[string]PitchClassSet, len(c.chords)+len(o.chords)),
	}
	for k, v := range c.scales {
		out.scales[k] = v
	}
	for k, v := range o.scales {
		out.scales[k] = v
	}
	for k, v := range c.chords {
		out.chords[k] = v
	}
	for k, v := range o.chords {
		out.chords[k] = v
	}
	return out
}

// Scale looks up a scale template's interval cycle by name.
func (c *Catalog) Scale(name string) (CycleModulus, bool) {
	cycle, ok := c.scales[name]
	return cycle, ok
}

// Chord looks up a chord template's pitch-class set by name.
func (c *Catalog) Chord(name string) (PitchClassSet, bool) {
	set, ok := c.chords[name]
	return set, ok
}

// ScaleNames returns the catalog's scale template names, sorted.
func (c *Catalog) ScaleNames() []string {
	names := make([]string, 0, len(c.scales))
	for name := range c.scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChordNames returns the catalog's chord template names, sorted.
func (c *Catalog) ChordNames() []string {
	names := make([]string, 0, len(c.chords))
	for name := range c.chords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
