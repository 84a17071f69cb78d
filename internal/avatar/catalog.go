package avatar

import (
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Range is the inclusive bound a slider enforces for a numeric field.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether v lies within r.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Catalog is the closed set of choices offered by the input widgets.
type Catalog struct {
	Hats   []string        `yaml:"hats"`
	Ranges map[Field]Range `yaml:"ranges"`
}

// HatOption is a hat as shown in the hat picker.
type HatOption struct {
	Value string
	Label string
}

var defaultHats = []string{
	"none", "bunny", "coffee", "construction", "cowboy", "education",
	"knight", "ninja", "party", "pirate", "watermelon", "random",
}

var defaultRanges = map[Field]Range{
	FieldBase:     {0, 1},
	FieldFace:     {0, 5},
	FieldFaceItem: {0, 9},
	FieldHair:     {0, 9},
	FieldPants:    {0, 9},
	FieldShirt:    {0, 9},
	FieldSkin:     {0, 9},
	FieldHatColor: {0, 9},
	FieldSize:     {100, 600},
}

// DefaultCatalog returns the built-in hats and slider ranges.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Hats:   append([]string(nil), defaultHats...),
		Ranges: make(map[Field]Range, len(defaultRanges)),
	}
	for f, r := range defaultRanges {
		c.Ranges[f] = r
	}
	return c
}

// LoadCatalog loads a catalog from a YAML file. Sections missing from the
// file keep their defaults.
func LoadCatalog(path string) (*Catalog, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	def := DefaultCatalog()
	if len(c.Hats) == 0 {
		c.Hats = def.Hats
	}
	if c.Ranges == nil {
		c.Ranges = map[Field]Range{}
	}
	for f, r := range def.Ranges {
		if _, ok := c.Ranges[f]; !ok {
			c.Ranges[f] = r
		}
	}
	return &c, nil
}

// Range returns the allowed bounds for a numeric field.
func (c *Catalog) Range(f Field) (Range, bool) {
	if c == nil {
		r, ok := defaultRanges[f]
		return r, ok
	}
	r, ok := c.Ranges[f]
	return r, ok
}

// HasHat reports whether hat is one of the offered hats.
func (c *Catalog) HasHat(hat string) bool {
	hats := defaultHats
	if c != nil {
		hats = c.Hats
	}
	for _, h := range hats {
		if h == hat {
			return true
		}
	}
	return false
}

// HatOptions returns the hats with display labels, in catalog order.
func (c *Catalog) HatOptions() []HatOption {
	hats := defaultHats
	if c != nil {
		hats = c.Hats
	}
	title := cases.Title(language.English)
	out := make([]HatOption, 0, len(hats))
	for _, h := range hats {
		out = append(out, HatOption{Value: h, Label: title.String(h)})
	}
	return out
}
