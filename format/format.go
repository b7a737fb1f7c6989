// Package format renders palettes as hex lists, CSS color names, JSON
// documents or pongo2 text templates.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2"
	"github.com/mitchellh/go-homedir"

	"github.com/mmuldo/colorweave/palette"
)

// Format selects how much naming information accompanies each color.
type Format string

const (
	Hex     Format = ""        // hex strings only
	CSS3    Format = "css3"    // hex -> CSS3 name
	CSS21   Format = "css21"   // hex -> color family
	Full    Format = "full"    // family -> [{name: hex}]
	Fullest Format = "fullest" // all of the above
)

// ParseFormat accepts "", "hex", "css3", "css21", "full" and "fullest".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Hex, CSS3, CSS21, Full, Fullest:
		return f, nil
	case "hex":
		return Hex, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Output selects the document type.
type Output string

const (
	Text Output = "text"
	JSON Output = "json"
)

// ParseOutput accepts "text" (or "") and "json".
func ParseOutput(s string) (Output, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("unknown output %q", s)
}

// Options configures Render.
type Options struct {
	Format   Format
	Output   Output
	Template string // pongo2 template file for text output
	Swatch   bool   // prefix text lines with a 24-bit terminal color block
}

func hexes(colors []palette.RGB) []string {
	hs := make([]string, len(colors))
	for i, c := range colors {
		hs[i] = c.Hex()
	}
	return hs
}

// Prepare shapes colors for f: a hex list, a hex -> name or
// hex -> family map, a family -> [{name: hex}] tree, or for Fullest a map
// holding all four under "hex", "css3", "css21" and "tree".
func Prepare(colors []palette.RGB, f Format) interface{} {
	switch f {
	case CSS3:
		m := make(map[string]string, len(colors))
		for _, c := range colors {
			m[c.Hex()] = Name(c)
		}
		return m
	case CSS21:
		m := make(map[string]string, len(colors))
		for _, c := range colors {
			m[c.Hex()] = Family(Name(c))
		}
		return m
	case Full:
		tree := make(map[string][]map[string]string)
		for _, c := range colors {
			n := Name(c)
			tree[Family(n)] = append(tree[Family(n)], map[string]string{n: c.Hex()})
		}
		return tree
	case Fullest:
		return map[string]interface{}{
			"hex":   hexes(colors),
			"css3":  Prepare(colors, CSS3),
			"css21": Prepare(colors, CSS21),
			"tree":  Prepare(colors, Full),
		}
	}
	return hexes(colors)
}

// Document is the JSON form of a palette.
type Document struct {
	Colors     interface{} `json:"colors"`
	Background string      `json:"background,omitempty"`
}

// NewDocument prepares p in format f.
func NewDocument(p *palette.Palette, f Format) Document {
	colors := make([]palette.RGB, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = c.RGB
	}

	d := Document{Colors: Prepare(colors, f)}
	if p.Background != nil {
		d.Background = p.Background.Hex()
	}
	return d
}

// Render writes p to w.
func Render(w io.Writer, p *palette.Palette, opts Options) error {
	if opts.Output == JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(NewDocument(p, opts.Format))
	}

	tpl := defaultTemplate
	if opts.Template != "" {
		path, e := homedir.Expand(opts.Template)
		if e != nil {
			return e
		}
		if tpl, e = pongo2.FromFile(path); e != nil {
			return e
		}
	}

	o, e := tpl.Execute(context(p, opts))
	if e != nil {
		return e
	}

	_, e = io.WriteString(w, o)
	return e
}
