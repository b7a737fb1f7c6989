package format

import (
	"fmt"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorweave/palette"
)

var defaultTemplate = pongo2.Must(pongo2.FromString(
	`{% for c in colors %}{{ c.swatch }}{{ c.hex }}{% if c.label %} {{ c.label }}{% endif %}
{% endfor %}{% if background %}background {{ background.swatch }}{{ background.hex }}{% if background.label %} {{ background.label }}{% endif %}
{% endif %}`))

// label is the naming text shown after a hex code in text output.
func label(c palette.RGB, f Format) string {
	switch f {
	case CSS3:
		return Name(c)
	case CSS21:
		return Family(Name(c))
	case Full, Fullest:
		n := Name(c)
		return fmt.Sprintf("%s (%s)", n, Family(n))
	}
	return ""
}

func swatch(c palette.RGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m ", c.R, c.G, c.B)
}

func colorContext(c palette.Color, opts Options) map[string]interface{} {
	m := map[string]interface{}{
		"hex":        c.Hex(),
		"r":          int(c.R),
		"g":          int(c.G),
		"b":          int(c.B),
		"name":       Name(c.RGB),
		"family":     Family(Name(c.RGB)),
		"label":      label(c.RGB, opts.Format),
		"count":      c.Count,
		"prominence": c.Prominence,
		"swatch":     "",
	}
	if opts.Swatch {
		m["swatch"] = swatch(c.RGB)
	}
	return m
}

// context is what templates see: "colors", a list of maps with hex, r, g,
// b, name, family, label, count, prominence and swatch keys, and
// "background", a map of the same shape or nil.
func context(p *palette.Palette, opts Options) pongo2.Context {
	colors := make([]map[string]interface{}, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = colorContext(c, opts)
	}

	ctx := pongo2.Context{
		"colors":     colors,
		"background": nil,
		"format":     string(opts.Format),
	}
	if p.Background != nil {
		ctx["background"] = colorContext(*p.Background, opts)
	}
	return ctx
}
