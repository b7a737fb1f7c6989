package format

import (
	"testing"

	"github.com/mmuldo/colorweave/palette"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input palette.RGB
		want  string
	}{
		{"exact", palette.RGB{R: 0x46, G: 0x82, B: 0xb4}, "steelblue"},
		{"white", palette.White, "white"},
		{"shared value", palette.RGB{R: 0, G: 255, B: 255}, "aqua"},
		{"nearest", palette.RGB{R: 250, G: 2, B: 3}, "red"},
		{"nearly black", palette.RGB{R: 3, G: 3, B: 3}, "black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFamily(t *testing.T) {
	tests := map[string]string{
		"firebrick": "red",
		"steelblue": "blue",
		"fuchsia":   "purple",
		"white":     "white",
		"notacolor": "notacolor",
	}
	for name, want := range tests {
		if got := Family(name); got != want {
			t.Errorf("Family(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestTablesAgree(t *testing.T) {
	if len(css3) != len(families) {
		t.Errorf("%d named colors but %d families", len(css3), len(families))
	}
	for _, nc := range css3 {
		if _, ok := families[nc.name]; !ok {
			t.Errorf("%s has no family", nc.name)
		}
	}
}
