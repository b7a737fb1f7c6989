package format

import (
	"math"

	"github.com/mmuldo/colorweave/palette"
)

type namedColor struct {
	name string
	rgb  palette.RGB
}

// Name returns the CSS3 name of c, or of the nearest named color by
// squared RGB distance.
func Name(c palette.RGB) string {
	best, bestD := "", math.MaxInt
	for _, nc := range css3 {
		dr := int(nc.rgb.R) - int(c.R)
		dg := int(nc.rgb.G) - int(c.G)
		db := int(nc.rgb.B) - int(c.B)
		if d := dr*dr + dg*dg + db*db; d < bestD {
			best, bestD = nc.name, d
			if d == 0 {
				break
			}
		}
	}
	return best
}

// Family folds a CSS3 name into its coarse color family, e.g.
// "firebrick" into "red". Unknown names come back unchanged.
func Family(name string) string {
	if f, ok := families[name]; ok {
		return f
	}
	return name
}

// css3 is the CSS3 named color table in alphabetical order. Where two
// names share a value the first one is reported.
var css3 = []namedColor{
	{"aliceblue", palette.RGB{R: 0xf0, G: 0xf8, B: 0xff}},
	{"antiquewhite", palette.RGB{R: 0xfa, G: 0xeb, B: 0xd7}},
	{"aqua", palette.RGB{R: 0x00, G: 0xff, B: 0xff}},
	{"aquamarine", palette.RGB{R: 0x7f, G: 0xff, B: 0xd4}},
	{"azure", palette.RGB{R: 0xf0, G: 0xff, B: 0xff}},
	{"beige", palette.RGB{R: 0xf5, G: 0xf5, B: 0xdc}},
	{"bisque", palette.RGB{R: 0xff, G: 0xe4, B: 0xc4}},
	{"black", palette.RGB{R: 0x00, G: 0x00, B: 0x00}},
	{"blanchedalmond", palette.RGB{R: 0xff, G: 0xeb, B: 0xcd}},
	{"blue", palette.RGB{R: 0x00, G: 0x00, B: 0xff}},
	{"blueviolet", palette.RGB{R: 0x8a, G: 0x2b, B: 0xe2}},
	{"brown", palette.RGB{R: 0xa5, G: 0x2a, B: 0x2a}},
	{"burlywood", palette.RGB{R: 0xde, G: 0xb8, B: 0x87}},
	{"cadetblue", palette.RGB{R: 0x5f, G: 0x9e, B: 0xa0}},
	{"chartreuse", palette.RGB{R: 0x7f, G: 0xff, B: 0x00}},
	{"chocolate", palette.RGB{R: 0xd2, G: 0x69, B: 0x1e}},
	{"coral", palette.RGB{R: 0xff, G: 0x7f, B: 0x50}},
	{"cornflowerblue", palette.RGB{R: 0x64, G: 0x95, B: 0xed}},
	{"cornsilk", palette.RGB{R: 0xff, G: 0xf8, B: 0xdc}},
	{"crimson", palette.RGB{R: 0xdc, G: 0x14, B: 0x3c}},
	{"cyan", palette.RGB{R: 0x00, G: 0xff, B: 0xff}},
	{"darkblue", palette.RGB{R: 0x00, G: 0x00, B: 0x8b}},
	{"darkcyan", palette.RGB{R: 0x00, G: 0x8b, B: 0x8b}},
	{"darkgoldenrod", palette.RGB{R: 0xb8, G: 0x86, B: 0x0b}},
	{"darkgray", palette.RGB{R: 0xa9, G: 0xa9, B: 0xa9}},
	{"darkgreen", palette.RGB{R: 0x00, G: 0x64, B: 0x00}},
	{"darkkhaki", palette.RGB{R: 0xbd, G: 0xb7, B: 0x6b}},
	{"darkmagenta", palette.RGB{R: 0x8b, G: 0x00, B: 0x8b}},
	{"darkolivegreen", palette.RGB{R: 0x55, G: 0x6b, B: 0x2f}},
	{"darkorange", palette.RGB{R: 0xff, G: 0x8c, B: 0x00}},
	{"darkorchid", palette.RGB{R: 0x99, G: 0x32, B: 0xcc}},
	{"darkred", palette.RGB{R: 0x8b, G: 0x00, B: 0x00}},
	{"darksalmon", palette.RGB{R: 0xe9, G: 0x96, B: 0x7a}},
	{"darkseagreen", palette.RGB{R: 0x8f, G: 0xbc, B: 0x8f}},
	{"darkslateblue", palette.RGB{R: 0x48, G: 0x3d, B: 0x8b}},
	{"darkslategray", palette.RGB{R: 0x2f, G: 0x4f, B: 0x4f}},
	{"darkturquoise", palette.RGB{R: 0x00, G: 0xce, B: 0xd1}},
	{"darkviolet", palette.RGB{R: 0x94, G: 0x00, B: 0xd3}},
	{"deeppink", palette.RGB{R: 0xff, G: 0x14, B: 0x93}},
	{"deepskyblue", palette.RGB{R: 0x00, G: 0xbf, B: 0xff}},
	{"dimgrey", palette.RGB{R: 0x69, G: 0x69, B: 0x69}},
	{"dodgerblue", palette.RGB{R: 0x1e, G: 0x90, B: 0xff}},
	{"firebrick", palette.RGB{R: 0xb2, G: 0x22, B: 0x22}},
	{"floralwhite", palette.RGB{R: 0xff, G: 0xfa, B: 0xf0}},
	{"forestgreen", palette.RGB{R: 0x22, G: 0x8b, B: 0x22}},
	{"fuchsia", palette.RGB{R: 0xff, G: 0x00, B: 0xff}},
	{"gainsboro", palette.RGB{R: 0xdc, G: 0xdc, B: 0xdc}},
	{"ghostwhite", palette.RGB{R: 0xf8, G: 0xf8, B: 0xff}},
	{"gold", palette.RGB{R: 0xff, G: 0xd7, B: 0x00}},
	{"goldenrod", palette.RGB{R: 0xda, G: 0xa5, B: 0x20}},
	{"grey", palette.RGB{R: 0x80, G: 0x80, B: 0x80}},
	{"green", palette.RGB{R: 0x00, G: 0x80, B: 0x00}},
	{"greenyellow", palette.RGB{R: 0xad, G: 0xff, B: 0x2f}},
	{"honeydew", palette.RGB{R: 0xf0, G: 0xff, B: 0xf0}},
	{"hotpink", palette.RGB{R: 0xff, G: 0x69, B: 0xb4}},
	{"indianred", palette.RGB{R: 0xcd, G: 0x5c, B: 0x5c}},
	{"indigo", palette.RGB{R: 0x4b, G: 0x00, B: 0x82}},
	{"ivory", palette.RGB{R: 0xff, G: 0xff, B: 0xf0}},
	{"khaki", palette.RGB{R: 0xf0, G: 0xe6, B: 0x8c}},
	{"lavender", palette.RGB{R: 0xe6, G: 0xe6, B: 0xfa}},
	{"lavenderblush", palette.RGB{R: 0xff, G: 0xf0, B: 0xf5}},
	{"lawngreen", palette.RGB{R: 0x7c, G: 0xfc, B: 0x00}},
	{"lemonchiffon", palette.RGB{R: 0xff, G: 0xfa, B: 0xcd}},
	{"lightblue", palette.RGB{R: 0xad, G: 0xd8, B: 0xe6}},
	{"lightcoral", palette.RGB{R: 0xf0, G: 0x80, B: 0x80}},
	{"lightcyan", palette.RGB{R: 0xe0, G: 0xff, B: 0xff}},
	{"lightgoldenrodyellow", palette.RGB{R: 0xfa, G: 0xfa, B: 0xd2}},
	{"lightgray", palette.RGB{R: 0xd3, G: 0xd3, B: 0xd3}},
	{"lightgreen", palette.RGB{R: 0x90, G: 0xee, B: 0x90}},
	{"lightpink", palette.RGB{R: 0xff, G: 0xb6, B: 0xc1}},
	{"lightsalmon", palette.RGB{R: 0xff, G: 0xa0, B: 0x7a}},
	{"lightseagreen", palette.RGB{R: 0x20, G: 0xb2, B: 0xaa}},
	{"lightskyblue", palette.RGB{R: 0x87, G: 0xce, B: 0xfa}},
	{"lightslategrey", palette.RGB{R: 0x77, G: 0x88, B: 0x99}},
	{"lightsteelblue", palette.RGB{R: 0xb0, G: 0xc4, B: 0xde}},
	{"lightyellow", palette.RGB{R: 0xff, G: 0xff, B: 0xe0}},
	{"lime", palette.RGB{R: 0x00, G: 0xff, B: 0x00}},
	{"limegreen", palette.RGB{R: 0x32, G: 0xcd, B: 0x32}},
	{"linen", palette.RGB{R: 0xfa, G: 0xf0, B: 0xe6}},
	{"magenta", palette.RGB{R: 0xff, G: 0x00, B: 0xff}},
	{"maroon", palette.RGB{R: 0x80, G: 0x00, B: 0x00}},
	{"mediumaquamarine", palette.RGB{R: 0x66, G: 0xcd, B: 0xaa}},
	{"mediumblue", palette.RGB{R: 0x00, G: 0x00, B: 0xcd}},
	{"mediumorchid", palette.RGB{R: 0xba, G: 0x55, B: 0xd3}},
	{"mediumpurple", palette.RGB{R: 0x93, G: 0x70, B: 0xdb}},
	{"mediumseagreen", palette.RGB{R: 0x3c, G: 0xb3, B: 0x71}},
	{"mediumslateblue", palette.RGB{R: 0x7b, G: 0x68, B: 0xee}},
	{"mediumspringgreen", palette.RGB{R: 0x00, G: 0xfa, B: 0x9a}},
	{"mediumturquoise", palette.RGB{R: 0x48, G: 0xd1, B: 0xcc}},
	{"mediumvioletred", palette.RGB{R: 0xc7, G: 0x15, B: 0x85}},
	{"midnightblue", palette.RGB{R: 0x19, G: 0x19, B: 0x70}},
	{"mintcream", palette.RGB{R: 0xf5, G: 0xff, B: 0xfa}},
	{"mistyrose", palette.RGB{R: 0xff, G: 0xe4, B: 0xe1}},
	{"moccasin", palette.RGB{R: 0xff, G: 0xe4, B: 0xb5}},
	{"navajowhite", palette.RGB{R: 0xff, G: 0xde, B: 0xad}},
	{"navy", palette.RGB{R: 0x00, G: 0x00, B: 0x80}},
	{"oldlace", palette.RGB{R: 0xfd, G: 0xf5, B: 0xe6}},
	{"olive", palette.RGB{R: 0x80, G: 0x80, B: 0x00}},
	{"olivedrab", palette.RGB{R: 0x6b, G: 0x8e, B: 0x23}},
	{"orange", palette.RGB{R: 0xff, G: 0xa5, B: 0x00}},
	{"orangered", palette.RGB{R: 0xff, G: 0x45, B: 0x00}},
	{"orchid", palette.RGB{R: 0xda, G: 0x70, B: 0xd6}},
	{"palegoldenrod", palette.RGB{R: 0xee, G: 0xe8, B: 0xaa}},
	{"palegreen", palette.RGB{R: 0x98, G: 0xfb, B: 0x98}},
	{"paleturquoise", palette.RGB{R: 0xaf, G: 0xee, B: 0xee}},
	{"palevioletred", palette.RGB{R: 0xdb, G: 0x70, B: 0x93}},
	{"papayawhip", palette.RGB{R: 0xff, G: 0xef, B: 0xd5}},
	{"peachpuff", palette.RGB{R: 0xff, G: 0xda, B: 0xb9}},
	{"peru", palette.RGB{R: 0xcd, G: 0x85, B: 0x3f}},
	{"pink", palette.RGB{R: 0xff, G: 0xc0, B: 0xcb}},
	{"plum", palette.RGB{R: 0xdd, G: 0xa0, B: 0xdd}},
	{"powderblue", palette.RGB{R: 0xb0, G: 0xe0, B: 0xe6}},
	{"purple", palette.RGB{R: 0x80, G: 0x00, B: 0x80}},
	{"red", palette.RGB{R: 0xff, G: 0x00, B: 0x00}},
	{"rosybrown", palette.RGB{R: 0xbc, G: 0x8f, B: 0x8f}},
	{"royalblue", palette.RGB{R: 0x41, G: 0x69, B: 0xe1}},
	{"saddlebrown", palette.RGB{R: 0x8b, G: 0x45, B: 0x13}},
	{"salmon", palette.RGB{R: 0xfa, G: 0x80, B: 0x72}},
	{"sandybrown", palette.RGB{R: 0xf4, G: 0xa4, B: 0x60}},
	{"seagreen", palette.RGB{R: 0x2e, G: 0x8b, B: 0x57}},
	{"seashell", palette.RGB{R: 0xff, G: 0xf5, B: 0xee}},
	{"sienna", palette.RGB{R: 0xa0, G: 0x52, B: 0x2d}},
	{"silver", palette.RGB{R: 0xc0, G: 0xc0, B: 0xc0}},
	{"skyblue", palette.RGB{R: 0x87, G: 0xce, B: 0xeb}},
	{"slateblue", palette.RGB{R: 0x6a, G: 0x5a, B: 0xcd}},
	{"slategray", palette.RGB{R: 0x70, G: 0x80, B: 0x90}},
	{"snow", palette.RGB{R: 0xff, G: 0xfa, B: 0xfa}},
	{"springgreen", palette.RGB{R: 0x00, G: 0xff, B: 0x7f}},
	{"steelblue", palette.RGB{R: 0x46, G: 0x82, B: 0xb4}},
	{"tan", palette.RGB{R: 0xd2, G: 0xb4, B: 0x8c}},
	{"teal", palette.RGB{R: 0x00, G: 0x80, B: 0x80}},
	{"thistle", palette.RGB{R: 0xd8, G: 0xbf, B: 0xd8}},
	{"tomato", palette.RGB{R: 0xff, G: 0x63, B: 0x47}},
	{"turquoise", palette.RGB{R: 0x40, G: 0xe0, B: 0xd0}},
	{"violet", palette.RGB{R: 0xee, G: 0x82, B: 0xee}},
	{"wheat", palette.RGB{R: 0xf5, G: 0xde, B: 0xb3}},
	{"white", palette.RGB{R: 0xff, G: 0xff, B: 0xff}},
	{"whitesmoke", palette.RGB{R: 0xf5, G: 0xf5, B: 0xf5}},
	{"yellow", palette.RGB{R: 0xff, G: 0xff, B: 0x00}},
	{"yellowgreen", palette.RGB{R: 0x9a, G: 0xcd, B: 0x32}},
}

// families folds CSS3 names into a coarse color vocabulary.
var families = map[string]string{
	"aliceblue":            "white",
	"antiquewhite":         "white",
	"aqua":                 "cyan",
	"aquamarine":           "cyan",
	"azure":                "white",
	"beige":                "white",
	"bisque":               "brown",
	"black":                "black",
	"blanchedalmond":       "brown",
	"blue":                 "blue",
	"blueviolet":           "purple",
	"brown":                "brown",
	"burlywood":            "brown",
	"cadetblue":            "teal",
	"chartreuse":           "green",
	"chocolate":            "brown",
	"coral":                "orange",
	"cornflowerblue":       "blue",
	"cornsilk":             "brown",
	"crimson":              "red",
	"cyan":                 "cyan",
	"darkblue":             "blue",
	"darkcyan":             "teal",
	"darkgoldenrod":        "brown",
	"darkgray":             "gray",
	"darkgreen":            "green",
	"darkkhaki":            "yellow",
	"darkmagenta":          "purple",
	"darkolivegreen":       "green",
	"darkorange":           "orange",
	"darkorchid":           "purple",
	"darkred":              "red",
	"darksalmon":           "red",
	"darkseagreen":         "green",
	"darkslateblue":        "purple",
	"darkslategray":        "gray",
	"darkturquoise":        "teal",
	"darkviolet":           "purple",
	"deeppink":             "pink",
	"deepskyblue":          "blue",
	"dimgrey":              "gray",
	"dodgerblue":           "blue",
	"firebrick":            "red",
	"floralwhite":          "white",
	"forestgreen":          "green",
	"fuchsia":              "purple",
	"gainsboro":            "gray",
	"ghostwhite":           "white",
	"gold":                 "orange",
	"goldenrod":            "brown",
	"grey":                 "gray",
	"green":                "green",
	"greenyellow":          "green",
	"honeydew":             "white",
	"hotpink":              "pink",
	"indianred":            "red",
	"indigo":               "purple",
	"ivory":                "white",
	"khaki":                "yellow",
	"lavender":             "purple",
	"lavenderblush":        "white",
	"lawngreen":            "green",
	"lemonchiffon":         "yellow",
	"lightblue":            "blue",
	"lightcoral":           "red",
	"lightcyan":            "cyan",
	"lightgoldenrodyellow": "yellow",
	"lightgray":            "gray",
	"lightgreen":           "green",
	"lightpink":            "pink",
	"lightsalmon":          "red",
	"lightseagreen":        "teal",
	"lightskyblue":         "blue",
	"lightslategrey":       "gray",
	"lightsteelblue":       "blue",
	"lightyellow":          "yellow",
	"lime":                 "green",
	"limegreen":            "green",
	"linen":                "white",
	"magenta":              "purple",
	"maroon":               "maroon",
	"mediumaquamarine":     "cyan",
	"mediumblue":           "blue",
	"mediumorchid":         "purple",
	"mediumpurple":         "purple",
	"mediumseagreen":       "green",
	"mediumslateblue":      "purple",
	"mediumspringgreen":    "green",
	"mediumturquoise":      "teal",
	"mediumvioletred":      "pink",
	"midnightblue":         "blue",
	"mintcream":            "white",
	"mistyrose":            "white",
	"moccasin":             "yellow",
	"navajowhite":          "brown",
	"navy":                 "blue",
	"oldlace":              "white",
	"olive":                "green",
	"olivedrab":            "green",
	"orange":               "orange",
	"orangered":            "orange",
	"orchid":               "purple",
	"palegoldenrod":        "yellow",
	"palegreen":            "green",
	"paleturquoise":        "cyan",
	"palevioletred":        "pink",
	"papayawhip":           "yellow",
	"peachpuff":            "yellow",
	"peru":                 "brown",
	"pink":                 "pink",
	"plum":                 "purple",
	"powderblue":           "blue",
	"purple":               "purple",
	"red":                  "red",
	"rosybrown":            "brown",
	"royalblue":            "blue",
	"saddlebrown":          "brown",
	"salmon":               "red",
	"sandybrown":           "brown",
	"seagreen":             "green",
	"seashell":             "white",
	"sienna":               "brown",
	"silver":               "gray",
	"skyblue":              "blue",
	"slateblue":            "purple",
	"slategray":            "gray",
	"snow":                 "white",
	"springgreen":          "green",
	"steelblue":            "blue",
	"tan":                  "brown",
	"teal":                 "teal",
	"thistle":              "purple",
	"tomato":               "orange",
	"turquoise":            "teal",
	"violet":               "purple",
	"wheat":                "brown",
	"white":                "white",
	"whitesmoke":           "white",
	"yellow":               "yellow",
	"yellowgreen":          "green",
}
