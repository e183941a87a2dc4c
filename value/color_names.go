package value

import "sort"

// namedColors lists every CSS named color with its RGB triple, sorted by
// name for binary search.
var namedColors = [...]struct {
	name string
	rgb  [3]uint8
}{
	{"aliceblue", [3]uint8{0xf0, 0xf8, 0xff}},
	{"antiquewhite", [3]uint8{0xfa, 0xeb, 0xd7}},
	{"aqua", [3]uint8{0x00, 0xff, 0xff}},
	{"aquamarine", [3]uint8{0x7f, 0xff, 0xd4}},
	{"azure", [3]uint8{0xf0, 0xff, 0xff}},
	{"beige", [3]uint8{0xf5, 0xf5, 0xdc}},
	{"bisque", [3]uint8{0xff, 0xe4, 0xc4}},
	{"black", [3]uint8{0x00, 0x00, 0x00}},
	{"blanchedalmond", [3]uint8{0xff, 0xeb, 0xcd}},
	{"blue", [3]uint8{0x00, 0x00, 0xff}},
	{"blueviolet", [3]uint8{0x8a, 0x2b, 0xe2}},
	{"brown", [3]uint8{0xa5, 0x2a, 0x2a}},
	{"burlywood", [3]uint8{0xde, 0xb8, 0x87}},
	{"cadetblue", [3]uint8{0x5f, 0x9e, 0xa0}},
	{"chartreuse", [3]uint8{0x7f, 0xff, 0x00}},
	{"chocolate", [3]uint8{0xd2, 0x69, 0x1e}},
	{"coral", [3]uint8{0xff, 0x7f, 0x50}},
	{"cornflowerblue", [3]uint8{0x64, 0x95, 0xed}},
	{"cornsilk", [3]uint8{0xff, 0xf8, 0xdc}},
	{"crimson", [3]uint8{0xdc, 0x14, 0x3c}},
	{"cyan", [3]uint8{0x00, 0xff, 0xff}},
	{"darkblue", [3]uint8{0x00, 0x00, 0x8b}},
	{"darkcyan", [3]uint8{0x00, 0x8b, 0x8b}},
	{"darkgoldenrod", [3]uint8{0xb8, 0x86, 0x0b}},
	{"darkgray", [3]uint8{0xa9, 0xa9, 0xa9}},
	{"darkgreen", [3]uint8{0x00, 0x64, 0x00}},
	{"darkgrey", [3]uint8{0xa9, 0xa9, 0xa9}},
	{"darkkhaki", [3]uint8{0xbd, 0xb7, 0x6b}},
	{"darkmagenta", [3]uint8{0x8b, 0x00, 0x8b}},
	{"darkolivegreen", [3]uint8{0x55, 0x6b, 0x2f}},
	{"darkorange", [3]uint8{0xff, 0x8c, 0x00}},
	{"darkorchid", [3]uint8{0x99, 0x32, 0xcc}},
	{"darkred", [3]uint8{0x8b, 0x00, 0x00}},
	{"darksalmon", [3]uint8{0xe9, 0x96, 0x7a}},
	{"darkseagreen", [3]uint8{0x8f, 0xbc, 0x8f}},
	{"darkslateblue", [3]uint8{0x48, 0x3d, 0x8b}},
	{"darkslategray", [3]uint8{0x2f, 0x4f, 0x4f}},
	{"darkslategrey", [3]uint8{0x2f, 0x4f, 0x4f}},
	{"darkturquoise", [3]uint8{0x00, 0xce, 0xd1}},
	{"darkviolet", [3]uint8{0x94, 0x00, 0xd3}},
	{"deeppink", [3]uint8{0xff, 0x14, 0x93}},
	{"deepskyblue", [3]uint8{0x00, 0xbf, 0xff}},
	{"dimgray", [3]uint8{0x69, 0x69, 0x69}},
	{"dimgrey", [3]uint8{0x69, 0x69, 0x69}},
	{"dodgerblue", [3]uint8{0x1e, 0x90, 0xff}},
	{"firebrick", [3]uint8{0xb2, 0x22, 0x22}},
	{"floralwhite", [3]uint8{0xff, 0xfa, 0xf0}},
	{"forestgreen", [3]uint8{0x22, 0x8b, 0x22}},
	{"fuchsia", [3]uint8{0xff, 0x00, 0xff}},
	{"gainsboro", [3]uint8{0xdc, 0xdc, 0xdc}},
	{"ghostwhite", [3]uint8{0xf8, 0xf8, 0xff}},
	{"gold", [3]uint8{0xff, 0xd7, 0x00}},
	{"goldenrod", [3]uint8{0xda, 0xa5, 0x20}},
	{"gray", [3]uint8{0x80, 0x80, 0x80}},
	{"green", [3]uint8{0x00, 0x80, 0x00}},
	{"greenyellow", [3]uint8{0xad, 0xff, 0x2f}},
	{"grey", [3]uint8{0x80, 0x80, 0x80}},
	{"honeydew", [3]uint8{0xf0, 0xff, 0xf0}},
	{"hotpink", [3]uint8{0xff, 0x69, 0xb4}},
	{"indianred", [3]uint8{0xcd, 0x5c, 0x5c}},
	{"indigo", [3]uint8{0x4b, 0x00, 0x82}},
	{"ivory", [3]uint8{0xff, 0xff, 0xf0}},
	{"khaki", [3]uint8{0xf0, 0xe6, 0x8c}},
	{"lavender", [3]uint8{0xe6, 0xe6, 0xfa}},
	{"lavenderblush", [3]uint8{0xff, 0xf0, 0xf5}},
	{"lawngreen", [3]uint8{0x7c, 0xfc, 0x00}},
	{"lemonchiffon", [3]uint8{0xff, 0xfa, 0xcd}},
	{"lightblue", [3]uint8{0xad, 0xd8, 0xe6}},
	{"lightcoral", [3]uint8{0xf0, 0x80, 0x80}},
	{"lightcyan", [3]uint8{0xe0, 0xff, 0xff}},
	{"lightgoldenrodyellow", [3]uint8{0xfa, 0xfa, 0xd2}},
	{"lightgray", [3]uint8{0xd3, 0xd3, 0xd3}},
	{"lightgreen", [3]uint8{0x90, 0xee, 0x90}},
	{"lightgrey", [3]uint8{0xd3, 0xd3, 0xd3}},
	{"lightpink", [3]uint8{0xff, 0xb6, 0xc1}},
	{"lightsalmon", [3]uint8{0xff, 0xa0, 0x7a}},
	{"lightseagreen", [3]uint8{0x20, 0xb2, 0xaa}},
	{"lightskyblue", [3]uint8{0x87, 0xce, 0xfa}},
	{"lightslategray", [3]uint8{0x77, 0x88, 0x99}},
	{"lightslategrey", [3]uint8{0x77, 0x88, 0x99}},
	{"lightsteelblue", [3]uint8{0xb0, 0xc4, 0xde}},
	{"lightyellow", [3]uint8{0xff, 0xff, 0xe0}},
	{"lime", [3]uint8{0x00, 0xff, 0x00}},
	{"limegreen", [3]uint8{0x32, 0xcd, 0x32}},
	{"linen", [3]uint8{0xfa, 0xf0, 0xe6}},
	{"magenta", [3]uint8{0xff, 0x00, 0xff}},
	{"maroon", [3]uint8{0x80, 0x00, 0x00}},
	{"mediumaquamarine", [3]uint8{0x66, 0xcd, 0xaa}},
	{"mediumblue", [3]uint8{0x00, 0x00, 0xcd}},
	{"mediumorchid", [3]uint8{0xba, 0x55, 0xd3}},
	{"mediumpurple", [3]uint8{0x93, 0x70, 0xdb}},
	{"mediumseagreen", [3]uint8{0x3c, 0xb3, 0x71}},
	{"mediumslateblue", [3]uint8{0x7b, 0x68, 0xee}},
	{"mediumspringgreen", [3]uint8{0x00, 0xfa, 0x9a}},
	{"mediumturquoise", [3]uint8{0x48, 0xd1, 0xcc}},
	{"mediumvioletred", [3]uint8{0xc7, 0x15, 0x85}},
	{"midnightblue", [3]uint8{0x19, 0x19, 0x70}},
	{"mintcream", [3]uint8{0xf5, 0xff, 0xfa}},
	{"mistyrose", [3]uint8{0xff, 0xe4, 0xe1}},
	{"moccasin", [3]uint8{0xff, 0xe4, 0xb5}},
	{"navajowhite", [3]uint8{0xff, 0xde, 0xad}},
	{"navy", [3]uint8{0x00, 0x00, 0x80}},
	{"oldlace", [3]uint8{0xfd, 0xf5, 0xe6}},
	{"olive", [3]uint8{0x80, 0x80, 0x00}},
	{"olivedrab", [3]uint8{0x6b, 0x8e, 0x23}},
	{"orange", [3]uint8{0xff, 0xa5, 0x00}},
	{"orangered", [3]uint8{0xff, 0x45, 0x00}},
	{"orchid", [3]uint8{0xda, 0x70, 0xd6}},
	{"palegoldenrod", [3]uint8{0xee, 0xe8, 0xaa}},
	{"palegreen", [3]uint8{0x98, 0xfb, 0x98}},
	{"paleturquoise", [3]uint8{0xaf, 0xee, 0xee}},
	{"palevioletred", [3]uint8{0xdb, 0x70, 0x93}},
	{"papayawhip", [3]uint8{0xff, 0xef, 0xd5}},
	{"peachpuff", [3]uint8{0xff, 0xda, 0xb9}},
	{"peru", [3]uint8{0xcd, 0x85, 0x3f}},
	{"pink", [3]uint8{0xff, 0xc0, 0xcb}},
	{"plum", [3]uint8{0xdd, 0xa0, 0xdd}},
	{"powderblue", [3]uint8{0xb0, 0xe0, 0xe6}},
	{"purple", [3]uint8{0x80, 0x00, 0x80}},
	{"red", [3]uint8{0xff, 0x00, 0x00}},
	{"rosybrown", [3]uint8{0xbc, 0x8f, 0x8f}},
	{"royalblue", [3]uint8{0x41, 0x69, 0xe1}},
	{"saddlebrown", [3]uint8{0x8b, 0x45, 0x13}},
	{"salmon", [3]uint8{0xfa, 0x80, 0x72}},
	{"sandybrown", [3]uint8{0xf4, 0xa4, 0x60}},
	{"seagreen", [3]uint8{0x2e, 0x8b, 0x57}},
	{"seashell", [3]uint8{0xff, 0xf5, 0xee}},
	{"sienna", [3]uint8{0xa0, 0x52, 0x2d}},
	{"silver", [3]uint8{0xc0, 0xc0, 0xc0}},
	{"skyblue", [3]uint8{0x87, 0xce, 0xeb}},
	{"slateblue", [3]uint8{0x6a, 0x5a, 0xcd}},
	{"slategray", [3]uint8{0x70, 0x80, 0x90}},
	{"slategrey", [3]uint8{0x70, 0x80, 0x90}},
	{"snow", [3]uint8{0xff, 0xfa, 0xfa}},
	{"springgreen", [3]uint8{0x00, 0xff, 0x7f}},
	{"steelblue", [3]uint8{0x46, 0x82, 0xb4}},
	{"tan", [3]uint8{0xd2, 0xb4, 0x8c}},
	{"teal", [3]uint8{0x00, 0x80, 0x80}},
	{"thistle", [3]uint8{0xd8, 0xbf, 0xd8}},
	{"tomato", [3]uint8{0xff, 0x63, 0x47}},
	{"turquoise", [3]uint8{0x40, 0xe0, 0xd0}},
	{"violet", [3]uint8{0xee, 0x82, 0xee}},
	{"wheat", [3]uint8{0xf5, 0xde, 0xb3}},
	{"white", [3]uint8{0xff, 0xff, 0xff}},
	{"whitesmoke", [3]uint8{0xf5, 0xf5, 0xf5}},
	{"yellow", [3]uint8{0xff, 0xff, 0x00}},
	{"yellowgreen", [3]uint8{0x9a, 0xcd, 0x32}},
}

// lookupNamed returns the RGB triple for a lowercase color name.
func lookupNamed(name string) ([3]uint8, bool) {
	i := sort.Search(len(namedColors), func(i int) bool { return namedColors[i].name >= name })
	if i < len(namedColors) && namedColors[i].name == name {
		return namedColors[i].rgb, true
	}
	return [3]uint8{}, false
}

// systemColors lists the system color keywords in their canonical case with
// the light palette used when resolving them. Sorted by lowercase name.
var systemColors = [...]struct {
	name string
	rgb  [3]uint8
}{
	{"AccentColor", [3]uint8{0x00, 0x66, 0xcc}},
	{"AccentColorText", [3]uint8{0xff, 0xff, 0xff}},
	{"ActiveText", [3]uint8{0xee, 0x00, 0x00}},
	{"ButtonBorder", [3]uint8{0x76, 0x76, 0x76}},
	{"ButtonFace", [3]uint8{0xef, 0xef, 0xef}},
	{"ButtonText", [3]uint8{0x00, 0x00, 0x00}},
	{"Canvas", [3]uint8{0xff, 0xff, 0xff}},
	{"CanvasText", [3]uint8{0x00, 0x00, 0x00}},
	{"Field", [3]uint8{0xff, 0xff, 0xff}},
	{"FieldText", [3]uint8{0x00, 0x00, 0x00}},
	{"GrayText", [3]uint8{0x80, 0x80, 0x80}},
	{"Highlight", [3]uint8{0x33, 0x90, 0xff}},
	{"HighlightText", [3]uint8{0xff, 0xff, 0xff}},
	{"LinkText", [3]uint8{0x00, 0x00, 0xee}},
	{"Mark", [3]uint8{0xff, 0xff, 0x00}},
	{"MarkText", [3]uint8{0x00, 0x00, 0x00}},
	{"SelectedItem", [3]uint8{0x00, 0x66, 0xcc}},
	{"SelectedItemText", [3]uint8{0xff, 0xff, 0xff}},
	{"VisitedText", [3]uint8{0x55, 0x1a, 0x8b}},
}

// lookupSystem returns the canonical name and palette entry for a system
// color, matched case-insensitively.
func lookupSystem(name string) (string, [3]uint8, bool) {
	name = lower(name)
	i := sort.Search(len(systemColors), func(i int) bool { return lower(systemColors[i].name) >= name })
	if i < len(systemColors) && lower(systemColors[i].name) == name {
		return systemColors[i].name, systemColors[i].rgb, true
	}
	return "", [3]uint8{}, false
}
