package catalog

import "strings"

var colorHexes = map[string]string{
	"black":  "#000000",
	"white":  "#FFFFFF",
	"red":    "#DC2626",
	"blue":   "#2563EB",
	"navy":   "#1E3A8A",
	"green":  "#16A34A",
	"olive":  "#708238",
	"yellow": "#FACC15",
	"orange": "#F97316",
	"pink":   "#EC4899",
	"purple": "#9333EA",
	"brown":  "#92400E",
	"beige":  "#F5F5DC",
	"gray":   "#6B7280",
	"grey":   "#6B7280",
	"silver": "#C0C0C0",
	"gold":   "#D4AF37",
	"maroon": "#800000",
	"cream":  "#FFFDD0",
	"khaki":  "#C3B091",
	"camel":  "#C19A6B",

	"أسود":    "#000000",
	"أبيض":    "#FFFFFF",
	"أحمر":    "#DC2626",
	"أزرق":    "#2563EB",
	"كحلي":    "#1E3A8A",
	"أخضر":    "#16A34A",
	"زيتي":    "#708238",
	"أصفر":    "#FACC15",
	"برتقالي": "#F97316",
	"وردي":    "#EC4899",
	"بنفسجي":  "#9333EA",
	"بني":     "#92400E",
	"بيج":     "#F5F5DC",
	"رمادي":   "#6B7280",
	"فضي":     "#C0C0C0",
	"ذهبي":    "#D4AF37",
	"عنابي":   "#800000",
}

// ColorHex maps a color name to a display hex value. The lookup is trimmed
// and case-insensitive; unknown names come back unchanged.
func ColorHex(name string) string {
	if hex, ok := colorHexes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return hex
	}

	return name
}
