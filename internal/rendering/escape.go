package rendering

import "strings"

// SanitizeText maps characters the core PDF fonts cannot show onto close
// cp1252 equivalents. Control and zero-width characters are dropped, tabs and
// other spacing become plain spaces. Anything left outside cp1252 is shown as
// '.' by the encoder.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\t', '\u00a0', '\u2002', '\u2003', '\u2009', '\u202f':
			result.WriteByte(' ')
		case '\u200b', '\u200c', '\u200d', '\ufeff', '\u00ad':
		case '\u2010', '\u2011', '\u2012', '\u2212':
			result.WriteByte('-')
		case '→':
			result.WriteString("->")
		case '←':
			result.WriteString("<-")
		case '\u25cf', '\u25aa', '\u2023':
			result.WriteRune('\u2022')
		case '✓', '✔':
			result.WriteString("v")
		case 'ﬁ':
			result.WriteString("fi")
		case 'ﬂ':
			result.WriteString("fl")
		default:
			if r < 0x20 || r == 0x7f {
				continue
			}
			result.WriteRune(r)
		}
	}

	return result.String()
}
