package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatPattern renders a strftime-style pattern with the values of t,
// producing a destination subdirectory name such as "2023/10 - October" for
// the pattern "%Y/%m - %B".
//
// Supported verbs: %Y %y %m %B %b %d %e %H %M %S %j and %% for a literal
// percent sign. Unrecognized verbs are kept as-is so a typo never silently
// drops part of the pattern.
func FormatPattern(t time.Time, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i == len(runes)-1 {
			b.WriteRune(runes[i])
			continue
		}
		i++
		switch runes[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", t.Year())
		case 'y':
			b.WriteString(t.Format("06"))
		case 'm':
			b.WriteString(t.Format("01"))
		case 'B':
			b.WriteString(t.Month().String())
		case 'b':
			b.WriteString(t.Format("Jan"))
		case 'd':
			b.WriteString(t.Format("02"))
		case 'e':
			fmt.Fprintf(&b, "%d", t.Day())
		case 'H':
			b.WriteString(t.Format("15"))
		case 'M':
			b.WriteString(t.Format("04"))
		case 'S':
			b.WriteString(t.Format("05"))
		case 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		case '%':
			b.WriteRune('%')
		default:
			b.WriteRune('%')
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
