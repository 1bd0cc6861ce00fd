// ABOUTME: ANSI-aware wrapping and truncation for the details pane and footer
// ABOUTME: Preserves escape sequences and reopens active styling after breaks

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WrapTextWithAnsi hard-wraps s at maxWidth visible columns. Escape
// sequences pass through without counting toward width, and SGR styling
// active at a break point is reopened on the next line.
func WrapTextWithAnsi(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		col   int
		style sgrState
	)
	breakLine := func() {
		lines = append(lines, line.String())
		line.Reset()
		col = 0
		line.WriteString(style.prefix())
	}

	for i := 0; i < len(s); {
		switch {
		case s[i] == '\n':
			breakLine()
			i++
		case s[i] == '\x1b':
			end := ansiSeqEnd(s, i)
			style.apply(s[i:end])
			line.WriteString(s[i:end])
			i = end
		default:
			cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
			w := clusterWidth(cluster)
			if col+w > maxWidth {
				breakLine()
			}
			line.WriteString(cluster)
			col += w
			i = len(s) - len(rest)
		}
	}
	lines = append(lines, line.String())
	return lines
}

// TruncateToWidth fits s into maxWidth columns, replacing the overflow
// with a single ellipsis. Escape sequences are kept, and a reset is
// emitted before the ellipsis so it renders unstyled.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	keep := maxWidth - 1
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := ansiSeqEnd(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := clusterWidth(cluster)
		if col+w > keep {
			break
		}
		b.WriteString(cluster)
		col += w
		i = len(s) - len(rest)
	}
	b.WriteString("\x1b[0m…")
	return b.String()
}
