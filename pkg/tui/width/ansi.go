// ABOUTME: ANSI escape sequence handling for terminal rendering
// ABOUTME: Stripping for measurement plus SGR state carried across wrapped lines

package width

import "strings"

// StripANSI removes every ANSI escape sequence from s. Measurement runs
// on stripped text so sequences contribute zero columns.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = ansiSeqEnd(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// ansiSeqEnd returns the index just past the escape sequence starting at
// s[i] (which must be ESC). Covers CSI, OSC (ended by BEL or ST), charset
// designation, and the string sequences DCS/APC/PM ended by ST. A
// truncated sequence consumes the rest of the string.
func ansiSeqEnd(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return i
	case ']':
		for i++; i < len(s); i++ {
			if s[i] == '\a' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '(', ')':
		return min(i+2, len(s))
	case 'P', '_', '^':
		for i++; i < len(s); i++ {
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	default:
		return i + 1
	}
}

// sgrState accumulates SGR sequences so wrapped lines can reopen the
// styling that was active when the line broke. A reset sequence clears
// everything accumulated so far.
type sgrState struct {
	seqs []string
}

func (g *sgrState) apply(seq string) {
	if seq == "\x1b[0m" || seq == "\x1b[m" {
		g.seqs = g.seqs[:0]
		return
	}
	g.seqs = append(g.seqs, seq)
}

func (g *sgrState) prefix() string {
	return strings.Join(g.seqs, "")
}
