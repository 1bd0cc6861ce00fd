// ABOUTME: Display width measurement for table and footer layout
// ABOUTME: Grapheme-aware via uniseg and runewidth, with an LRU for repeat rows

package width

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Every render frame remeasures the same visible rows, so non-ASCII
// measurements are cached. Pure ASCII skips the cache entirely.
const cacheSize = 512

type measured struct {
	s string
	w int
}

type lru struct {
	mu    sync.Mutex
	index map[string]*list.Element
	order *list.List
	cap   int
}

func newLRU(cap int) *lru {
	return &lru{
		index: make(map[string]*list.Element, cap),
		order: list.New(),
		cap:   cap,
	}
}

func (c *lru) get(s string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.index[s]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(e)
	return e.Value.(measured).w, true
}

func (c *lru) put(s string, w int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[s]; ok {
		return
	}
	if c.order.Len() >= c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(measured).s)
	}
	c.index[s] = c.order.PushFront(measured{s: s, w: w})
}

var widths = newLRU(cacheSize)

// VisibleWidth returns the number of terminal columns s occupies. ANSI
// escape sequences count for zero; grapheme clusters (CJK, emoji) may
// count for two.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widths.get(s); ok {
		return w
	}
	w := measure(s)
	widths.put(s, w)
	return w
}

// isPlainASCII reports whether s is printable ASCII with no escapes, the
// case where byte length equals display width.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func measure(s string) int {
	rest := StripANSI(s)
	w := 0
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w += clusterWidth(cluster)
	}
	return w
}

// clusterWidth sizes one grapheme cluster by its leading rune. runewidth
// handles East Asian wide and ambiguous characters.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
