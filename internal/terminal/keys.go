package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"spaceaction/internal/game"
)

// Terminals only report presses (plus autorepeat). A key counts as held
// until no press has been seen for the hold window.
type keyHold struct {
	window time.Duration
	seen   map[game.Key]time.Time
}

func newKeyHold(window time.Duration) *keyHold {
	return &keyHold{window: window, seen: make(map[game.Key]time.Time)}
}

// Press records k at now. It reports whether k was not already held.
func (h *keyHold) Press(k game.Key, now time.Time) bool {
	_, held := h.seen[k]
	h.seen[k] = now
	return !held
}

// Expire returns and forgets the keys whose hold window has lapsed.
func (h *keyHold) Expire(now time.Time) []game.Key {
	var out []game.Key
	for k, t := range h.seen {
		if now.Sub(t) >= h.window {
			out = append(out, k)
			delete(h.seen, k)
		}
	}
	return out
}

// Clear forgets every held key.
func (h *keyHold) Clear() {
	clear(h.seen)
}

// translateKey maps a tcell key event to a game key.
func translateKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyEnter:
		return game.KeyRestart
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.KeySpace
		case 'a', 'A':
			return game.KeyLeft
		case 'd', 'D':
			return game.KeyRight
		case 'w', 'W':
			return game.KeyUp
		case 's', 'S':
			return game.KeyDown
		case 'r', 'R':
			return game.KeyRestart
		}
	}
	return game.KeyNone
}

// isQuit reports Escape, Ctrl-C and q.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
