// Package input turns raw terminal bytes into discrete key and pointer events.
package input

import (
	"bufio"
	"bytes"

	"github.com/charmbracelet/x/ansi"
)

// Key identifies a logical key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyQuit
)

// EventType distinguishes key presses from pointer reports.
type EventType int

const (
	EventKey EventType = iota
	EventPointerDown
	EventPointerMove
)

// Event is one discrete input event. Col and Row are 1-based terminal cells
// and only meaningful for pointer events.
type Event struct {
	Type EventType
	Key  Key
	Col  int
	Row  int
}

// maxPending caps how long an unterminated escape sequence may grow.
const maxPending = 32

// Stream delivers input bytes via a channel. Bytes of an escape sequence that
// is split across reads are carried over to the next ReadEvents call.
type Stream struct {
	ch      chan byte
	pending []byte
	stale   bool // pending survived one read without new bytes
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader hit EOF or an error.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadEvents drains all available bytes from the stream (non-blocking) and
// parses them into events.
func ReadEvents(s *Stream) []Event {
	got := false
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.pending = append(s.pending, b)
			got = true
		default:
			break drain
		}
	}

	// An incomplete sequence that saw no new bytes for a whole read is a bare
	// Escape followed by ordinary keys.
	flush := (!got && s.stale) || s.closed || len(s.pending) > maxPending
	events, rest := Parse(s.pending, flush)
	s.pending = append(s.pending[:0], rest...)
	s.stale = len(s.pending) > 0
	return events
}

// Parse converts buf into events. It returns any trailing bytes that form an
// incomplete escape sequence; with flush set those are parsed as plain keys.
func Parse(buf []byte, flush bool) ([]Event, []byte) {
	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			if k := keyForByte(b); k != KeyNone {
				events = append(events, Event{Type: EventKey, Key: k})
			}
			continue
		}

		n, ev, ok := parseEscape(buf[i:])
		if n == 0 {
			if !flush {
				return events, buf[i:]
			}
			events = append(events, Event{Type: EventKey, Key: KeyEscape})
			continue
		}
		if ok {
			events = append(events, ev)
		}
		i += n - 1
	}
	return events, nil
}

// maxParams bounds the CSI parameters handed to the decoder.
const maxParams = 8

// parseEscape parses one sequence starting with ESC. It returns the number of
// bytes consumed (0 if the sequence is incomplete) and whether ev is valid.
func parseEscape(buf []byte) (n int, ev Event, ok bool) {
	if len(buf) < 2 {
		return 0, ev, false
	}
	if buf[1] != '[' {
		// Lone ESC followed by an ordinary byte.
		return 1, Event{Type: EventKey, Key: KeyEscape}, true
	}

	seq, _, n, state := ansi.DecodeSequence(buf, ansi.NormalState, nil)
	if state != ansi.NormalState {
		return 0, ev, false
	}
	// Oversized parameter lists are skipped without decoding.
	if bytes.Count(seq, []byte{';'})+bytes.Count(seq, []byte{':'}) >= maxParams {
		return n, ev, false
	}

	p := new(ansi.Parser)
	p.SetParamsSize(maxParams)
	p.SetDataSize(maxParams)
	ansi.DecodeSequence(seq, ansi.NormalState, p)
	cmd := ansi.Cmd(p.Command())

	switch {
	case cmd.Prefix() == 0 && cmd.Intermediate() == 0:
		switch cmd.Final() {
		case 'A':
			return n, Event{Type: EventKey, Key: KeyUp}, true
		case 'B':
			return n, Event{Type: EventKey, Key: KeyDown}, true
		case 'C':
			return n, Event{Type: EventKey, Key: KeyRight}, true
		case 'D':
			return n, Event{Type: EventKey, Key: KeyLeft}, true
		}
	case cmd.Prefix() == '<' && (cmd.Final() == 'M' || cmd.Final() == 'm'):
		ev, ok = sgrMouse(p, cmd.Final() == 'M')
		return n, ev, ok
	}
	return n, ev, false
}

// sgrMouse interprets the parameters of ESC [ < b ; col ; row (M|m).
func sgrMouse(p *ansi.Parser, press bool) (Event, bool) {
	var ev Event
	if len(p.Params()) != 3 {
		return ev, false
	}
	btn, _ := p.Param(0, 0)
	ev.Col, _ = p.Param(1, 1)
	ev.Row, _ = p.Param(2, 1)

	switch {
	case btn&64 != 0:
		// Wheel
		return ev, false
	case btn&32 != 0:
		ev.Type = EventPointerMove
		return ev, true
	case press && btn&3 == 0:
		ev.Type = EventPointerDown
		return ev, true
	}
	return ev, false
}

// keyForByte maps a single byte to a key. Arrows, WASD and the vim-style
// HJKL keys move; q or Ctrl-C quits.
func keyForByte(b byte) Key {
	switch b {
	case 'w', 'W', 'k', 'K':
		return KeyUp
	case 's', 'S', 'j', 'J':
		return KeyDown
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case ' ':
		return KeySpace
	case '\n', '\r':
		return KeyEnter
	case 'q', 'Q', 0x03:
		return KeyQuit
	}
	return KeyNone
}
