package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	events, rest := Parse([]byte("wasd \rq\x03x"), false)
	want := []Key{KeyUp, KeyLeft, KeyDown, KeyRight, KeySpace, KeyEnter, KeyQuit, KeyQuit}
	if len(rest) != 0 {
		t.Fatalf("unexpected leftover %q", rest)
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, k := range want {
		if events[i].Type != EventKey || events[i].Key != k {
			t.Errorf("event %d = %+v, want key %v", i, events[i], k)
		}
	}
}

func TestParseArrows(t *testing.T) {
	events, _ := Parse([]byte("\x1b[A\x1b[B\x1b[C\x1b[D"), false)
	want := []Key{KeyUp, KeyDown, KeyRight, KeyLeft}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, k := range want {
		if events[i].Key != k {
			t.Errorf("arrow %d = %v, want %v", i, events[i].Key, k)
		}
	}
}

func TestParseSGRMouse(t *testing.T) {
	events, _ := Parse([]byte("\x1b[<0;12;7M\x1b[<0;12;7m\x1b[<35;20;9M\x1b[<64;1;1M"), false)
	if len(events) != 2 {
		t.Fatalf("got %d events, want press + move: %+v", len(events), events)
	}
	if events[0].Type != EventPointerDown || events[0].Col != 12 || events[0].Row != 7 {
		t.Errorf("press = %+v", events[0])
	}
	if events[1].Type != EventPointerMove || events[1].Col != 20 || events[1].Row != 9 {
		t.Errorf("move = %+v", events[1])
	}
}

func TestParseSkipsUnknownAndOversizedSequences(t *testing.T) {
	long := "\x1b[<" + strings.Repeat("1;", 40) + "1M"
	events, rest := Parse([]byte("\x1b[2J"+long+"\x1b[?25hw"), false)
	if len(rest) != 0 {
		t.Fatalf("unexpected leftover %q", rest)
	}
	if len(events) != 1 || events[0].Key != KeyUp {
		t.Errorf("events = %+v, want only the trailing key", events)
	}
}

func TestParseSplitSequence(t *testing.T) {
	events, rest := Parse([]byte("w\x1b[<0;5"), false)
	if len(events) != 1 || events[0].Key != KeyUp {
		t.Fatalf("events before split = %+v", events)
	}
	if string(rest) != "\x1b[<0;5" {
		t.Fatalf("rest = %q", rest)
	}

	events, rest = Parse(append(rest, []byte(";6M")...), false)
	if len(rest) != 0 || len(events) != 1 || events[0].Type != EventPointerDown {
		t.Fatalf("completed sequence = %+v rest %q", events, rest)
	}
	if events[0].Col != 5 || events[0].Row != 6 {
		t.Errorf("pointer at (%d,%d), want (5,6)", events[0].Col, events[0].Row)
	}
}

func TestParseFlushLoneEscape(t *testing.T) {
	events, rest := Parse([]byte("\x1b"), true)
	if len(rest) != 0 || len(events) != 1 || events[0].Key != KeyEscape {
		t.Errorf("flushed ESC = %+v rest %q", events, rest)
	}
}

func TestStreamReadEvents(t *testing.T) {
	pr, pw := io.Pipe()
	s := StartStream(bufio.NewReader(pr))

	go func() {
		_, _ = pw.Write([]byte("d\x1b[C"))
		_ = pw.Close()
	}()

	var keys []Key
	deadline := time.Now().Add(2 * time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		for _, ev := range ReadEvents(s) {
			keys = append(keys, ev.Key)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !s.Closed() {
		t.Fatal("stream should report closed after EOF")
	}
	if strings.Count(keyString(keys), "R") != 2 {
		t.Errorf("keys = %v, want two KeyRight", keys)
	}
}

func keyString(keys []Key) string {
	var b strings.Builder
	for _, k := range keys {
		if k == KeyRight {
			b.WriteByte('R')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
