package loop

import (
	"testing"
	"time"
)

func TestSpawnerIdempotent(t *testing.T) {
	s := NewSpawner(time.Hour)
	if s.C() != nil || s.Running() {
		t.Fatal("new spawner should be stopped with a nil channel")
	}

	s.Start()
	ch := s.C()
	if ch == nil || !s.Running() {
		t.Fatal("started spawner should have a channel")
	}
	s.Start()
	if s.C() != ch {
		t.Error("second Start replaced the ticker")
	}

	s.Stop()
	s.Stop()
	if s.C() != nil || s.Running() {
		t.Error("stopped spawner should have a nil channel")
	}
}

func TestSpawnerTicks(t *testing.T) {
	s := NewSpawner(5 * time.Millisecond)
	s.Start()
	defer s.Stop()

	select {
	case <-s.C():
	case <-time.After(2 * time.Second):
		t.Fatal("spawner never ticked")
	}
}

func TestStoppedSpawnerNeverFires(t *testing.T) {
	s := NewSpawner(time.Millisecond)
	s.Start()
	s.Stop()

	select {
	case <-s.C():
		t.Fatal("stopped spawner fired")
	case <-time.After(20 * time.Millisecond):
	}
}
