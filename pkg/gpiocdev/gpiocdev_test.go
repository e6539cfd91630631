package gpiocdev

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/edwincroissant/simplehx711/pkg/hx711"
)

func TestClosed(t *testing.T) {
	p := &Pins{}
	if err := p.SetClock(true); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, err := p.Clock(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, err := p.Data(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if err := p.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestOpenBadChip(t *testing.T) {
	if _, err := Open("no-such-gpiochip", 0, 1); err == nil {
		t.Error("expected error")
	}
}

// TestPollHardware needs a chip wired to a real gpiochip and is
// skipped by default.
func TestPollHardware(t *testing.T) {
	chip := os.Getenv("TEST_GPIOCHIP")
	if chip == "" {
		t.Skip("set 'TEST_GPIOCHIP' in environment to run this test")
	}

	p, err := Open(chip, 5, 6)
	if err != nil {
		t.Fatalf("failed to open %s: %v", chip, err)
	}
	t.Cleanup(func() {
		if err = p.Close(); err != nil {
			t.Errorf("failed to close: %v", err)
		}
	})

	d := hx711.New(p, hx711.DefaultConfig())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		done, err := d.Poll()
		if err != nil {
			t.Fatalf("poll failed: %v", err)
		}
		if done && d.Status() == hx711.StatusValid {
			t.Logf("raw: %d, smoothed: %d", d.Raw(false), d.Raw(true))
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no valid reading before deadline, status: %s", d.Status())
}
