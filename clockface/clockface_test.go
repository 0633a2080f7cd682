package clockface

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitFor(t *testing.T, f *Face, want string) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if f.Text() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Text = %q, want %q", f.Text(), want)
}

func TestTicksWithClock(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 9, 8, 4, 59, 0, time.Local))
	f := New(mock, time.Second)
	if f.Text() != "08:04:59" || f.Date() != "Mon Mar 9" {
		t.Fatalf("unexpected initial render %q %q", f.Text(), f.Date())
	}

	f.Start(context.Background())
	f.Start(context.Background())
	mock.Add(time.Second)
	waitFor(t, f, "08:05:00")
	mock.Add(time.Second)
	waitFor(t, f, "08:05:01")

	f.Stop()
	f.Stop()
	mock.Add(time.Second)
	time.Sleep(5 * time.Millisecond)
	if f.Text() != "08:05:01" {
		t.Errorf("stopped face kept ticking: %q", f.Text())
	}
}

func TestContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := New(clock.NewMock(), time.Second)
	f.Start(ctx)
	cancel()
	f.Stop()
}
