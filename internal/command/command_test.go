package command

import (
	"errors"
	"testing"

	"github.com/inconshreveable/log15"

	"queue/internal/storage"
)

func newHandler() *Handler {
	logger := log15.New("service", "test")
	logger.SetHandler(log15.DiscardHandler())
	return NewHandler(storage.NewStore(), logger)
}

func TestExecuteScript(t *testing.T) {
	h := newHandler()

	// A full session: build, transform, inspect.
	for _, step := range []struct {
		line string
		want string
	}{
		{"new q", "OK"},
		{"it q banana", "OK"},
		{"it q apple", "OK"},
		{"ih q cherry", "OK"},
		{"size q", "3"},
		{"show q", "[cherry banana apple]"},
		{"sort q", "OK"},
		{"show q", "[apple banana cherry]"},
		{"reverse q", "OK"},
		{"show q", "[cherry banana apple]"},
		{"swap q", "OK"},
		{"show q", "[banana cherry apple]"},
		{"rh q", "banana"},
		{"rt q", "apple"},
		{"dmid q", "OK"},
		{"size q", "0"},
		{"queues", "[q]"},
		{"free q", "OK"},
		{"queues", "[]"},
	} {
		got, err := h.Execute(step.line)
		if err != nil {
			t.Fatalf("%q: unexpected err: %v", step.line, err)
		}
		if got != step.want {
			t.Fatalf("%q: wanted %q; found %q", step.line, step.want, got)
		}
	}
}

func TestExecuteDedup(t *testing.T) {
	h := newHandler()
	for _, line := range []string{
		"new q", "it q 1", "it q 1", "it q 2",
		"it q 3", "it q 3", "it q 3", "it q 4",
		"dedup q",
	} {
		if _, err := h.Execute(line); err != nil {
			t.Fatalf("%q: unexpected err: %v", line, err)
		}
	}
	got, err := h.Execute("show q")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "[2 4]" {
		t.Fatalf("wanted %q; found %q", "[2 4]", got)
	}
}

func TestExecuteErrors(t *testing.T) {
	h := newHandler()

	for _, tc := range []struct {
		name string
		line string
		want error
	}{
		{name: "unknown-queue", line: "ih missing v", want: storage.ErrQueueNotFound},
		{name: "remove-missing", line: "rh missing", want: storage.ErrQueueNotFound},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := h.Execute(tc.line); !errors.Is(err, tc.want) {
				t.Fatalf("wanted %v; found %v", tc.want, err)
			}
		})
	}

	t.Run("wrong-arity", func(t *testing.T) {
		if _, err := h.Execute("ih onlyqueue"); err == nil {
			t.Fatal("wanted arity error; found nil")
		}
	})

	t.Run("unknown-command", func(t *testing.T) {
		if _, err := h.Execute("bogus q"); err == nil {
			t.Fatal("wanted unknown command error; found nil")
		}
	})

	t.Run("blank-line", func(t *testing.T) {
		got, err := h.Execute("   ")
		if err != nil || got != "" {
			t.Fatalf("wanted empty reply; found %q (err %v)", got, err)
		}
	})
}

func TestIsWriteCommand(t *testing.T) {
	for cmd, want := range map[string]bool{
		"IH":     true,
		"SORT":   true,
		"SIZE":   false,
		"SHOW":   false,
		"QUEUES": false,
	} {
		if got := IsWriteCommand(cmd); got != want {
			t.Fatalf("%s: wanted %v; found %v", cmd, want, got)
		}
	}
}
