package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/julianstephens/anchor/internal/session"
	"github.com/julianstephens/anchor/internal/storage"
)

func TestFormat(t *testing.T) {
	incomplete := fmt.Errorf("%w (1 of 3 done)", session.ErrIncomplete)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "store not initialized",
			err:  storage.ErrNotInitialized,
			want: "Error: storage not initialized, run 'anchor init' first",
		},
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("failed to load store: %w", storage.ErrNotInitialized),
			want: "Error: failed to load store: storage not initialized, run 'anchor init' first",
		},
		{
			name: "hinted submit error",
			err:  WithHint(incomplete, "check off the remaining actions with 'anchor toggle <id>'"),
			want: "Error: complete every suggested action before submitting (1 of 3 done)\n" +
				"Hint: check off the remaining actions with 'anchor toggle <id>'",
		},
		{
			name: "hint behind a wrap",
			err:  fmt.Errorf("submit: %w", WithHint(session.ErrWrongStage, "run 'anchor insight'")),
			want: "Error: submit: today's actions have already been submitted\nHint: run 'anchor insight'",
		},
		{
			name: "empty hint is omitted",
			err:  WithHint(session.ErrClosed, ""),
			want: "Error: session is closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithHint(t *testing.T) {
	err := WithHint(session.ErrIncomplete, "toggle the rest")
	if !errors.Is(err, session.ErrIncomplete) {
		t.Error("hinted error does not unwrap to its cause")
	}
	var h *HintError
	if !errors.As(err, &h) || h.Hint != "toggle the rest" {
		t.Errorf("errors.As() hint = %+v", h)
	}
	if WithHint(nil, "ignored") != nil {
		t.Error("WithHint(nil) should be nil")
	}
}

// Fatal exits the process, so it runs in a re-exec of the test binary.
func TestFatal(t *testing.T) {
	if os.Getenv("ANCHOR_TEST_FATAL") == "1" {
		Fatal(WithHint(storage.ErrNotInitialized, "run 'anchor init --force' to recreate it"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "ANCHOR_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Fatal() did not exit with an error: %v", err)
	}
	if code := exitErr.ExitCode(); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	for _, want := range []string{"Error: storage not initialized", "Hint: run 'anchor init --force'"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr = %q, want it to contain %q", stderr.String(), want)
		}
	}
}

func TestFatal_Nil(t *testing.T) {
	// returns normally
	Fatal(nil)
}
