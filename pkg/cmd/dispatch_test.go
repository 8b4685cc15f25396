package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/permission"
)

type fakeContext struct {
	kind     chat.Kind
	chatID   int64
	userID   int64
	username string
	admin    bool
	creator  bool
	text     string
	replies  []string
}

func (f *fakeContext) ChatKind() chat.Kind { return f.kind }
func (f *fakeContext) ChatID() int64       { return f.chatID }
func (f *fakeContext) UserID() int64       { return f.userID }
func (f *fakeContext) Username() string    { return f.username }
func (f *fakeContext) IsAdmin() bool       { return f.admin }
func (f *fakeContext) IsCreator() bool     { return f.creator }
func (f *fakeContext) Text() string        { return f.text }

func (f *fakeContext) Reply(text string) error {
	f.replies = append(f.replies, text)
	return nil
}

func newTestDispatcher(t *testing.T, cmds ...*Command) *Dispatcher {
	t.Helper()
	reg := NewRegistry()
	for _, c := range cmds {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register(/%s): %v", c.Name(), err)
		}
	}
	return NewDispatcher(reg, "ThisBot")
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input  string
		name   string
		target string
		rest   string
		ok     bool
	}{
		{"/start", "start", "", "", true},
		{"/start@ThisBot", "start", "ThisBot", "", true},
		{"/name Bob --flag", "name", "", "Bob --flag", true},
		{"/name@OtherBot  Bob ", "name", "OtherBot", "Bob", true},
		{"  /start  ", "start", "", "", true},
		{"hello there", "", "", "", false},
		{"/", "", "", "", false},
		{"/@ThisBot", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, target, rest, ok := SplitCommand(tt.input)
			if name != tt.name || target != tt.target || rest != tt.rest || ok != tt.ok {
				t.Errorf("SplitCommand(%q) = (%q, %q, %q, %v), want (%q, %q, %q, %v)",
					tt.input, name, target, rest, ok, tt.name, tt.target, tt.rest, tt.ok)
			}
		})
	}
}

func TestDispatchTargetFilter(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		target  Target
		wantRun bool
	}{
		{"no suffix with default target", "/start", 0, true},
		{"self suffix with default target", "/start@ThisBot", 0, true},
		{"self suffix case-insensitive", "/start@thisbot", 0, true},
		{"other bot with default target", "/start@OtherBot", 0, false},
		{"other bot with TargetAny", "/start@OtherBot", TargetAny, true},
		{"no suffix with self-only target", "/start", TargetSelf, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := false
			d := newTestDispatcher(t, &Command{
				Names:       []string{"start"},
				Description: "starts",
				Target:      tt.target,
				Handler: func(ctx chat.Context, args argparse.Values) error {
					ran = true
					return nil
				},
			})

			if err := d.Dispatch(&fakeContext{text: tt.text}); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if ran != tt.wantRun {
				t.Errorf("handler ran = %v, want %v", ran, tt.wantRun)
			}
		})
	}
}

func TestDispatchPermissionDenied(t *testing.T) {
	d := newTestDispatcher(t, &Command{
		Names:       []string{"secret"},
		Description: "admins only",
		Permission:  permission.Nobody,
		Handler: func(ctx chat.Context, args argparse.Values) error {
			t.Error("handler must not run for a denied actor")
			return nil
		},
	})

	ctx := &fakeContext{text: "/secret"}
	if err := d.Dispatch(ctx); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(ctx.replies) != 0 {
		t.Errorf("default denial should be silent, got replies %q", ctx.replies)
	}
}

func TestDispatchValidationReply(t *testing.T) {
	d := newTestDispatcher(t, &Command{
		Names:       []string{"age"},
		Description: "sets the age",
		Arguments: []argparse.Argument{
			{Names: []string{"age"}, Type: argparse.TypeInt, Description: "the age", Example: "25"},
		},
		Handler: func(ctx chat.Context, args argparse.Values) error {
			t.Error("handler must not run on a validation error")
			return nil
		},
	})

	ctx := &fakeContext{text: "/age abc"}
	if err := d.Dispatch(ctx); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(ctx.replies) != 1 {
		t.Fatalf("replies = %q, want exactly one", ctx.replies)
	}
	reply := ctx.replies[0]
	if !strings.Contains(reply, "abc") {
		t.Errorf("reply should name the bad value, got %q", reply)
	}
	if !strings.Contains(reply, "/age") || !strings.Contains(reply, "Arguments:") {
		t.Errorf("reply should embed the help block, got %q", reply)
	}
}

func TestDispatchExecutionError(t *testing.T) {
	boom := errors.New("boom")
	d := newTestDispatcher(t, &Command{
		Names:       []string{"crash"},
		Description: "always fails",
		Handler: func(ctx chat.Context, args argparse.Values) error {
			return boom
		},
	})

	ctx := &fakeContext{text: "/crash"}
	if err := d.Dispatch(ctx); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(ctx.replies) != 1 || ctx.replies[0] != executionText {
		t.Errorf("replies = %q, want the generic execution notice", ctx.replies)
	}

	t.Run("print error", func(t *testing.T) {
		d.ErrorHandler = &DefaultErrorHandler{PrintError: true}
		ctx := &fakeContext{text: "/crash"}
		if err := d.Dispatch(ctx); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if len(ctx.replies) != 1 || !strings.Contains(ctx.replies[0], "boom") {
			t.Errorf("replies = %q, want the raw error", ctx.replies)
		}
	})
}

func TestDispatchUnknownCommand(t *testing.T) {
	known := &Command{
		Names:       []string{"start"},
		Description: "starts",
		Handler:     func(ctx chat.Context, args argparse.Values) error { return nil },
	}

	t.Run("ignored without catch-all", func(t *testing.T) {
		d := newTestDispatcher(t, known)
		ctx := &fakeContext{text: "/bogus"}
		if err := d.Dispatch(ctx); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if len(ctx.replies) != 0 {
			t.Errorf("replies = %q, want none", ctx.replies)
		}
	})

	t.Run("catch-all runs", func(t *testing.T) {
		d := newTestDispatcher(t, known)
		caught := false
		d.CatchAll = func(ctx chat.Context, args argparse.Values) error {
			caught = true
			return nil
		}
		if err := d.Dispatch(&fakeContext{text: "/bogus"}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if !caught {
			t.Error("catch-all did not run")
		}
	})

	t.Run("addressed to another bot is ignored", func(t *testing.T) {
		d := newTestDispatcher(t, known)
		caught := false
		d.CatchAll = func(ctx chat.Context, args argparse.Values) error {
			caught = true
			return nil
		}
		if err := d.Dispatch(&fakeContext{text: "/bogus@OtherBot"}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if caught {
			t.Error("catch-all must not run for another bot's command")
		}
	})

	t.Run("plain text is not a command", func(t *testing.T) {
		d := newTestDispatcher(t, known)
		d.CatchAll = func(ctx chat.Context, args argparse.Values) error {
			t.Error("catch-all must not run for plain text")
			return nil
		}
		if err := d.Dispatch(&fakeContext{text: "hello"}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	})
}

// overrideHandler claims only the failure paths its flags enable.
type overrideHandler struct {
	denials    bool
	executions bool
	denied     int
	executed   int
}

func (h *overrideHandler) OnPermissionDenied(ctx chat.Context, c *Command) bool {
	h.denied++
	return h.denials
}

func (h *overrideHandler) OnValidationError(ctx chat.Context, c *Command, err error) bool {
	return false
}

func (h *overrideHandler) OnExecutionError(ctx chat.Context, c *Command, err error) bool {
	h.executed++
	return h.executions
}

func TestDispatchErrorHandlerChain(t *testing.T) {
	t.Run("command override wins", func(t *testing.T) {
		override := &overrideHandler{denials: true}
		d := newTestDispatcher(t, &Command{
			Names:        []string{"secret"},
			Description:  "locked",
			Permission:   permission.Nobody,
			ErrorHandler: override,
			Handler:      func(ctx chat.Context, args argparse.Values) error { return nil },
		})
		d.ErrorHandler = &DefaultErrorHandler{SilentDenial: false}

		ctx := &fakeContext{text: "/secret"}
		if err := d.Dispatch(ctx); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if override.denied != 1 {
			t.Errorf("override consulted %d times, want 1", override.denied)
		}
		if len(ctx.replies) != 0 {
			t.Errorf("dispatcher handler ran despite the override, replies %q", ctx.replies)
		}
	})

	t.Run("refusal falls through to the next handler", func(t *testing.T) {
		override := &overrideHandler{}
		d := newTestDispatcher(t, &Command{
			Names:        []string{"secret"},
			Description:  "locked",
			Permission:   permission.Nobody,
			ErrorHandler: override,
			Handler:      func(ctx chat.Context, args argparse.Values) error { return nil },
		})
		d.ErrorHandler = &DefaultErrorHandler{SilentDenial: false}

		ctx := &fakeContext{text: "/secret"}
		if err := d.Dispatch(ctx); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if override.denied != 1 {
			t.Errorf("override consulted %d times, want 1", override.denied)
		}
		if len(ctx.replies) != 1 || ctx.replies[0] != deniedText {
			t.Errorf("replies = %q, want the denial notice from the next handler", ctx.replies)
		}
	})

	t.Run("refused execution error reaches the default", func(t *testing.T) {
		boom := errors.New("boom")
		override := &overrideHandler{}
		d := newTestDispatcher(t, &Command{
			Names:        []string{"crash"},
			Description:  "fails",
			ErrorHandler: override,
			Handler:      func(ctx chat.Context, args argparse.Values) error { return boom },
		})
		d.ErrorHandler = override

		ctx := &fakeContext{text: "/crash"}
		if err := d.Dispatch(ctx); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if override.executed != 2 {
			t.Errorf("override consulted %d times, want 2 (command slot and dispatcher slot)", override.executed)
		}
		if len(ctx.replies) != 1 || ctx.replies[0] != executionText {
			t.Errorf("replies = %q, want the default execution notice", ctx.replies)
		}
	})
}
