package bindings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/keytap/input"
	"github.com/dshills/keytap/key"
)

const sampleFile = `
[[binding]]
key = "F1"
action = "help"
on = "press"

[[binding]]
key = "escape"
action = "quit"

[[binding]]
key = "40000"
action = "custom"
on = "release"
`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 bindings, got %d", set.Len())
	}

	got := set.Bindings()
	want := []Binding{
		{Code: key.F1, Action: "help", On: input.NotifyPress},
		{Code: key.Escape, Action: "quit", On: input.NotifyBoth},
		{Code: 40000, Action: "custom", On: input.NotifyRelease},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("binding %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			"unknown key",
			"[[binding]]\nkey = \"nosuchkey\"\naction = \"x\"\n",
			ErrUnknownKey,
		},
		{
			"empty key",
			"[[binding]]\nkey = \"\"\naction = \"x\"\n",
			ErrUnknownKey,
		},
		{
			"missing action",
			"[[binding]]\nkey = \"A\"\n",
			ErrMissingAction,
		},
		{
			"bad on",
			"[[binding]]\nkey = \"A\"\naction = \"x\"\non = \"hold\"\n",
			ErrInvalidOn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParse_MalformedTOML(t *testing.T) {
	if _, err := Parse([]byte("[[binding")); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveKey_DigitNamesBeforeRawCodes(t *testing.T) {
	// Single digits are key-table names, not raw codes.
	c, err := resolveKey("1")
	if err != nil || c != key.Digit1 {
		t.Errorf("resolveKey(1) = %v, %v; want Digit1", c, err)
	}

	c, err = resolveKey("65")
	if err != nil || c != key.Code(65) {
		t.Errorf("resolveKey(65) = %v, %v; want raw 65", c, err)
	}
}

// newBoundRegistry returns a subscribed registry on a fresh emitter.
func newBoundRegistry(t *testing.T) (*input.Registry, *input.Emitter) {
	t.Helper()

	em := input.NewEmitter()
	reg := input.NewRegistry(input.WithSurface(em))
	if err := reg.Subscribe(); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	return reg, em
}

func TestBinder_ApplyRoutesActions(t *testing.T) {
	reg, em := newBoundRegistry(t)

	var actions []string
	binder := NewBinder(reg, func(a string) { actions = append(actions, a) })

	set, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	binder.Apply(set)
	if binder.Count() != 3 {
		t.Fatalf("expected 3 applied, got %d", binder.Count())
	}

	em.EmitPress(key.F1)
	em.EmitRelease(key.F1) // press-only binding, no action
	em.EmitPress(key.Escape)
	em.EmitRelease(key.Escape)
	em.EmitPress(40000)
	em.EmitRelease(40000) // release-only binding

	want := []string{"help", "quit", "quit", "custom"}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("action %d = %q, want %q", i, actions[i], want[i])
		}
	}
}

func TestBinder_ApplyReplacesPreviousSet(t *testing.T) {
	reg, em := newBoundRegistry(t)

	var actions []string
	binder := NewBinder(reg, func(a string) { actions = append(actions, a) })

	first, err := Parse([]byte("[[binding]]\nkey = \"A\"\naction = \"old\"\non = \"press\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	binder.Apply(first)

	second, err := Parse([]byte("[[binding]]\nkey = \"A\"\naction = \"new\"\non = \"press\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	binder.Apply(second)

	em.EmitPress(key.A)

	if len(actions) != 1 || actions[0] != "new" {
		t.Errorf("actions = %v, want [new]", actions)
	}
}

func TestBinder_ClearLeavesDirectListeners(t *testing.T) {
	reg, em := newBoundRegistry(t)

	direct := 0
	reg.AddListener(func() { direct++ }, key.A, input.NotifyPress)

	binder := NewBinder(reg, func(string) { t.Error("cleared binding fired") })
	set, err := Parse([]byte("[[binding]]\nkey = \"A\"\naction = \"x\"\non = \"press\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	binder.Apply(set)
	binder.Clear()

	em.EmitPress(key.A)

	if direct != 1 {
		t.Errorf("expected direct listener to survive, got %d", direct)
	}
	if binder.Count() != 0 {
		t.Errorf("expected no applied bindings, got %d", binder.Count())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	reg, em := newBoundRegistry(t)

	actions := make(chan string, 8)
	binder := NewBinder(reg, func(a string) { actions <- a })

	path := filepath.Join(t.TempDir(), "bindings.toml")
	writeFile(t, path, "[[binding]]\nkey = \"A\"\naction = \"first\"\non = \"press\"\n")

	w, err := Watch(path, binder)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "[[binding]]\nkey = \"A\"\naction = \"second\"\non = \"press\"\n")

	// Reload is asynchronous; poll until the new action takes over.
	deadline := time.After(5 * time.Second)
	for {
		em.EmitPress(key.A)
		em.EmitRelease(key.A)

		select {
		case a := <-actions:
			if a == "second" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcher_KeepsSetOnBrokenReload(t *testing.T) {
	reg, em := newBoundRegistry(t)

	actions := make(chan string, 8)
	binder := NewBinder(reg, func(a string) { actions <- a })

	path := filepath.Join(t.TempDir(), "bindings.toml")
	writeFile(t, path, "[[binding]]\nkey = \"A\"\naction = \"good\"\non = \"press\"\n")

	w, err := Watch(path, binder)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "[[binding\n")

	// Give the watcher a moment to observe the broken write, then
	// confirm the old set is still applied.
	time.Sleep(300 * time.Millisecond)

	em.EmitPress(key.A)
	select {
	case a := <-actions:
		if a != "good" {
			t.Errorf("action = %q, want good", a)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected previous set to stay active")
	}
}

func TestWatch_RejectsBrokenInitialFile(t *testing.T) {
	reg, _ := newBoundRegistry(t)
	binder := NewBinder(reg, func(string) {})

	path := filepath.Join(t.TempDir(), "bindings.toml")
	writeFile(t, path, "[[binding\n")

	if _, err := Watch(path, binder); err == nil {
		t.Error("expected error for broken initial file")
	}
}
