package keymap

import (
	"slices"
	"testing"
)

func TestAllBindingsHaveKeysAndContext(t *testing.T) {
	valid := []string{"global", "toast", "history"}
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		if !slices.Contains(valid, b.Context) {
			t.Errorf("binding %q has unknown context %q", b.Action, b.Context)
		}
	}
}

func TestMainViewKeysAreUnique(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		if b.Context == "history" {
			continue
		}
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestByContext(t *testing.T) {
	toast := ByContext("toast")
	if len(toast) != 5 {
		t.Errorf("ByContext(toast) returned %d bindings, want 5", len(toast))
	}
	if len(ByContext("nonexistent")) != 0 {
		t.Error("unknown context should have no bindings")
	}
}

func TestHelp(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionHelp, nil, "Nothing", "global"},
	}
	help := Help(bindings)
	if len(help) != 1 {
		t.Fatalf("Help() returned %d bindings, want 1", len(help))
	}
	if got := help[0].Help(); got.Key != "q" || got.Desc != "Quit" {
		t.Errorf("help = %+v", got)
	}
	if !slices.Equal(help[0].Keys(), []string{"q", "ctrl+c"}) {
		t.Errorf("keys = %v", help[0].Keys())
	}
}
