package confirm

import (
	"testing"

	"github.com/llehouerou/toasty/internal/ui/testutil"
)

func TestAnswers(t *testing.T) {
	tests := []struct {
		key      string
		wantDone bool
		wantYes  bool
	}{
		{"enter", true, true},
		{"y", true, true},
		{"Y", true, true},
		{"esc", true, false},
		{"n", true, false},
		{"N", true, false},
		{"x", false, false},
		{"j", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var m Model
			m.Ask("Clear?")
			done, yes := m.Update(testutil.Key(tt.key))
			if done != tt.wantDone || yes != tt.wantYes {
				t.Errorf("Update(%q) = (%v, %v), want (%v, %v)", tt.key, done, yes, tt.wantDone, tt.wantYes)
			}
			if m.Active() == done {
				t.Errorf("Active() = %v after done = %v", m.Active(), done)
			}
		})
	}
}

func TestInactiveIgnoresKeys(t *testing.T) {
	var m Model
	if done, _ := m.Update(testutil.Key("y")); done {
		t.Error("inactive prompt should not close")
	}
	if m.View() != "" {
		t.Errorf("View() = %q, want empty", m.View())
	}
}

func TestView(t *testing.T) {
	var m Model
	m.Ask("Clear all history?")
	got := testutil.StripANSI(m.View())
	if want := "Clear all history? enter/y confirm · esc/n cancel"; got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}
