package alert

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/toasty/internal/notify"
	"github.com/llehouerou/toasty/internal/sound"
	"github.com/llehouerou/toasty/internal/toast"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
	err  error
}

func (f *fakeNotifier) Notify(n notify.Notification) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	return uint32(len(f.sent)), f.err
}

type fakeSound struct {
	mu     sync.Mutex
	played []string
	err    error
}

func (f *fakeSound) Play(typeKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, typeKey)
	return f.err
}

func record(typeKey string, p toast.Priority, d time.Duration) toast.Record {
	return toast.Record{
		ID:       7,
		Message:  "Build finished",
		Type:     toast.Type{Key: typeKey},
		Priority: p,
		Duration: d,
	}
}

func TestAlertBoth(t *testing.T) {
	n, s := &fakeNotifier{}, &fakeSound{}
	d := New(n, s, zerolog.Nop())

	d.Alert(record(toast.TypeError, toast.PriorityHigh, 8*time.Second), true, true)
	d.Wait()

	assert.Equal(t, []string{toast.TypeError}, s.played)
	require.Len(t, n.sent, 1)
	got := n.sent[0]
	assert.Equal(t, "Error", got.Summary)
	assert.Equal(t, "Build finished", got.Body)
	assert.Equal(t, "dialog-error", got.Icon)
	assert.Equal(t, 8*time.Second, got.Timeout)
	assert.Equal(t, notify.UrgencyNormal, got.Urgency)
	assert.True(t, got.SuppressSound, "server sound should be suppressed when ours played")
}

func TestAlertSkipsDisabledChannels(t *testing.T) {
	n, s := &fakeNotifier{}, &fakeSound{}
	d := New(n, s, zerolog.Nop())

	d.Alert(record(toast.TypeInfo, toast.PriorityNormal, time.Second), false, false)
	d.Alert(record(toast.TypeInfo, toast.PriorityNormal, time.Second), true, false)
	d.Wait()

	assert.Len(t, s.played, 1)
	assert.Empty(t, n.sent)
}

func TestAlertNilCollaborators(t *testing.T) {
	d := New(nil, nil, zerolog.Nop())
	d.Alert(record(toast.TypeInfo, toast.PriorityUrgent, toast.Forever), true, true)
	d.Wait()
}

func TestAlertSoundFailureStillNotifies(t *testing.T) {
	for _, err := range []error{sound.ErrNoSound, errors.New("no audio device")} {
		n, s := &fakeNotifier{}, &fakeSound{err: err}
		d := New(n, s, zerolog.Nop())

		d.Alert(record(toast.TypeWarning, toast.PriorityUrgent, toast.Forever), true, true)
		d.Wait()

		require.Len(t, n.sent, 1, "err=%v", err)
		assert.False(t, n.sent[0].SuppressSound, "err=%v", err)
	}
}

func TestNotification(t *testing.T) {
	r := record("DEPLOY", toast.PriorityUrgent, toast.Forever)
	r.Style.Title = "Deploy"
	r.Style.Description = "prod-eu"
	r.Category = "messages"

	n := Notification(r)
	assert.Equal(t, "Deploy", n.Summary)
	assert.Equal(t, "Build finished\nprod-eu", n.Body)
	assert.Equal(t, "messages", n.Category)
	assert.Zero(t, n.Timeout)
	assert.Equal(t, notify.UrgencyCritical, n.Urgency)
	assert.Equal(t, "dialog-information", n.Icon)
}

func TestUrgency(t *testing.T) {
	tests := []struct {
		p    toast.Priority
		want notify.Urgency
	}{
		{toast.PriorityLow, notify.UrgencyLow},
		{toast.PriorityNormal, notify.UrgencyNormal},
		{toast.PriorityHigh, notify.UrgencyNormal},
		{toast.PriorityUrgent, notify.UrgencyCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, urgency(tt.p), tt.p.String())
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Success", displayName("SUCCESS"))
	assert.Equal(t, "Notification", displayName(""))
}
