// Package alert turns notifications into sounds and desktop notifications.
package alert

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/toasty/internal/errmsg"
	"github.com/llehouerou/toasty/internal/notify"
	"github.com/llehouerou/toasty/internal/sound"
	"github.com/llehouerou/toasty/internal/toast"
)

// SoundPlayer plays the sound registered for a notification type.
type SoundPlayer interface {
	Play(typeKey string) error
}

// Dispatcher implements toast.Alerter. Alerts run on their own goroutine
// so a slow D-Bus call or sound decode never stalls the UI loop.
type Dispatcher struct {
	notifier notify.Notifier
	sound    SoundPlayer
	log      zerolog.Logger
	wg       sync.WaitGroup
}

var _ toast.Alerter = (*Dispatcher)(nil)

// New creates a dispatcher. Either collaborator may be nil.
func New(notifier notify.Notifier, player SoundPlayer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		sound:    player,
		log:      log.With().Str("component", "alert").Logger(),
	}
}

// Alert plays the type's sound and raises a desktop notification as asked.
func (d *Dispatcher) Alert(r toast.Record, playSound, desktop bool) {
	playSound = playSound && d.sound != nil
	desktop = desktop && d.notifier != nil
	if !playSound && !desktop {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.dispatch(r, playSound, desktop)
	}()
}

// Wait blocks until every dispatched alert has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(r toast.Record, playSound, desktop bool) {
	played := false
	if playSound {
		err := d.sound.Play(r.Type.Key)
		switch {
		case err == nil:
			played = true
		case errors.Is(err, sound.ErrNoSound):
			d.log.Debug().Str("type", r.Type.Key).Msg("no sound configured")
		default:
			d.log.Warn().Err(err).Stringer("id", r.ID).Msg(errmsg.Format(errmsg.OpSoundPlay, err))
		}
	}

	if desktop {
		n := Notification(r)
		n.SuppressSound = played
		if _, err := d.notifier.Notify(n); err != nil {
			d.log.Warn().Err(err).Stringer("id", r.ID).Msg(errmsg.Format(errmsg.OpDesktopNotify, err))
		}
	}
}

// Notification builds the desktop notification for a record.
func Notification(r toast.Record) notify.Notification {
	title := r.Style.Title
	body := r.Message
	if title == "" {
		title = displayName(r.Type.Key)
	}
	if r.Style.Description != "" {
		body += "\n" + r.Style.Description
	}

	var timeout time.Duration
	if r.Expires() {
		timeout = r.Duration
	}

	return notify.Notification{
		Summary:  title,
		Body:     body,
		Icon:     notify.IconFor(r.Type.Key),
		Category: r.Category,
		Timeout:  timeout,
		Urgency:  urgency(r.Priority),
	}
}

func urgency(p toast.Priority) notify.Urgency {
	switch p {
	case toast.PriorityUrgent:
		return notify.UrgencyCritical
	case toast.PriorityLow:
		return notify.UrgencyLow
	default:
		return notify.UrgencyNormal
	}
}

// displayName turns "SUCCESS" into "Success".
func displayName(key string) string {
	if key == "" {
		return "Notification"
	}
	lower := strings.ToLower(key)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
