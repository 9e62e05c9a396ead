package app

import (
	"time"

	"github.com/llehouerou/toasty/internal/toast"
)

type sample struct {
	message     string
	title       string
	description string
}

// samples are the demo notifications added from the keyboard, cycled per
// type.
var samples = map[string][]sample{
	toast.TypeSuccess: {
		{message: "Build **finished** in 42s"},
		{message: "Saved `config.toml`", title: "Settings"},
	},
	toast.TypeError: {
		{message: "Connection to `db-01` refused", description: "The server did not answer within 5 seconds."},
		{message: "Upload failed: _quota exceeded_"},
	},
	toast.TypeWarning: {
		{message: "Disk usage at *87%*", description: "Clean up old snapshots to free space."},
		{message: "Certificate expires in 3 days"},
	},
	toast.TypeInfo: {
		{message: "Version [1.4.0](https://example.com/releases) is available"},
		{message: "3 people are viewing this document"},
	},
}

func (m *Model) addSample(typeKey string) toast.ID {
	list := samples[typeKey]
	s := list[m.samples%len(list)]
	m.samples++

	opts := []toast.AddOption{toast.WithType(typeKey)}
	if s.title != "" {
		opts = append(opts, toast.WithTitle(s.title))
	}
	if s.description != "" {
		opts = append(opts, toast.WithDescription(s.description))
	}
	return m.Manager.Add(s.message, opts...)
}

func (m *Model) addUrgent() toast.ID {
	return m.Manager.Add("Battery critically low, plug in now",
		toast.WithType(toast.TypeWarning),
		toast.WithPriority("URGENT"),
		toast.WithTitle("Power"),
		toast.WithActions(toast.Action{Label: "Acknowledge", DismissOnClick: true}),
	)
}

// addTemplate adds the next built-in template. Its actions add follow-up
// notifications.
func (m *Model) addTemplate() toast.ID {
	names := toast.TemplateNames()
	name := names[m.template%len(names)]
	m.template++

	mgr := m.Manager
	follow := func(msg, typeKey string) func() {
		return func() {
			mgr.Add(msg, toast.WithType(typeKey), toast.WithDuration(2*time.Second))
		}
	}
	return mgr.AddTemplate(name, toast.TemplateData{
		TaskName:    "nightly backup",
		Description: "412 files, 1.3 GB",
		Message:     "could not reach deploy target",
		Details:     "dial tcp 10.0.0.12:22: i/o timeout",
		Sender:      "Alice",
		Preview:     "Are we still on for the review?",
		OnView:      follow("Opening backup report", toast.TypeInfo),
		OnRetry:     follow("Retrying deploy", toast.TypeInfo),
		OnReport:    follow("Issue reported", toast.TypeSuccess),
		OnReply:     follow("Reply sent", toast.TypeSuccess),
		OnMarkRead:  follow("Marked as read", toast.TypeInfo),
	})
}
