package toast

import (
	"time"
)

// Template names.
const (
	TemplateTaskComplete   = "taskComplete"
	TemplateErrorWithRetry = "errorWithRetry"
	TemplateNewMessage     = "newMessage"
)

// TemplateData fills a template. Fields a template does not use are
// ignored; nil callbacks produce actions that do nothing.
type TemplateData struct {
	TaskName    string
	Description string
	Message     string
	Details     string
	Sender      string
	Preview     string

	OnView     func()
	OnRetry    func()
	OnReport   func()
	OnReply    func()
	OnMarkRead func()
}

type template struct {
	title    string
	typ      string
	priority string
	duration time.Duration
	category string
	build    func(d TemplateData, now time.Time) (message, description string, actions []Action)
}

var templates = map[string]template{
	TemplateTaskComplete: {
		title:    "Task Complete",
		typ:      TypeSuccess,
		duration: 4 * time.Second,
		build: func(d TemplateData, _ time.Time) (string, string, []Action) {
			return "Successfully completed task: " + d.TaskName, d.Description,
				[]Action{{Label: "View Details", Run: d.OnView}}
		},
	},
	TemplateErrorWithRetry: {
		title:    "Error Occurred",
		typ:      TypeError,
		priority: "HIGH",
		duration: 8 * time.Second,
		build: func(d TemplateData, _ time.Time) (string, string, []Action) {
			return "Error: " + d.Message, d.Details,
				[]Action{{Label: "Retry", Run: d.OnRetry}, {Label: "Report", Run: d.OnReport}}
		},
	},
	TemplateNewMessage: {
		title:    "New Message",
		typ:      TypeInfo,
		duration: 5 * time.Second,
		category: "messages",
		build: func(d TemplateData, now time.Time) (string, string, []Action) {
			return d.Sender + ": " + d.Preview, "Received at " + now.Format(time.Kitchen),
				[]Action{{Label: "Reply", Run: d.OnReply}, {Label: "Mark as Read", Run: d.OnMarkRead}}
		},
	},
}

// TemplateNames lists the built-in templates.
func TemplateNames() []string {
	return []string{TemplateTaskComplete, TemplateErrorWithRetry, TemplateNewMessage}
}

// AddTemplate adds a notification from a named template. Templates request
// both sound and desktop alerts. An unknown name adds a plain INFO
// notification carrying data.Message.
func (m *Manager) AddTemplate(name string, data TemplateData) ID {
	t, ok := templates[name]
	if !ok {
		m.log.Debug().Str("template", name).Msg("unknown template, falling back to info")
		return m.Add(data.Message, WithType(TypeInfo))
	}
	msg, desc, actions := t.build(data, m.sched.Now())
	opts := []AddOption{
		WithType(t.typ),
		WithTitle(t.title),
		WithDescription(desc),
		WithActions(actions...),
		WithDuration(t.duration),
		WithCategory(t.category),
		WithAlerts(true, true),
	}
	if t.priority != "" {
		opts = append(opts, WithPriority(t.priority))
	}
	return m.Add(msg, opts...)
}
