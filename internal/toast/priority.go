package toast

import (
	"strings"
	"time"
)

// Forever is the duration sentinel for a notification that never
// auto-dismisses.
const Forever time.Duration = 0

// inheritDuration marks a priority row that defers to the type's duration
// and then to the configured default.
const inheritDuration time.Duration = -1

// Priority controls default duration and alerting behaviour.
// The zero value is PriorityNormal.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityHigh
	PriorityUrgent
)

// PriorityLevel is one row of the priority table.
type PriorityLevel struct {
	Duration time.Duration // negative inherits from the type or the default
	Sound    bool
	Desktop  bool
}

var priorityTable = map[Priority]PriorityLevel{
	PriorityUrgent: {Duration: Forever, Sound: true, Desktop: true},
	PriorityHigh:   {Duration: 8 * time.Second, Sound: true, Desktop: true},
	PriorityNormal: {Duration: inheritDuration},
	PriorityLow:    {Duration: 3 * time.Second},
}

var priorityNames = map[Priority]string{
	PriorityUrgent: "URGENT",
	PriorityHigh:   "HIGH",
	PriorityNormal: "NORMAL",
	PriorityLow:    "LOW",
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "NORMAL"
}

// Level returns the priority's table row.
func (p Priority) Level() (PriorityLevel, bool) {
	lvl, ok := priorityTable[p]
	return lvl, ok
}

// ParsePriority looks up a priority name case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for p, name := range priorityNames {
		if name == key {
			return p, true
		}
	}
	return PriorityNormal, false
}
