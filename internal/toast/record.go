package toast

import (
	"maps"
	"strconv"
	"strings"
	"time"
)

// ID identifies a notification. IDs come from a per-manager sequence and
// are never reused; zero is never a valid ID.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Action is a button attached to a notification. The manager stores it and
// hands it back to the caller; it never inspects Run.
type Action struct {
	Label          string
	Run            func()
	Hint           string // renderer styling hint
	DismissOnClick bool
}

// Style carries the visual fields a renderer needs. Colors are free-form
// strings understood by the renderer.
type Style struct {
	Title       string
	Description string
	Background  string
	Foreground  string
	Border      string
	Actions     []Action
	Container   map[string]string
}

// over returns s with empty fields filled from base.
func (s Style) over(base Style) Style {
	out := s
	if out.Title == "" {
		out.Title = base.Title
	}
	if out.Description == "" {
		out.Description = base.Description
	}
	if out.Background == "" {
		out.Background = base.Background
	}
	if out.Foreground == "" {
		out.Foreground = base.Foreground
	}
	if out.Border == "" {
		out.Border = base.Border
	}
	if out.Actions != nil {
		out.Actions = append([]Action(nil), out.Actions...)
	}
	out.Container = maps.Clone(out.Container)
	return out
}

// Type is a notification category such as SUCCESS or ERROR.
type Type struct {
	Key             string
	Style           Style
	DefaultPriority Priority
	// Duration applies to NORMAL notifications of this type; nil uses the
	// registry default.
	Duration *time.Duration
}

// Animation is a cosmetic entrance hint for the renderer.
type Animation string

const (
	AnimationNone   Animation = ""
	AnimationFade   Animation = "fade"
	AnimationSlide  Animation = "slide"
	AnimationBounce Animation = "bounce"
	AnimationShake  Animation = "shake"
	AnimationFlash  Animation = "flash"
)

// Position is the screen anchor of the notification stack.
type Position string

const (
	TopRight     Position = "top-right"
	TopLeft      Position = "top-left"
	BottomRight  Position = "bottom-right"
	BottomLeft   Position = "bottom-left"
	TopCenter    Position = "top-center"
	BottomCenter Position = "bottom-center"
)

// ParsePosition returns the named anchor, or TopRight for anything unknown.
func ParsePosition(s string) Position {
	switch p := Position(strings.ToLower(strings.TrimSpace(s))); p {
	case TopRight, TopLeft, BottomRight, BottomLeft, TopCenter, BottomCenter:
		return p
	default:
		return TopRight
	}
}

// Top reports whether the anchor is on the upper edge.
func (p Position) Top() bool {
	return p == TopRight || p == TopLeft || p == TopCenter
}

// DismissReason records how a notification left the screen.
type DismissReason string

const (
	ReasonClosed  DismissReason = "closed"
	ReasonExpired DismissReason = "expired"
	ReasonSwiped  DismissReason = "swiped"
)

// Record is one notification. Only Expanded changes after creation.
type Record struct {
	ID        ID
	Message   string
	Type      Type
	Style     Style
	Duration  time.Duration
	Priority  Priority
	Sound     bool
	Desktop   bool
	Image     string
	Animation Animation
	Category  string
	CreatedAt time.Time
	Expanded  bool
	Count     int
}

// Expires reports whether the record auto-dismisses.
func (r Record) Expires() bool {
	return r.Duration != Forever
}
