package toast

import (
	"maps"
	"strings"
	"time"
)

// Built-in type keys.
const (
	TypeSuccess = "SUCCESS"
	TypeError   = "ERROR"
	TypeWarning = "WARNING"
	TypeInfo    = "INFO"
)

var builtinTypes = map[string]Type{
	TypeSuccess: {
		Key:             TypeSuccess,
		Style:           Style{Background: "#12351f", Foreground: "#42b883", Border: "#2e7d52"},
		DefaultPriority: PriorityNormal,
	},
	TypeError: {
		Key:             TypeError,
		Style:           Style{Background: "#3a1414", Foreground: "#ff5555", Border: "#a33b3b"},
		DefaultPriority: PriorityHigh,
	},
	TypeWarning: {
		Key:             TypeWarning,
		Style:           Style{Background: "#3a2c08", Foreground: "#f1a208", Border: "#a87206"},
		DefaultPriority: PriorityNormal,
	},
	TypeInfo: {
		Key:             TypeInfo,
		Style:           Style{Background: "#10263d", Foreground: "#5fa8ff", Border: "#3a6ea5"},
		DefaultPriority: PriorityLow,
	},
}

// BuiltinTypes returns a copy of the built-in type table.
func BuiltinTypes() map[string]Type {
	return maps.Clone(builtinTypes)
}

// Request is the caller's side of a resolution.
type Request struct {
	Type     string
	Priority string
	Duration *time.Duration
	Style    Style
}

// Resolution is a fully resolved notification category.
type Resolution struct {
	Type     Type
	Style    Style
	Priority Priority
	Duration time.Duration
	Sound    bool
	Desktop  bool
}

// Registry is the merged type table. It is built once and never mutated.
type Registry struct {
	types           map[string]Type
	defaultDuration time.Duration
}

// NewRegistry merges custom types over the built-ins. Keys are matched
// case-insensitively; a custom type with an existing key replaces it.
func NewRegistry(custom map[string]Type, defaultDuration time.Duration) *Registry {
	types := BuiltinTypes()
	for key, t := range custom {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		t.Key = k
		types[k] = t
	}
	return &Registry{types: types, defaultDuration: defaultDuration}
}

// Type looks up a type by key, falling back to INFO.
func (r *Registry) Type(key string) Type {
	if t, ok := r.types[strings.ToUpper(strings.TrimSpace(key))]; ok {
		return t
	}
	return r.types[TypeInfo]
}

// Keys returns every registered type key.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.types))
	for k := range r.types {
		keys = append(keys, k)
	}
	return keys
}

// Resolve turns a request into concrete style, duration and alert flags.
// Unknown type or priority keys fall back to defaults; it never fails.
//
// Duration order: explicit request value, then the priority table, then
// the type's duration, then the registry default. Only NORMAL defers past
// the priority table. A zero duration means Forever.
func (r *Registry) Resolve(req Request) Resolution {
	t := r.Type(req.Type)

	prio := t.DefaultPriority
	if p, ok := ParsePriority(req.Priority); ok {
		prio = p
	}

	res := Resolution{
		Type:     t,
		Style:    req.Style.over(t.Style),
		Priority: prio,
		Duration: inheritDuration,
	}

	lvl, ok := prio.Level()
	if ok {
		res.Sound = lvl.Sound
		res.Desktop = lvl.Desktop
		res.Duration = lvl.Duration
	}
	if res.Duration < 0 && t.Duration != nil && *t.Duration >= 0 {
		res.Duration = *t.Duration
	}
	if req.Duration != nil && *req.Duration >= 0 {
		res.Duration = *req.Duration
	}
	if res.Duration < 0 {
		res.Duration = r.defaultDuration
	}
	return res
}
