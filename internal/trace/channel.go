package trace

import (
	"os"
	"path"
	"strings"
)

// ChannelPattern is a comma-separated list of glob patterns selecting
// which named channels are active, matching the original runtime's
// RECORDER_TRACES convention (spec §6's DB48X_TRACES env var and
// -t<pattern> flag: e.g. "gc,eval*" or "*" for everything).
type ChannelPattern struct {
	patterns []string
}

// ParseChannelPattern splits a comma-separated pattern list. An empty
// string matches nothing; "*" matches every channel.
func ParseChannelPattern(s string) ChannelPattern {
	if s == "" {
		return ChannelPattern{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return ChannelPattern{patterns: out}
}

// ChannelPatternFromEnv reads DB48X_TRACES, falling back to flagValue
// (the -t<pattern> flag) when the environment variable is unset or empty, per
// spec §6 ("DB48X_TRACES sets the recorder trace pattern at startup").
func ChannelPatternFromEnv(flagValue string) ChannelPattern {
	if v, ok := os.LookupEnv("DB48X_TRACES"); ok && v != "" {
		return ParseChannelPattern(v)
	}
	return ParseChannelPattern(flagValue)
}

// Enabled reports whether channel matches any of the configured glob
// patterns.
func (cp ChannelPattern) Enabled(channel string) bool {
	for _, p := range cp.patterns {
		if ok, err := path.Match(p, channel); err == nil && ok {
			return true
		}
	}
	return false
}

// Channel is a named trace source gated by a ChannelPattern; Emit is a
// no-op unless both the underlying Tracer is enabled and the pattern
// selects this channel's name.
type Channel struct {
	tracer  Tracer
	pattern ChannelPattern
	name    string
}

// NewChannel returns a Channel named name, gated by pattern, emitting
// through t.
func NewChannel(t Tracer, pattern ChannelPattern, name string) Channel {
	return Channel{tracer: t, pattern: pattern, name: name}
}

// Enabled reports whether this channel will actually emit anything.
func (c Channel) Enabled() bool {
	return c.tracer != nil && c.tracer.Enabled() && c.pattern.Enabled(c.name)
}

// Point emits an instant event on this channel if it is enabled.
func (c Channel) Point(detail string) {
	if !c.Enabled() {
		return
	}
	c.tracer.Emit(&Event{
		Kind:   KindPoint,
		Scope:  ScopeChannel,
		Name:   c.name,
		Detail: detail,
	})
}
