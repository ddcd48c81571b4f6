// Package featureflags gates optional site features from a key=value list.
package featureflags

import (
	"hash/fnv"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Flags consulted by the API.
const (
	LiveChat = "live_chat"
	Esewa    = "esewa"
	Khalti   = "khalti"
)

// Known lists every flag the API consults, in display order.
var Known = []string{LiveChat, Esewa, Khalti}

// rule is one parsed FEATURE_FLAGS value. pct is the rollout share for
// percentage rules, 100 for "on" and 0 for "off" or anything unparseable.
type rule struct {
	raw     string
	pct     int
	rollout bool
}

func parseRule(v string) rule {
	r := rule{raw: v}
	switch v {
	case "on", "true", "1":
		r.pct = 100
	case "off", "false", "0":
	default:
		if n, ok := strings.CutSuffix(v, "%"); ok {
			if pct, err := strconv.Atoi(n); err == nil {
				r.pct = min(max(pct, 0), 100)
				r.rollout = r.pct > 0 && r.pct < 100
			}
		}
	}
	return r
}

// Manager evaluates feature flags such as "live_chat=on,khalti=off,esewa=50%".
// Flags that are not configured are on, so a missing entry never hides a
// payment method.
type Manager struct {
	rules map[string]rule
}

// Flag is the admin view of one flag.
type Flag struct {
	Name       string `json:"name"`
	Configured string `json:"configured,omitempty"`
	Enabled    bool   `json:"enabled"`
}

// NewManager parses a comma-separated FEATURE_FLAGS value. Malformed pairs
// are skipped.
func NewManager(raw string) *Manager {
	m := &Manager{rules: make(map[string]rule)}
	for pair := range strings.SplitSeq(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k, v = normalize(k), normalize(v)
		if !ok || k == "" || v == "" {
			continue
		}
		m.rules[k] = parseRule(v)
	}
	return m
}

// Enabled evaluates name for an anonymous caller.
func (m *Manager) Enabled(name string) bool {
	return m.EnabledFor(name, "")
}

// EnabledFor evaluates name for a subject such as a chat session token.
// Percentage rollouts are deterministic per subject and exclude anonymous
// callers.
func (m *Manager) EnabledFor(name, subject string) bool {
	if m == nil {
		return true
	}
	r, ok := m.rules[normalize(name)]
	switch {
	case !ok:
		return true
	case !r.rollout:
		return r.pct == 100
	case subject == "":
		return false
	}
	return bucket(name, subject) < r.pct
}

// Raw returns the configured value of every flag set in FEATURE_FLAGS.
func (m *Manager) Raw() map[string]string {
	out := make(map[string]string, len(m.rules))
	for k, r := range m.rules {
		out[k] = r.raw
	}
	return out
}

// Names returns known flags followed by any extra configured ones, sorted.
func (m *Manager) Names() []string {
	names := slices.Clone(Known)
	for _, n := range slices.Sorted(maps.Keys(m.rules)) {
		if !slices.Contains(Known, n) {
			names = append(names, n)
		}
	}
	return names
}

// Flags evaluates every name from Names for an anonymous caller.
func (m *Manager) Flags() []Flag {
	names := m.Names()
	out := make([]Flag, 0, len(names))
	for _, n := range names {
		out = append(out, Flag{Name: n, Configured: m.rules[n].raw, Enabled: m.Enabled(n)})
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bucket(name, subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(normalize(name) + ":" + subject))
	return int(h.Sum32() % 100)
}
