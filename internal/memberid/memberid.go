// Package memberid derives the human-readable identifiers printed on member cards.
//
// An identifier has the form {org}-{letter}-{position:03d}-{year}, where letter
// is B for board members and M for everyone else, and position is the member's
// 1-based place among members of the same type ordered by (order, id).
package memberid

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nhaf/internal/models"
)

// DefaultPrefix is the organization prefix used when none is configured.
const DefaultPrefix = "NHAFN"

// PeerCounter counts members of a type. Implemented by the member repository.
type PeerCounter interface {
	// CountByType returns how many members have the given type.
	CountByType(ctx context.Context, memberType models.MemberType) (int64, error)
	// CountAhead returns how many members of the type sort strictly before
	// (order, id) in the directory ordering.
	CountAhead(ctx context.Context, memberType models.MemberType, order int, id uint) (int64, error)
}

// TypeLetter returns the identifier letter for a member type.
func TypeLetter(t models.MemberType) string {
	if t == models.MemberTypeBoard {
		return "B"
	}
	return "M"
}

// Compose formats an identifier from its parts.
func Compose(prefix string, t models.MemberType, position int, year int) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if position < 1 {
		position = 1
	}
	return fmt.Sprintf("%s-%s-%03d-%d", prefix, TypeLetter(t), position, year)
}

// Engine computes identifiers against the current peer set.
type Engine struct {
	peers  PeerCounter
	prefix string
	now    func() time.Time
}

// NewEngine creates an Engine using prefix for every identifier.
func NewEngine(peers PeerCounter, prefix string) *Engine {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Engine{peers: peers, prefix: prefix, now: time.Now}
}

// WithClock replaces the clock used for the year of members without a join year.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Prefix returns the organization prefix.
func (e *Engine) Prefix() string {
	return e.prefix
}

// Position returns m's 1-based sequence number among same-type peers.
// A member that is not persisted yet is appended after every existing peer,
// whatever its order value.
func (e *Engine) Position(ctx context.Context, m *models.Member) (int, error) {
	var (
		n   int64
		err error
	)
	if m.ID == 0 {
		n, err = e.peers.CountByType(ctx, m.MemberType)
	} else {
		n, err = e.peers.CountAhead(ctx, m.MemberType, m.Order, m.ID)
	}
	if err != nil {
		return 0, fmt.Errorf("count %s peers: %w", m.MemberType, err)
	}
	return int(n) + 1, nil
}

// Generate computes the identifier for m without modifying it.
func (e *Engine) Generate(ctx context.Context, m *models.Member) (string, error) {
	pos, err := e.Position(ctx, m)
	if err != nil {
		return "", err
	}
	year := e.now().Year()
	if m.JoinYear != nil && *m.JoinYear > 0 {
		year = *m.JoinYear
	}
	return Compose(e.prefix, m.MemberType, pos, year), nil
}

// Assign sets m.MemberID to a freshly computed identifier.
func (e *Engine) Assign(ctx context.Context, m *models.Member) error {
	id, err := e.Generate(ctx, m)
	if err != nil {
		return err
	}
	m.MemberID = id
	return nil
}

// NeedsAssignment decides whether saving after should (re)compute its identifier.
// before is the persisted snapshot, nil when after is new. Identifiers are
// otherwise stable: a peer inserted ahead later does not renumber anyone.
func NeedsAssignment(before, after *models.Member) bool {
	if before == nil {
		return !after.HasMemberID()
	}
	if before.MemberType != after.MemberType {
		return true
	}
	return !after.HasMemberID()
}
