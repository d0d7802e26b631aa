// Package questionbank holds the immutable role-keyed interview question
// catalog, its loading logic (remote source with local fallback), and the
// copy-on-write store used by management operations.
package questionbank

import (
	"sort"
	"sync/atomic"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

// Bank is an immutable role -> ordered questions catalog. All accessors
// return copies so callers can never mutate the shared state; updates go
// through WithQuestion which builds a new Bank.
type Bank struct {
	roles map[string][]domain.Question
}

// New builds a Bank from a catalog, deep-copying the question slices.
func New(catalog map[string][]domain.Question) *Bank {
	roles := make(map[string][]domain.Question, len(catalog))
	for role, qs := range catalog {
		cp := make([]domain.Question, len(qs))
		copy(cp, qs)
		roles[role] = cp
	}
	return &Bank{roles: roles}
}

// QuestionsFor returns the ordered questions for role, or an empty slice for
// an unknown role. Never a partially-populated sequence.
func (b *Bank) QuestionsFor(role string) []domain.Question {
	qs, ok := b.roles[role]
	if !ok {
		return nil
	}
	cp := make([]domain.Question, len(qs))
	copy(cp, qs)
	return cp
}

// HasRole reports whether the bank carries any questions for role.
func (b *Bank) HasRole(role string) bool {
	return len(b.roles[role]) > 0
}

// Roles returns all role keys sorted.
func (b *Bank) Roles() []string {
	out := make([]string, 0, len(b.roles))
	for role := range b.roles {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// Len returns the total question count across roles.
func (b *Bank) Len() int {
	n := 0
	for _, qs := range b.roles {
		n += len(qs)
	}
	return n
}

// Catalog returns a deep copy of the underlying role map, for serialization.
func (b *Bank) Catalog() map[string][]domain.Question {
	out := make(map[string][]domain.Question, len(b.roles))
	for role, qs := range b.roles {
		cp := make([]domain.Question, len(qs))
		copy(cp, qs)
		out[role] = cp
	}
	return out
}

// WithQuestion returns a new Bank with q appended to role's list, creating
// the role when absent. The receiver is left untouched.
func (b *Bank) WithQuestion(role string, q domain.Question) *Bank {
	next := b.Catalog()
	next[role] = append(next[role], q)
	return New(next)
}

// Store publishes the live Bank. Readers always observe a complete catalog;
// management appends swap in a whole new Bank atomically.
type Store struct {
	bank atomic.Pointer[Bank]
	// source records where the catalog came from (api, file, default).
	source atomic.Pointer[string]
}

// NewStore wraps an initial bank.
func NewStore(b *Bank, source string) *Store {
	s := &Store{}
	s.bank.Store(b)
	s.source.Store(&source)
	return s
}

// Bank returns the current catalog snapshot.
func (s *Store) Bank() *Bank { return s.bank.Load() }

// Source reports where the current catalog was loaded from.
func (s *Store) Source() string { return *s.source.Load() }

// Append adds a question to a role via copy-on-write and returns the new
// snapshot. Management-only; evaluation calls never mutate the bank.
func (s *Store) Append(role string, q domain.Question) *Bank {
	for {
		cur := s.bank.Load()
		next := cur.WithQuestion(role, q)
		if s.bank.CompareAndSwap(cur, next) {
			return next
		}
	}
}
