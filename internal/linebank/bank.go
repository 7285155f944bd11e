// Package linebank holds the immutable table of scripted utterances.
//
// The bank is populated once at startup and never mutated, so it is safe for
// concurrent readers without locking.
package linebank

import (
	"fmt"
	"strings"

	"github.com/pscheid92/avatarbridge/internal/domain"
)

const previewLength = 80

// Bank maps line IDs to scripted utterances. Read-only after New.
type Bank struct {
	entries map[string]domain.LineEntry
	order   []string
}

// New builds a bank from the given entries. Duplicate IDs are rejected.
func New(entries []domain.LineEntry) (*Bank, error) {
	b := &Bank{entries: make(map[string]domain.LineEntry, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("line entry with empty id")
		}
		if _, exists := b.entries[e.ID]; exists {
			return nil, fmt.Errorf("duplicate line id %q", e.ID)
		}
		b.entries[e.ID] = e
		b.order = append(b.order, e.ID)
	}
	return b, nil
}

// Lookup returns the entry for id, reporting whether it exists.
func (b *Bank) Lookup(id string) (domain.LineEntry, bool) {
	e, ok := b.entries[id]
	return e, ok
}

// Len returns the number of entries in the bank.
func (b *Bank) Len() int {
	return len(b.entries)
}

// IDs returns all line IDs in insertion order.
func (b *Bank) IDs() []string {
	ids := make([]string, len(b.order))
	copy(ids, b.order)
	return ids
}

// List returns the introspection view of every entry in insertion order.
// Previews replace pause markers with spaces and truncate to 80 characters;
// pause counts are raw marker occurrences (not compound-adjusted).
func (b *Bank) List() []domain.LineInfo {
	infos := make([]domain.LineInfo, 0, len(b.order))
	for _, id := range b.order {
		e := b.entries[id]
		infos = append(infos, domain.LineInfo{
			ID:          e.ID,
			File:        e.File,
			TextPreview: preview(e.Script),
			PauseCount:  strings.Count(e.Script, domain.PauseMarker),
		})
	}
	return infos
}

func preview(script string) string {
	clean := strings.ReplaceAll(script, domain.PauseMarker, " ")
	if runes := []rune(clean); len(runes) > previewLength {
		clean = string(runes[:previewLength])
	}
	return clean + "..."
}
