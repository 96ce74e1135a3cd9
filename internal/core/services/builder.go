package services

import (
	"time"

	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
	"github.com/icstools/icsmerge/internal/logger"
)

// ReplacePolicy decides whether a newly observed event replaces the one
// already retained under the same UID. Both arguments are guaranteed to
// share a UID; the decision is total.
type ReplacePolicy func(newEvent, oldEvent *domain.Event) bool

// ReplaceAlways is the default policy: the latest-ingested event wins.
func ReplaceAlways(_, _ *domain.Event) bool { return true }

// ReplaceNever keeps the first-ingested event under each UID.
func ReplaceNever(_, _ *domain.Event) bool { return false }

// lastModifiedLayout is the UTC DATE-TIME form used by LAST-MODIFIED.
const lastModifiedLayout = "20060102T150405Z"

// ReplaceNewerLastModified keeps the event with the later LAST-MODIFIED
// stamp. When either side lacks a parseable stamp it falls back to the
// default newest-seen-wins behavior.
func ReplaceNewerLastModified(newEvent, oldEvent *domain.Event) bool {
	np, ok := newEvent.Get(domain.PropLastModified)
	if !ok {
		return true
	}
	op, ok := oldEvent.Get(domain.PropLastModified)
	if !ok {
		return true
	}
	nt, err := time.Parse(lastModifiedLayout, np.Value)
	if err != nil {
		return true
	}
	ot, err := time.Parse(lastModifiedLayout, op.Value)
	if err != nil {
		return true
	}
	return !nt.Before(ot)
}

// Builder accumulates components across any number of ingested calendars.
//
// Events are keyed by UID: a repeated UID either replaces the retained
// event in place (same position in the sequence) or is discarded, per the
// replacement policy. VTIMEZONE blocks are deduplicated by TZID with
// first-seen-wins. Every other component is retained unconditionally in
// arrival order.
//
// A Builder is created once per run, fed by successive Ingest calls, and
// consumed exactly once by Assemble. It is not safe for concurrent use.
type Builder struct {
	components []domain.Component
	uidIndex   map[string]int
	seenTZIDs  map[string]struct{}

	name        string
	description string
	timezone    string

	replace ReplacePolicy
	fillUID func() string

	dropped  int
	replaced int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithMetadata seeds calendar metadata before any document is ingested.
// Non-empty values here beat every ingested document's metadata.
func WithMetadata(name, description, timezone string) BuilderOption {
	return func(b *Builder) {
		b.name = name
		b.description = description
		b.timezone = timezone
	}
}

// WithReplacePolicy overrides the default ReplaceAlways policy.
func WithReplacePolicy(p ReplacePolicy) BuilderOption {
	return func(b *Builder) {
		if p != nil {
			b.replace = p
		}
	}
}

// WithUIDFiller makes the builder assign generated UIDs to events that lack
// one instead of dropping them.
func WithUIDFiller(f func() string) BuilderOption {
	return func(b *Builder) {
		b.fillUID = f
	}
}

// NewBuilder creates an empty merge builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		uidIndex:  make(map[string]int),
		seenTZIDs: make(map[string]struct{}),
		replace:   ReplaceAlways,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ingest merges one parsed calendar into the builder. A nil calendar is a
// no-op. Ingest cannot fail: malformed events are dropped with a warning,
// everything else is retained per the merge rules.
func (b *Builder) Ingest(cal *domain.Calendar) {
	if cal == nil {
		return
	}

	// Calendar metadata: first non-empty value wins across ingestion order.
	if b.name == "" {
		b.name = cal.Name
	}
	if b.description == "" {
		b.description = cal.Description
	}
	if b.timezone == "" {
		b.timezone = cal.Timezone
	}

	for _, comp := range cal.Components {
		switch c := comp.(type) {
		case *domain.Event:
			b.ingestEvent(c)
		case *domain.Block:
			b.ingestBlock(c)
		default:
			b.components = append(b.components, comp)
		}
	}
}

func (b *Builder) ingestEvent(ev *domain.Event) {
	uid, ok := ev.UID()
	if !ok {
		if b.fillUID == nil {
			b.dropped++
			logger.Warn("skipping event: %v", domain.ErrMissingUID)
			return
		}
		uid = b.fillUID()
		ev.Properties = append(ev.Properties, domain.Property{Name: domain.PropUID, Value: uid})
		logger.Debug("assigned UID %s to event without one", uid)
	}

	if idx, seen := b.uidIndex[uid]; seen {
		old := b.components[idx].(*domain.Event)
		if b.replace(ev, old) {
			// Positional update: the replacement takes the original slot,
			// it does not move to the end.
			b.components[idx] = ev
			b.replaced++
			logger.Debug("replaced event %s at position %d", uid, idx)
		}
		return
	}

	b.uidIndex[uid] = len(b.components)
	b.components = append(b.components, ev)
}

func (b *Builder) ingestBlock(bl *domain.Block) {
	if bl.Kind == domain.KindTimezone {
		if id, ok := bl.TimezoneID(); ok {
			if _, seen := b.seenTZIDs[id]; seen {
				logger.Debug("dropping duplicate VTIMEZONE %s", id)
				return
			}
			b.seenTZIDs[id] = struct{}{}
		}
		// A VTIMEZONE without a TZID cannot be deduplicated; keep it.
	}
	b.components = append(b.components, bl)
}

// Dropped returns how many UID-less events were discarded so far.
func (b *Builder) Dropped() int { return b.dropped }

// Replaced returns how many UID collisions resolved to a replacement.
func (b *Builder) Replaced() int { return b.replaced }

// PropertyNames returns each distinct property name across all retained
// events exactly once, in first-seen order. Non-event components are not
// inspected.
func (b *Builder) PropertyNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, comp := range b.components {
		ev, ok := comp.(*domain.Event)
		if !ok {
			continue
		}
		for _, p := range ev.Properties {
			if _, dup := seen[p.Name]; dup {
				continue
			}
			seen[p.Name] = struct{}{}
			names = append(names, p.Name)
		}
	}
	return names
}

// Assemble drains the builder into the final output calendar, applying the
// processor's Keep/Transform pair to every retained event. Non-event
// components pass through unchanged. Relative order is preserved; a nil
// processor means keep everything as-is.
//
// The builder is consumed: subsequent Ingest or Assemble calls operate on
// an empty sequence.
func (b *Builder) Assemble(proc driven.EventProcessor) *domain.Calendar {
	out := &domain.Calendar{
		Name:        b.name,
		Description: b.description,
		Timezone:    b.timezone,
	}

	components := b.components
	b.components = nil
	b.uidIndex = make(map[string]int)

	for _, comp := range components {
		ev, ok := comp.(*domain.Event)
		if !ok || proc == nil {
			out.Components = append(out.Components, comp)
			continue
		}
		if !proc.Keep(ev) {
			continue
		}
		if replacement := proc.Transform(ev); replacement != nil {
			out.Components = append(out.Components, replacement)
			continue
		}
		out.Components = append(out.Components, ev)
	}

	return out
}
