package driving

import (
	"context"

	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// Source is one named, already-read input document. Reading files and stdin
// happens at the CLI edge; the core only sees bytes plus a display name for
// diagnostics.
type Source struct {
	// Name identifies the source in error messages ("stdin" or a file path).
	Name string

	// Content is the raw document text.
	Content []byte
}

// Overrides are caller-supplied calendar metadata. A non-empty override is
// seeded before any document is ingested and therefore beats every
// document's own metadata; among documents, first non-empty wins.
type Overrides struct {
	Name        string
	Description string
	Timezone    string
}

// MergeRequest describes one merge run. Sources are ingested strictly in
// slice order: order determines both metadata precedence and which event
// wins a UID collision.
type MergeRequest struct {
	Sources   []Source
	Overrides Overrides

	// FillUID assigns a generated UID to events that lack one instead of
	// dropping them.
	FillUID bool

	// Processor is applied per retained event during assembly.
	// Nil means identity (keep everything, transform nothing).
	Processor driven.EventProcessor
}

// Merger is the driving port behind every icsmerge command.
type Merger interface {
	// Merge parses and ingests all sources, assembles the merged calendar
	// through the request's processor and returns the serialized result.
	// Any parse failure aborts the run; no partial output is produced.
	Merge(ctx context.Context, req MergeRequest) (string, error)

	// PropertyNames merges all sources and returns each distinct property
	// name across retained events exactly once, in first-seen order. The
	// request's processor is ignored: this is a terminal reporting
	// operation.
	PropertyNames(ctx context.Context, req MergeRequest) ([]string, error)
}
