package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/icstools/icsmerge/internal/core/ports/driven"
	"github.com/icstools/icsmerge/internal/core/ports/driving"
	"github.com/icstools/icsmerge/internal/logger"
)

// Ensure MergeService implements the interface.
var _ driving.Merger = (*MergeService)(nil)

// MergeService runs the full merge pipeline behind the driving.Merger port:
// parse every source, ingest in order, assemble through the processor,
// serialize.
type MergeService struct {
	codec  driven.Codec
	policy ReplacePolicy
}

// NewMergeService creates a merge service using the given wire codec.
// A nil policy means the default newest-seen-wins replacement.
func NewMergeService(codec driven.Codec, policy ReplacePolicy) *MergeService {
	return &MergeService{codec: codec, policy: policy}
}

// Merge implements driving.Merger.
func (s *MergeService) Merge(ctx context.Context, req driving.MergeRequest) (string, error) {
	b, err := s.ingestAll(ctx, req)
	if err != nil {
		return "", err
	}

	out := b.Assemble(req.Processor)

	serialized, err := s.codec.Serialize(out)
	if err != nil {
		return "", fmt.Errorf("serialize merged calendar: %w", err)
	}
	return serialized, nil
}

// PropertyNames implements driving.Merger.
func (s *MergeService) PropertyNames(ctx context.Context, req driving.MergeRequest) ([]string, error) {
	b, err := s.ingestAll(ctx, req)
	if err != nil {
		return nil, err
	}
	return b.PropertyNames(), nil
}

// ingestAll builds a fresh Builder and feeds it every source in order.
// The first parse failure aborts the whole run.
func (s *MergeService) ingestAll(ctx context.Context, req driving.MergeRequest) (*Builder, error) {
	opts := []BuilderOption{
		WithMetadata(req.Overrides.Name, req.Overrides.Description, req.Overrides.Timezone),
	}
	if s.policy != nil {
		opts = append(opts, WithReplacePolicy(s.policy))
	}
	if req.FillUID {
		opts = append(opts, WithUIDFiller(uuid.NewString))
	}

	b := NewBuilder(opts...)

	for _, src := range req.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(src.Content) == 0 {
			logger.Debug("skipping empty source %s", src.Name)
			continue
		}

		cal, err := s.codec.Parse(src.Content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", src.Name, err)
		}

		b.Ingest(cal)
		logger.Debug("ingested %s: %d components", src.Name, len(cal.Components))
	}

	return b, nil
}
