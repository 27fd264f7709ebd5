package query

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"travelrelay/internal/modules/completion"
	"travelrelay/internal/modules/prompt"
)

// ChatResult is the outcome of one /chat exchange.
type ChatResult struct {
	Reply   string
	Refused bool
	Record  Record
}

// Service resolves prompts, calls the upstream model and records completed exchanges.
type Service struct {
	store Store
	llm   completion.Completer
	log   zerolog.Logger
	now   func() time.Time
}

func NewService(store Store, llm completion.Completer, log zerolog.Logger) *Service {
	return &Service{store: store, llm: llm, log: log, now: time.Now}
}

// Chat answers a travel request. Refusals and failures are never recorded.
func (s *Service) Chat(ctx context.Context, req prompt.Request) (ChatResult, error) {
	res, err := prompt.Resolve(req)
	if err != nil {
		return ChatResult{}, fmt.Errorf("%w: %w", completion.ErrInvalidInput, err)
	}
	if res.Refused {
		s.log.Debug().Msg("prompt refused: not travel related")
		return ChatResult{Reply: prompt.RefusalMessage, Refused: true}, nil
	}

	reply, err := s.llm.Complete(ctx, res.Prompt)
	if err != nil {
		return ChatResult{}, err
	}

	rec, err := s.store.Append(ctx, NewRecord(req, reply, s.now()))
	if err != nil {
		return ChatResult{}, fmt.Errorf("store query: %w", err)
	}
	s.log.Info().Int("query_id", rec.ID).Str("destination", rec.Destination.String()).Msg("query completed")
	return ChatResult{Reply: reply, Record: rec}, nil
}

// Queries returns every stored record oldest first.
func (s *Service) Queries(ctx context.Context) ([]Record, error) {
	return s.store.List(ctx)
}

// Analytics summarizes the current store contents.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return Analytics{}, err
	}
	return Summarize(records), nil
}
