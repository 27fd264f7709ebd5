package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrelay/internal/modules/completion"
	"travelrelay/internal/modules/prompt"
)

// stubCompleter is a test double for completion.Completer.
type stubCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, p string) (string, error) {
	s.prompts = append(s.prompts, p)
	return s.reply, s.err
}

func newTestService(llm completion.Completer) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	svc := NewService(store, llm, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 18, 45, 0, 0, time.Local) }
	return svc, store
}

func mustRequest(t *testing.T, body string) prompt.Request {
	t.Helper()
	var req prompt.Request
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestChatRefusalIsNotRecorded(t *testing.T) {
	llm := &stubCompleter{reply: "unused"}
	svc, store := newTestService(llm)

	res, err := svc.Chat(context.Background(), mustRequest(t, `{"prompt": "tell me a joke"}`))
	require.NoError(t, err)
	assert.True(t, res.Refused)
	assert.Equal(t, prompt.RefusalMessage, res.Reply)
	assert.Empty(t, llm.prompts)

	list, _ := store.List(context.Background())
	assert.Empty(t, list)
}

func TestChatRecordsCompletedExchange(t *testing.T) {
	llm := &stubCompleter{reply: "Day 1: Baga beach"}
	svc, _ := newTestService(llm)

	res, err := svc.Chat(context.Background(), mustRequest(t, `{"destination": "Goa", "days": 3, "budget": "15000"}`))
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Baga beach", res.Reply)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Plan a 3-day trip to Goa within ₹15000")

	out, err := json.Marshal(res.Record)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"destination": "Goa",
		"days": 3,
		"budget": "15000",
		"preferences": "",
		"prompt": "",
		"response": "Day 1: Baga beach",
		"timestamp": "2024-05-01 18:45",
		"status": "completed"
	}`, string(out))
}

func TestChatFreeFormPromptRecordsUnknownFields(t *testing.T) {
	svc, _ := newTestService(&stubCompleter{reply: "ok"})

	res, err := svc.Chat(context.Background(), mustRequest(t, `{"prompt": "Best food in Delhi?"}`))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", res.Record.Destination.String())
	assert.Equal(t, "Best food in Delhi?", res.Record.Prompt.String())
}

func TestChatUpstreamFailureIsNotRecorded(t *testing.T) {
	upstreamErr := fmt.Errorf("openrouter: do request: %w", completion.ErrUpstreamUnreachable)
	svc, store := newTestService(&stubCompleter{err: upstreamErr})

	_, err := svc.Chat(context.Background(), mustRequest(t, `{"destination": "Goa"}`))
	assert.ErrorIs(t, err, completion.ErrUpstreamUnreachable)

	list, _ := store.List(context.Background())
	assert.Empty(t, list)
}

func TestChatInvalidPrompt(t *testing.T) {
	svc, _ := newTestService(&stubCompleter{})
	_, err := svc.Chat(context.Background(), mustRequest(t, `{"prompt": ["trip"]}`))
	assert.ErrorIs(t, err, completion.ErrInvalidInput)
	assert.ErrorIs(t, err, prompt.ErrInvalidPrompt)
}

func TestQueriesAndAnalyticsAfterNChats(t *testing.T) {
	svc, _ := newTestService(&stubCompleter{reply: "plan"})
	ctx := context.Background()

	for _, d := range []string{"Goa", "Goa", "Kerala"} {
		_, err := svc.Chat(ctx, mustRequest(t, `{"destination": "`+d+`"}`))
		require.NoError(t, err)
	}

	records, err := svc.Queries(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, i+1, r.ID)
	}

	a, err := svc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, a.TotalQueries)
	assert.Equal(t, "Goa", a.PopularDestinations[0].Name.String())
	assert.Equal(t, "Query for Kerala", a.RecentActivity[2].Action)
}

// failingStore is a Store whose reads fail.
type failingStore struct{ MemoryStore }

func (f *failingStore) List(context.Context) ([]Record, error) {
	return nil, errors.New("store offline")
}

func TestAnalyticsPropagatesStoreError(t *testing.T) {
	svc := NewService(&failingStore{}, &stubCompleter{}, zerolog.Nop())
	_, err := svc.Analytics(context.Background())
	assert.Error(t, err)
}
