package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEvent(purpose string, ok bool) LLMRequestEventData {
	return LLMRequestEventData{
		SessionID:    "session-1",
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      purpose,
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    250,
		Success:      ok,
		RequestBody:  "[user]\nGenerate a question.",
		ResponseBody: "Question: What is 2 + 2?",
	}
}

func TestAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)))
	require.NoError(t, repo.AppendLLMRequest(ctx, sampleEvent("review", false)))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "review", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, 120, events[1].InputTokens)
	assert.Equal(t, 80, events[1].OutputTokens)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestQuery_PurposeFilterAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)))
	}
	require.NoError(t, repo.AppendLLMRequest(ctx, sampleEvent("review", true)))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen", Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "question-gen", e.Purpose)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.NotEmpty(t, e.RequestBody)
	assert.NotEmpty(t, e.ResponseBody)
	assert.Equal(t, "session-1", e.SessionID)

	missing, err := repo.GetLLMEvent(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)))
	}
	require.NoError(t, repo.AppendLLMRequest(ctx, sampleEvent("review", true)))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	// question-gen has more total tokens, so it sorts first.
	assert.Equal(t, "question-gen", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 240, byPurpose[0].InputTokens)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, "mock-model", byModel[0].Model)
	assert.Equal(t, 3, byModel[0].Calls)
}
