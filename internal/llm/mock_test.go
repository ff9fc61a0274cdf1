package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_QueueOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"first"` {
		t.Errorf("first response = %s, want \"first\"", resp.Content)
	}

	resp, err = mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"second"` {
		t.Errorf("second response = %s, want \"second\"", resp.Content)
	}
}

func TestMockProvider_ReplaysLastSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"only"`)},
	)

	for i := 0; i < 3; i++ {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if string(resp.Content) != `"only"` {
			t.Errorf("call %d: content = %s, want \"only\"", i+1, resp.Content)
		}
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount() = %d, want 3", mock.CallCount())
	}
}

func TestMockProvider_ErrorNotReplayed(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: errors.New("boom")},
	)

	if _, err := mock.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected queued error")
	}

	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable after drain, got %v", err)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
