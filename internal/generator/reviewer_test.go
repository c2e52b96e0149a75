package generator

import (
	"context"
	"testing"
)

// scriptedClient replays canned answers in order.
type scriptedClient struct {
	answers []string
	calls   int
}

func (s *scriptedClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*LLMResponse, error) {
	answer := s.answers[s.calls%len(s.answers)]
	s.calls++
	return &LLMResponse{Content: answer}, nil
}

func TestReviewAgreement(t *testing.T) {
	batch, err := ParseResponse(validBatchJSON)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}

	// Solver answers mcq and order correctly, flubs pronunciation's
	// transcription with different casing (still counts as agreement).
	llm := &scriptedClient{answers: []string{"el_gato", "me gusta el café", "Desarrollo"}}
	result, err := NewReviewer(llm).Review(context.Background(), batch)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if result.Agreed != 3 || result.Disagreed != 0 {
		t.Errorf("agreed=%d disagreed=%d, want 3/0", result.Agreed, result.Disagreed)
	}
	if llm.calls != 3 {
		t.Errorf("expected 3 solver calls, got %d", llm.calls)
	}
}

func TestReviewFlagsDisagreement(t *testing.T) {
	batch, err := ParseResponse(validBatchJSON)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}

	llm := &scriptedClient{answers: []string{"el_perro", "me gusta el café", "desarrollo"}}
	result, err := NewReviewer(llm).Review(context.Background(), batch)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if result.Disagreed != 1 {
		t.Errorf("disagreed=%d, want 1", result.Disagreed)
	}
	if len(result.FlaggedIdxs) != 1 || result.FlaggedIdxs[0] != 0 {
		t.Errorf("flagged indexes %v, want [0]", result.FlaggedIdxs)
	}
}

func TestMockClientBatchParses(t *testing.T) {
	resp, err := NewMockClient().Generate(context.Background(), "", "")
	if err != nil {
		t.Fatalf("mock generate failed: %v", err)
	}
	batch, err := ParseResponse(resp.Content)
	if err != nil {
		t.Fatalf("mock output must parse: %v", err)
	}
	if len(batch.Questions) == 0 {
		t.Error("mock batch is empty")
	}
}
