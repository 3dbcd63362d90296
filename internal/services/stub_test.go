package services

import "context"

// stubGemini is a deterministic stand-in for the Gemini client. The live
// capability runs with temperature above zero, so every test that touches an
// LLM-backed service goes through this stub instead.
type stubGemini struct {
	response      string
	err           error
	embedding     []float32
	embedErr      error
	transcript    string
	transcriptErr error

	prompts []string
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return s.GenerateText(ctx, prompt, temperature)
}

func (s *stubGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	return s.embedding, nil
}

func (s *stubGemini) TranscribeAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	if s.transcriptErr != nil {
		return "", s.transcriptErr
	}
	return s.transcript, nil
}
