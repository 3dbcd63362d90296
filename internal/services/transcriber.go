package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TranscriptionService turns a stored video pitch into transcript text.
// Failures here are recoverable: the pipeline continues with an empty
// transcript instead of aborting the submission.
type TranscriptionService interface {
	Transcribe(ctx context.Context, videoPath string) (string, error)
}

type transcriptionService struct {
	gemini GeminiService
}

func NewTranscriptionService(gemini GeminiService) TranscriptionService {
	return &transcriptionService{gemini: gemini}
}

// Transcribe implements TranscriptionService.
func (t *transcriptionService) Transcribe(ctx context.Context, videoPath string) (string, error) {
	data, err := os.ReadFile(videoPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscription, err)
	}

	return t.gemini.TranscribeAudio(ctx, data, videoMimeType(videoPath))
}

func videoMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/x-msvideo"
	default:
		return "application/octet-stream"
	}
}
