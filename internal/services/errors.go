package services

import "errors"

// Error kinds of the scoring pipeline. Anything that corrupts the scoring
// computation aborts before persistence; failures downstream of a committed
// status change degrade to warnings.
var (
	// ErrNotFound means the candidate or job offer could not be resolved.
	// Surfaced before any write.
	ErrNotFound = errors.New("lookup failed")

	// ErrAnalysis means the soft-skill analysis response could not be parsed
	// into the expected structure. Aborts the submission, nothing persisted.
	ErrAnalysis = errors.New("soft skill analysis failed")

	// ErrGeneration means the report or suggestion generation failed.
	// Aborts the submission, nothing persisted.
	ErrGeneration = errors.New("text generation failed")

	// ErrTranscription is recovered locally: the pipeline continues with an
	// empty transcript.
	ErrTranscription = errors.New("transcription failed")

	// ErrNotification means all delivery attempts failed. Reported as a
	// warning next to an otherwise successful status change.
	ErrNotification = errors.New("notification failed")

	// ErrLLMTimeout marks a language model call that exceeded its deadline.
	ErrLLMTimeout = errors.New("language model call timed out")
)
