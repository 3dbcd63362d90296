package services

import (
	"context"
	"fmt"
	"log"

	"smartrecruit/recruitflow/internal/models"
)

const (
	defaultChatTopK = 5
	faqMaxChunkSize = 1000
	faqChunkOverlap = 100
)

// ChatbotService answers FAQ questions with retrieval-augmented generation:
// entries are embedded into the vector store, and each question is answered
// from its top-k nearest entries.
type ChatbotService interface {
	IndexFAQ(ctx context.Context, entry *models.FAQ) error
	Ask(ctx context.Context, question string, topK int) (*models.ChatResponse, error)
}

type chatbotService struct {
	gemini        GeminiService
	vectorStore   VectorStoreService
	chunker       TextChunker
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewChatbotService(gemini GeminiService, vectorStore VectorStoreService, maxRetries int) ChatbotService {
	return &chatbotService{
		gemini:        gemini,
		vectorStore:   vectorStore,
		chunker:       NewTextChunker(),
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// IndexFAQ implements ChatbotService. Long answers are chunked so every
// stored vector stays within the embedding budget; each chunk keeps the full
// question in its payload.
func (c *chatbotService) IndexFAQ(ctx context.Context, entry *models.FAQ) error {
	chunks := c.chunker.ChunkText(entry.Answer, faqMaxChunkSize, faqChunkOverlap)
	if len(chunks) == 0 {
		chunks = []string{entry.Answer}
	}

	for _, chunk := range chunks {
		embedding, err := c.gemini.GenerateEmbedding(ctx, entry.Question+"\n"+chunk)
		if err != nil {
			return fmt.Errorf("failed to embed faq entry: %w", err)
		}

		if err := c.vectorStore.UpsertFAQ(ctx, entry.ID.String(), entry.Question, chunk, embedding); err != nil {
			return fmt.Errorf("failed to index faq entry: %w", err)
		}
	}

	return nil
}

// Ask implements ChatbotService.
func (c *chatbotService) Ask(ctx context.Context, question string, topK int) (*models.ChatResponse, error) {
	if topK <= 0 {
		topK = defaultChatTopK
	}

	embedding, err := c.gemini.GenerateEmbedding(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	hits, err := c.vectorStore.SearchFAQ(ctx, embedding, topK)
	if err != nil {
		// Retrieval failure degrades to an ungrounded answer rather than
		// blocking the chatbot.
		log.Printf("⚠️  FAQ retrieval failed: %v\n", err)
		hits = nil
	}

	sources := make([]models.ChatSource, 0, len(hits))
	for _, hit := range hits {
		sources = append(sources, models.ChatSource{
			Question: hit.Question,
			Answer:   hit.Answer,
			Score:    hit.Score,
		})
	}

	prompt := c.promptBuilder.BuildChatbotPrompt(question, sources)

	answer, err := c.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return &models.ChatResponse{
		Answer:  answer,
		Sources: sources,
	}, nil
}
