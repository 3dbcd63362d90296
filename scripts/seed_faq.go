package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"smartrecruit/recruitflow/internal/config"
	"smartrecruit/recruitflow/internal/models"
	"smartrecruit/recruitflow/internal/repositories"
	"smartrecruit/recruitflow/internal/services"
)

// Seeds the FAQ table and the Qdrant collection from a JSON file of
// {question, answer} entries. Usage: go run scripts/seed_faq.go [faq.json]
func main() {
	log.Println("🚀 Starting FAQ seeding...")

	path := "./reference_docs/faq.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read FAQ file %s: %v", path, err)
	}

	var entries []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("❌ Failed to parse FAQ file: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	faqRepo := repositories.NewFAQRepository(db)

	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	chatbot := services.NewChatbotService(geminiService, vectorStore, 3)

	ctx := context.Background()

	successCount := 0
	failCount := 0

	for _, raw := range entries {
		log.Printf("\n💬 Processing: %s", raw.Question)

		entry := &models.FAQ{
			ID:        uuid.New(),
			Question:  raw.Question,
			Answer:    raw.Answer,
			CreatedAt: time.Now(),
		}

		if err := faqRepo.Create(entry); err != nil {
			log.Printf("   ❌ Failed to save entry: %v", err)
			failCount++
			continue
		}

		if err := chatbot.IndexFAQ(ctx, entry); err != nil {
			log.Printf("   ❌ Failed to index entry: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Indexed")
		successCount++
	}

	log.Printf("\n🏁 FAQ seeding finished: %d indexed, %d failed\n", successCount, failCount)
}
