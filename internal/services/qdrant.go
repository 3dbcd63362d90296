package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// VectorStoreService indexes FAQ entries for the chatbot's retrieval step.
type VectorStoreService interface {
	InitCollection() error
	UpsertFAQ(ctx context.Context, faqID string, question, answer string, embedding []float32) error
	SearchFAQ(ctx context.Context, queryEmbedding []float32, limit int) ([]FAQSearchResult, error)
	DeleteFAQ(ctx context.Context, faqID string) error
}

type FAQSearchResult struct {
	FAQID    string
	Score    float32
	Question string
	Answer   string
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewVectorStoreService(urlStr, apiKey, collectionName string) (VectorStoreService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements VectorStoreService.
func (q *qdrantService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertFAQ implements VectorStoreService.
func (q *qdrantService) UpsertFAQ(ctx context.Context, faqID string, question, answer string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"faq_id":   faqID,
			"question": question,
			"answer":   answer,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchFAQ implements VectorStoreService.
func (q *qdrantService) SearchFAQ(ctx context.Context, queryEmbedding []float32, limit int) ([]FAQSearchResult, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []FAQSearchResult
	for _, point := range searchResult {
		payload := point.Payload

		result := FAQSearchResult{
			Score: point.Score,
		}

		if faqID, ok := payload["faq_id"]; ok {
			if val, ok := faqID.GetKind().(*qdrant.Value_StringValue); ok {
				result.FAQID = val.StringValue
			}
		}

		if question, ok := payload["question"]; ok {
			if val, ok := question.GetKind().(*qdrant.Value_StringValue); ok {
				result.Question = val.StringValue
			}
		}

		if answer, ok := payload["answer"]; ok {
			if val, ok := answer.GetKind().(*qdrant.Value_StringValue); ok {
				result.Answer = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// DeleteFAQ implements VectorStoreService.
func (q *qdrantService) DeleteFAQ(ctx context.Context, faqID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("faq_id", faqID),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete faq entry: %w", err)
	}

	return nil
}
