package serviceImp

import (
	"context"
	"log"
	"os"

	"docqa/entities"
	"docqa/pkg/ai"
	"docqa/pkg/docstore"
	"docqa/pkg/extract"
	"docqa/pkg/file/repository"
	"docqa/pkg/rag"
)

type Svc struct {
	store *docstore.Store
	llm   ai.Client
	repo  repository.SummaryRepository
}

func New(store *docstore.Store, llm ai.Client, repo repository.SummaryRepository) *Svc {
	return &Svc{store: store, llm: llm, repo: repo}
}

// Upload extracts the file's text and makes it the current document.
// The spooled file is removed whether or not extraction succeeds; on
// failure the current document is left untouched.
func (s *Svc) Upload(path, mediaType string) error {
	defer os.Remove(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text, err := extract.Extract(content, mediaType)
	if err != nil {
		return err
	}
	s.store.Set(text)
	return nil
}

// Summarize extracts the file's text, asks the model for a one-shot
// summary of its leading portion, and records the result. The record
// insert is fire-and-forget: a failure is logged, not surfaced.
func (s *Svc) Summarize(ctx context.Context, path, mediaType, fileName string) (string, error) {
	defer os.Remove(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := extract.Extract(content, mediaType)
	if err != nil {
		return "", err
	}

	system, user := rag.SummaryPrompt(rag.TruncateForSummary(text))
	summary, err := s.llm.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}

	if err := s.repo.Create(&entities.Summary{FileName: fileName, Summary: summary}); err != nil {
		log.Printf("[file] save summary: %v", err)
	}
	return summary, nil
}
