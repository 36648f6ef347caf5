package serviceImp

import (
	"context"

	"docqa/pkg/ai"
	"docqa/pkg/docstore"
	"docqa/pkg/question/service"
	"docqa/pkg/rag"
)

type Svc struct {
	store *docstore.Store
	llm   ai.Client
}

func New(store *docstore.Store, llm ai.Client) *Svc { return &Svc{store: store, llm: llm} }

// Ask answers the message strictly from the current document: segment,
// chunk, rank the chunks against the question, then complete. A missing
// document and a document that yields no chunks both fail before the
// model is called.
func (s *Svc) Ask(ctx context.Context, message string) (string, error) {
	text, ok := s.store.Get()
	if !ok {
		return "", service.ErrEmptyDocument
	}

	sentences := rag.Sentences(text)
	chunks := rag.Chunk(sentences, rag.DefaultChunkSize)
	if len(chunks) == 0 {
		return "", service.ErrEmptyDocument
	}

	best := rag.Retrieve(message, chunks, rag.DefaultTopK)
	system, user := rag.QAPrompt(best, message)
	return s.llm.Complete(ctx, system, user)
}
