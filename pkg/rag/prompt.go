package rag

import "strings"

const (
	qaSystemPrompt = "You are an assistant that answers questions ONLY based on the provided document text. " +
		"If the answer is not in the document, reply with exactly: 'This question is irrelevant to the uploaded document.'"

	summarySystemPrompt = "You are an assistant that writes a short, plain-language summary of the provided document text. " +
		"Use ONLY the document text; do not add outside information."
)

// SummaryBudget is how many leading characters of a document are sent
// for summarization.
const SummaryBudget = 4000

// QAPrompt builds the system instruction and user payload for answering
// a question strictly from the retrieved chunks, in retrieval order.
func QAPrompt(chunks []ScoredChunk, question string) (system, user string) {
	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}
	user = "Relevant Document Sentences:\n\n" + strings.Join(texts, "\n\n") + "\n\nQuestion: " + question
	return qaSystemPrompt, user
}

// SummaryPrompt wraps already-truncated document text for a one-shot
// summary request.
func SummaryPrompt(text string) (system, user string) {
	return summarySystemPrompt, "Document Text:\n\n" + text
}

// TruncateForSummary keeps the first SummaryBudget characters of text.
func TruncateForSummary(text string) string {
	r := []rune(text)
	if len(r) <= SummaryBudget {
		return text
	}
	return string(r[:SummaryBudget])
}
