package serviceImp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/pkg/docstore"
	"docqa/pkg/question/service"
)

type fakeLLM struct {
	calls  int
	system string
	user   string
	out    string
	err    error
}

func (f *fakeLLM) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.system, f.user = system, user
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func TestAsk_EmptyStoreNeverReachesModel(t *testing.T) {
	llm := &fakeLLM{out: "unused"}
	svc := New(docstore.New(), llm)

	_, err := svc.Ask(context.Background(), "anything?")
	assert.ErrorIs(t, err, service.ErrEmptyDocument)
	assert.Zero(t, llm.calls)
}

func TestAsk_DocumentWithoutSentencesFailsEarly(t *testing.T) {
	llm := &fakeLLM{out: "unused"}
	store := docstore.New()
	store.Set("words without any terminating punctuation")
	svc := New(store, llm)

	_, err := svc.Ask(context.Background(), "anything?")
	assert.ErrorIs(t, err, service.ErrEmptyDocument)
	assert.Zero(t, llm.calls)
}

func TestAsk_BuildsPromptFromRetrievedChunks(t *testing.T) {
	llm := &fakeLLM{out: "the answer"}
	store := docstore.New()
	store.Set("The report covers revenue. Costs rose slightly. Margins held steady. " +
		"Headcount grew. Offices expanded. The zebra sanctuary opened in Nairobi. " +
		"Visitors adore the zebra sanctuary.")
	svc := New(store, llm)

	answer, err := svc.Ask(context.Background(), "tell me about the zebra sanctuary in Nairobi")
	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)
	require.Equal(t, 1, llm.calls)

	assert.Contains(t, llm.system, "ONLY based on the provided document text")
	assert.Contains(t, llm.user, "Question: tell me about the zebra sanctuary in Nairobi")
	// the zebra chunk outranks the revenue chunk
	zebraAt := strings.Index(llm.user, "The zebra sanctuary opened in Nairobi.")
	revenueAt := strings.Index(llm.user, "The report covers revenue.")
	require.GreaterOrEqual(t, zebraAt, 0)
	require.GreaterOrEqual(t, revenueAt, 0)
	assert.Less(t, zebraAt, revenueAt)
}
