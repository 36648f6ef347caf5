package serviceImp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/entities"
	"docqa/pkg/docstore"
	"docqa/pkg/extract"
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

type fakeRepo struct {
	saved []*entities.Summary
	err   error
}

func (f *fakeRepo) Create(s *entities.Summary) error {
	f.saved = append(f.saved, s)
	return f.err
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUpload_SetsCurrentDocument(t *testing.T) {
	store := docstore.New()
	svc := New(store, &fakeLLM{}, &fakeRepo{})
	path := writeTemp(t, "The document text.")

	require.NoError(t, svc.Upload(path, "text/plain"))

	text, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "The document text.", text)
	assert.NoFileExists(t, path)
}

func TestUpload_UnsupportedTypeLeavesStoreUnchanged(t *testing.T) {
	store := docstore.New()
	store.Set("previous document")
	svc := New(store, &fakeLLM{}, &fakeRepo{})
	path := writeTemp(t, "binary stuff")

	err := svc.Upload(path, "image/png")
	assert.ErrorIs(t, err, extract.ErrUnsupportedMediaType)

	text, _ := store.Get()
	assert.Equal(t, "previous document", text)
	assert.NoFileExists(t, path, "temp file must be released on failure too")
}

func TestUpload_ReplacesPreviousDocument(t *testing.T) {
	store := docstore.New()
	store.Set("old")
	svc := New(store, &fakeLLM{}, &fakeRepo{})

	require.NoError(t, svc.Upload(writeTemp(t, "new"), "text/plain"))
	text, _ := store.Get()
	assert.Equal(t, "new", text)
}

func TestSummarize_TruncatesAndPersists(t *testing.T) {
	llm := &fakeLLM{out: "a fine summary"}
	repo := &fakeRepo{}
	svc := New(docstore.New(), llm, repo)

	long := strings.Repeat("a", 4000) + strings.Repeat("b", 500)
	path := writeTemp(t, long)

	summary, err := svc.Summarize(context.Background(), path, "text/plain", "report.txt")
	require.NoError(t, err)
	assert.Equal(t, "a fine summary", summary)

	assert.Contains(t, llm.user, strings.Repeat("a", 4000))
	assert.NotContains(t, llm.user, "b", "text beyond the budget must not reach the model")

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "report.txt", repo.saved[0].FileName)
	assert.Equal(t, "a fine summary", repo.saved[0].Summary)
	assert.NoFileExists(t, path)
}

func TestSummarize_GenerationFailureSurfaces(t *testing.T) {
	genErr := errors.New("model down")
	svc := New(docstore.New(), &fakeLLM{err: genErr}, &fakeRepo{})
	path := writeTemp(t, "some text")

	_, err := svc.Summarize(context.Background(), path, "text/plain", "f.txt")
	assert.ErrorIs(t, err, genErr)
	assert.NoFileExists(t, path)
}

func TestSummarize_PersistFailureIsFireAndForget(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db gone")}
	svc := New(docstore.New(), &fakeLLM{out: "summary"}, repo)

	summary, err := svc.Summarize(context.Background(), writeTemp(t, "text here"), "text/plain", "f.txt")
	require.NoError(t, err)
	assert.Equal(t, "summary", summary)
}

func TestSummarize_UnsupportedTypeSkipsModel(t *testing.T) {
	llm := &fakeLLM{out: "should not be used"}
	svc := New(docstore.New(), llm, &fakeRepo{})

	_, err := svc.Summarize(context.Background(), writeTemp(t, "x"), "application/zip", "f.zip")
	assert.ErrorIs(t, err, extract.ErrUnsupportedMediaType)
	assert.Zero(t, llm.calls)
}
