// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock returns a Client that answers without any external call, used
// when no API key is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Complete(_ context.Context, _, user string) (string, error) {
	if strings.Contains(user, "Question:") {
		return "answer (mock)", nil
	}
	return "summary (mock)", nil
}
