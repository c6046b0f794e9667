// pkg/ai/mock_client.go

package ai

import "strings"

type mockClient struct{}

// NewMock returns an offline client used when no completion endpoint is
// configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Chat(msgs []Message, tools []Tool) (*Message, error) {
	last := ""
	for _, msg := range msgs {
		if msg.Role == "user" {
			last = msg.Content
		}
	}
	if len(tools) > 0 && strings.Contains(strings.ToLower(last), "harvest") {
		tc := ToolCall{ID: "mock-1", Type: "function"}
		tc.Function.Name = tools[0].Function.Name
		tc.Function.Arguments = `{"crop_name":"Wheat"}`
		return &Message{Role: "assistant", ToolCalls: []ToolCall{tc}}, nil
	}
	return &Message{Role: "assistant", Content: "(mock) I can record your farm data if you tell me the crop, quantity and location."}, nil
}
