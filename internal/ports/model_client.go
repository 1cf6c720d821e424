package ports

import "context"

type ContentRole string

const (
	ContentRoleUser      ContentRole = "user"
	ContentRoleAssistant ContentRole = "assistant"
)

type InlineData struct {
	MIMEType string
	Data     []byte
}

type Part struct {
	Text   string
	Inline *InlineData
}

type Content struct {
	Role  ContentRole
	Parts []Part
}

// ModelRequest is one outbound call to the external model: a system
// instruction regenerated from current workflow state plus the replayed
// conversation, in order, with nothing dropped.
type ModelRequest struct {
	SystemInstruction string
	Contents          []Content
	Temperature       float32
}

// ToolCall is a structured invocation the model returned alongside (or
// instead of) free text.
type ToolCall struct {
	Name string
	Args map[string]any
}

type ModelResponse struct {
	Text      string
	ToolCalls []ToolCall
}

type ModelClient interface {
	Generate(ctx context.Context, req ModelRequest) (ModelResponse, error)
}
