// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package llm

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Response formats.
const (
	FormatText       = "text"
	FormatJSONObject = "json_object"
)

// ChatRequest is the chat completions request body.
type ChatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []Message       `json:"messages" validate:"required,min=1,dive"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Tools          []Tool          `json:"tools,omitempty"`
}

// ResponseFormat selects plain text or a JSON object reply.
type ResponseFormat struct {
	Type string `json:"type"`
}

// Message is one conversation turn. An assistant message carries either
// text content, tool calls, or both.
type Message struct {
	Role       string     `json:"role" validate:"required,oneof=system user assistant tool"`
	Content    *string    `json:"content,omitempty"`
	Name       string     `json:"name,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// NewMessage builds a text message.
func NewMessage(role, content string) Message {
	return Message{Role: role, Content: &content}
}

// Text returns the text content and whether any was sent.
func (m Message) Text() (string, bool) {
	if m.Content == nil {
		return "", false
	}
	return *m.Content, true
}

// Invocations returns the tool calls in the order the model emitted them.
func (m Message) Invocations() []ToolCall {
	return m.ToolCalls
}

// Tool declares a function the model may call.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction describes a callable function with a JSON Schema for its
// arguments.
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// ToolCall is a function invocation emitted by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall holds the called function and its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ChatResponse is the chat completions response body.
type ChatResponse struct {
	ID                string   `json:"id"`
	Object            string   `json:"object,omitempty"`
	Created           int64    `json:"created,omitempty"`
	Model             string   `json:"model"`
	SystemFingerprint string   `json:"system_fingerprint,omitempty"`
	Choices           []Choice `json:"choices"`
	Usage             *Usage   `json:"usage,omitempty"`
}

// Choice is one completion candidate. Its message content and its tool
// calls are independently optional: a choice may carry text, tool calls,
// both, or neither. Read them through Message.Text and
// Message.Invocations rather than probing the fields.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// Usage reports token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FirstText returns the text of the first choice that has any.
func (r *ChatResponse) FirstText() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, c := range r.Choices {
		if text, ok := c.Message.Text(); ok {
			return text, true
		}
	}
	return "", false
}
