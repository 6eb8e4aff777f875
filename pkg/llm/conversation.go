// Package llm talks to the commit-message generator: an OpenAI-compatible
// API reached first through the responses endpoint and, when that yields
// nothing, through chat completions. One invocation owns one append-only
// Conversation; the two transport shapes are projections of it.
package llm

import "strings"

// Role tags one conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged turn.
type Message struct {
	Role    Role
	Content string
}

// Conversation is the ordered message log for one generation loop. It only
// ever grows; retries append, nothing rewrites history.
type Conversation struct {
	messages []Message
}

// NewConversation seeds a conversation with the system and first user turn.
func NewConversation(system, user string) *Conversation {
	return &Conversation{messages: []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}}
}

// Append adds one message to the log.
func (c *Conversation) Append(role Role, content string) {
	c.messages = append(c.messages, Message{Role: role, Content: content})
}

// Len returns the number of messages accumulated so far.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Messages returns the log in order. Callers must not mutate it.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Instructions projects the system turn for the responses-style call.
func (c *Conversation) Instructions() string {
	for _, m := range c.messages {
		if m.Role == RoleSystem {
			return m.Content
		}
	}
	return ""
}

// Transcript projects the non-system turns into the single input text the
// responses-style call takes, preserving order and role attribution.
func (c *Conversation) Transcript() string {
	var b strings.Builder
	for _, m := range c.messages {
		switch m.Role {
		case RoleUser:
			b.WriteString("User:\n")
		case RoleAssistant:
			b.WriteString("Assistant:\n")
		default:
			continue
		}
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
