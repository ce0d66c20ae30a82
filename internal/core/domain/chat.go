package domain

// ChatSingletonID is the fixed id of the chat log record.
const ChatSingletonID = "global-chat"

// MaxChatMessages caps the stored chat history; older messages are dropped.
const MaxChatMessages = 100

// ChatMessage is one entry in the staff chat.
type ChatMessage struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserFullName string `json:"user_full_name"`
	Text         string `json:"text"`
	Timestamp    string `json:"timestamp"`
}

// ChatLog is the chat singleton state: an append-only list truncated to the
// most recent MaxChatMessages entries.
type ChatLog struct {
	Messages []ChatMessage `json:"messages"`
}

// Append adds a message and trims the log to the newest MaxChatMessages.
func (l ChatLog) Append(m ChatMessage) ChatLog {
	msgs := append(append([]ChatMessage{}, l.Messages...), m)
	if len(msgs) > MaxChatMessages {
		msgs = msgs[len(msgs)-MaxChatMessages:]
	}
	return ChatLog{Messages: msgs}
}
