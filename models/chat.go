// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Valid reports whether r is a known role.
func (r ChatRole) Valid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatSource identifies the text-generation backend that produced an
// assistant message.
type ChatSource string

const (
	ChatSourceMistral ChatSource = "mistral"
	ChatSourceApple   ChatSource = "apple"
)

// Valid reports whether s is a known source.
func (s ChatSource) Valid() bool {
	return s == ChatSourceMistral || s == ChatSourceApple
}

// ChatState is the conversation phase the assistant was in when a message
// was produced.
type ChatState string

const (
	ChatStateStart                ChatState = "start"
	ChatStateLongTimeNoSee        ChatState = "long_time_no_see"
	ChatStateExploration          ChatState = "exploration"
	ChatStateProblemSolving       ChatState = "problem_solving"
	ChatStateCrisis               ChatState = "crisis"
	ChatStateUpdatesFromYesterday ChatState = "updates_from_yesterday"
	ChatStateMaintenance          ChatState = "maintenance"
)

// DefaultChatState is the state a new conversation starts in.
const DefaultChatState = ChatStateStart

// ChatStates lists every known conversation state in flow order.
var ChatStates = []ChatState{
	ChatStateStart,
	ChatStateLongTimeNoSee,
	ChatStateExploration,
	ChatStateProblemSolving,
	ChatStateCrisis,
	ChatStateUpdatesFromYesterday,
	ChatStateMaintenance,
}

// Valid reports whether s is one of [ChatStates].
func (s ChatState) Valid() bool {
	return slices.Contains(ChatStates, s)
}

// ChatMessage is the plaintext view of one chat message. State and Source
// are optional; the zero value means "not set".
type ChatMessage struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	Role      ChatRole   `json:"role"`
	State     ChatState  `json:"state,omitempty"`
	Source    ChatSource `json:"source,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ChatMessageRow is the stored shape of a chat message (table chat_messages).
type ChatMessageRow struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ContentEnc string    `json:"content_enc"`
	RoleEnc    string    `json:"role_enc"`
	StateEnc   *string   `json:"state_enc"`
	SourceEnc  *string   `json:"source_enc"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ChatMessageRow model.
func (r ChatMessageRow) TableName() string {
	return "chat_messages"
}

// ChatSession is the plaintext view of the running conversation summary.
type ChatSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatSessionRow is the stored shape of a chat session (table chat_sessions).
type ChatSessionRow struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SummaryEnc *string   `json:"summary_enc"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ChatSessionRow model.
func (r ChatSessionRow) TableName() string {
	return "chat_sessions"
}

// LegacyChatMessage is the shape of a message kept in the device-local
// key/value store by older app versions, before chat history moved to the
// encrypted remote tables.
type LegacyChatMessage struct {
	Role      ChatRole   `json:"role"`
	Content   string     `json:"content"`
	State     ChatState  `json:"state,omitempty"`
	Source    ChatSource `json:"source,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
}

// ChatMigrationResult reports what was moved out of the legacy local store.
type ChatMigrationResult struct {
	MigratedMessages int  `json:"migrated_messages"`
	MigratedSummary  bool `json:"migrated_summary"`
}
