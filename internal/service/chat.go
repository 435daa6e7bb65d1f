package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mdivincenzo/macrocoach/internal/model"
)

// NewChatSessionID mints an id grouping one conversation's messages.
func NewChatSessionID() string {
	return uuid.NewString()
}

func AppendChatMessage(db *sql.DB, profileID int64, sessionID, role, content string) error {
	if profileID <= 0 {
		return fmt.Errorf("profile id must be > 0")
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("chat session id is required")
	}
	if role != "user" && role != "assistant" {
		return fmt.Errorf("invalid chat role %q", role)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("chat content is required")
	}
	_, err := db.Exec(`
INSERT INTO chat_history(profile_id, session_id, role, content)
VALUES(?, ?, ?, ?)
`, profileID, sessionID, role, content)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// RecentChatMessages returns up to limit most recent messages for the
// profile in chronological order.
func RecentChatMessages(db *sql.DB, profileID int64, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
SELECT id, profile_id, session_id, role, content, created_at
FROM (
  SELECT id, profile_id, session_id, role, content, created_at
  FROM chat_history
  WHERE profile_id = ?
  ORDER BY id DESC
  LIMIT ?
)
ORDER BY id ASC
`, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	messages := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.ProfileID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat history: %w", err)
	}
	return messages, nil
}
