package service_test

import (
	"fmt"
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/service"
)

func TestAppendAndReplayChat(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	session := service.NewChatSessionID()
	if session == "" {
		t.Fatalf("session id must not be empty")
	}

	turns := []struct{ role, content string }{
		{"user", "logged breakfast yet?"},
		{"assistant", "Not yet today."},
		{"user", "2 eggs and toast"},
		{"assistant", "Logged. Anything else?"},
	}
	for _, turn := range turns {
		if err := service.AppendChatMessage(sqldb, id, session, turn.role, turn.content); err != nil {
			t.Fatalf("append %s message: %v", turn.role, err)
		}
	}

	messages, err := service.RecentChatMessages(sqldb, id, 20)
	if err != nil {
		t.Fatalf("recent messages: %v", err)
	}
	if len(messages) != len(turns) {
		t.Fatalf("expected %d messages, got %d", len(turns), len(messages))
	}
	for i, turn := range turns {
		if messages[i].Role != turn.role || messages[i].Content != turn.content {
			t.Fatalf("message %d out of order: %+v", i, messages[i])
		}
	}
}

func TestRecentChatMessagesWindow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	session := service.NewChatSessionID()
	for i := 0; i < 30; i++ {
		if err := service.AppendChatMessage(sqldb, id, session, "user", fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("append message %d: %v", i, err)
		}
	}

	messages, err := service.RecentChatMessages(sqldb, id, 20)
	if err != nil {
		t.Fatalf("recent messages: %v", err)
	}
	if len(messages) != 20 {
		t.Fatalf("expected a 20-message window, got %d", len(messages))
	}
	if messages[0].Content != "message 10" || messages[19].Content != "message 29" {
		t.Fatalf("window must keep the newest messages in order: first %q last %q",
			messages[0].Content, messages[19].Content)
	}
}

func TestAppendChatMessageValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := newTestProfile(t, sqldb, "maintain")
	session := service.NewChatSessionID()
	if err := service.AppendChatMessage(sqldb, id, session, "system", "x"); err == nil {
		t.Fatalf("only user and assistant roles are storable")
	}
	if err := service.AppendChatMessage(sqldb, id, "", "user", "x"); err == nil {
		t.Fatalf("blank session id must be rejected")
	}
	if err := service.AppendChatMessage(sqldb, id, session, "user", "  "); err == nil {
		t.Fatalf("blank content must be rejected")
	}
}
