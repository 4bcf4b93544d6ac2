package telegram

import (
	"sync"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
)

// chatSession holds the view state of one chat. The lock is held only while
// building requests and applying results, never across a fetch.
type chatSession struct {
	mu     sync.Mutex
	search *catalog.SearchState
	list   *catalog.ListState
	last   catalog.View // view "back" returns to
}

// sessionManager manages per-chat sessions and access control.
type sessionManager struct {
	mu       sync.Mutex
	sessions map[int64]*chatSession
	allowed  map[int64]bool // nil or empty = allow all
}

// newSessionManager creates a session manager.
// If allowedUserIDs is empty, all users are allowed.
func newSessionManager(allowedUserIDs []int64) *sessionManager {
	allowed := make(map[int64]bool, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = true
	}
	return &sessionManager{
		sessions: make(map[int64]*chatSession),
		allowed:  allowed,
	}
}

// isAllowed checks if a user is authorized to use the bot.
func (sm *sessionManager) isAllowed(userID int64) bool {
	if len(sm.allowed) == 0 {
		return true
	}
	return sm.allowed[userID]
}

// get returns the session for chatID, creating an empty one on first use.
func (sm *sessionManager) get(chatID int64) *chatSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	s, ok := sm.sessions[chatID]
	if !ok {
		s = &chatSession{search: catalog.NewSearchState(), last: catalog.ViewNotFound}
		sm.sessions[chatID] = s
	}
	return s
}
