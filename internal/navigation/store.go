package navigation

import "sync"

// Store owns the navigation state of every conversation, keyed by chat id.
// States are created lazily on first contact and live for the process
// lifetime. Access is safe for concurrent use; mutation ordering per chat
// is the dispatcher's responsibility.
type Store struct {
	mu     sync.RWMutex
	states map[int64]State
}

// NewStore constructs an empty in-memory state store.
func NewStore() *Store {
	return &Store{
		states: make(map[int64]State),
	}
}

// Get returns the state for a chat, or a fresh root state if the chat has
// not been seen yet.
func (s *Store) Get(chatID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.states[chatID]; ok {
		return st
	}
	return State{ChatID: chatID, Menu: MenuRoot, Page: 0}
}

// Put replaces the stored state for the chat the state belongs to.
func (s *Store) Put(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[st.ChatID] = st
}

// Clear removes the state of a chat.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}

// Len reports the number of tracked conversations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
