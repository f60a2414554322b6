// Package history is the durable session store. The whole store is one JSON
// document rewritten on every mutation; writes go through a temp file and
// rename so a crash mid-write can never truncate existing history. A mutation
// is committed in memory only after the file write succeeds.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adarsh8081/e-waste-management/internal/model/chat"
)

// ErrPersistence marks a failed durable write; the in-memory state was rolled
// back and the mutation must be treated as never having happened.
var ErrPersistence = errors.New("history: persist failed")

// Store serializes all mutations behind one writer lock; reads are served
// from the in-memory map with copy-on-read.
type Store struct {
	path string

	mu       sync.RWMutex
	sessions map[string]chat.Session
}

// NewStore loads the store from path, creating an empty one when the file
// does not exist yet. A corrupt file is an error, not silent data loss.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:     path,
		sessions: make(map[string]chat.Session),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read chat history: %w", err)
	}

	if err := json.Unmarshal(data, &s.sessions); err != nil {
		return nil, fmt.Errorf("unmarshal chat history: %w", err)
	}
	return s, nil
}

// CreateSession provisions a new session. An empty name defaults to
// "Chat {N+1}" where N is the current session count.
func (s *Store) CreateSession(name string) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if name == "" {
		name = fmt.Sprintf("Chat %d", len(s.sessions)+1)
	}

	session := chat.Session{
		ID:        uuid.NewString(),
		Name:      name,
		Messages:  []chat.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.sessions[session.ID] = session
	if err := s.persistLocked(); err != nil {
		delete(s.sessions, session.ID)
		return chat.Session{}, err
	}
	return session.Clone(), nil
}

// AddMessage appends an exchange to the session, creating a fresh session
// first when id is unknown. It returns the id the message actually landed in.
func (s *Store) AddMessage(id, userMessage, botResponse string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	session, ok := s.sessions[id]
	created := false
	if !ok {
		session = chat.Session{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Chat %d", len(s.sessions)+1),
			Messages:  []chat.Message{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		created = true
	}

	prev := session.Clone()
	session.Messages = append(append([]chat.Message(nil), session.Messages...), chat.Message{
		UserMessage: userMessage,
		BotResponse: botResponse,
		Timestamp:   now,
	})
	session.UpdatedAt = now
	s.sessions[session.ID] = session

	if err := s.persistLocked(); err != nil {
		if created {
			delete(s.sessions, session.ID)
		} else {
			s.sessions[prev.ID] = prev
		}
		return "", err
	}
	return session.ID, nil
}

// RenameSession changes a session's name. Returns false when id is unknown.
func (s *Store) RenameSession(id, newName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, nil
	}

	prev := session.Clone()
	session.Name = newName
	session.UpdatedAt = time.Now().UTC()
	s.sessions[id] = session

	if err := s.persistLocked(); err != nil {
		s.sessions[id] = prev
		return false, err
	}
	return true, nil
}

// DeleteSession removes a session entirely. Returns false when id is unknown.
func (s *Store) DeleteSession(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, nil
	}

	delete(s.sessions, id)
	if err := s.persistLocked(); err != nil {
		s.sessions[id] = session
		return false, err
	}
	return true, nil
}

// GetSession returns a copy of the session, or ok=false when absent.
func (s *Store) GetSession(id string) (chat.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return chat.Session{}, false
	}
	return session.Clone(), true
}

// ListSessions returns summaries ordered by creation time, then id, so a
// given store snapshot always lists identically.
func (s *Store) ListSessions() []chat.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]chat.Summary, 0, len(s.sessions))
	for _, session := range s.sessions {
		summaries = append(summaries, session.Summarize())
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries
}

// persistLocked rewrites the whole store atomically. Callers hold the write
// lock.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPersistence, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create history dir: %v", ErrPersistence, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write temp file: %v", ErrPersistence, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: rename temp file: %v", ErrPersistence, err)
	}
	return nil
}
