package model

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// UserSession one connected chat client
type UserSession struct {
	UserID        int64
	Username      string
	Conn          *websocket.Conn
	SessionID     string
	ClientIP      string
	LastHeartbeat time.Time
	MissedBeats   int
	mu            sync.RWMutex
}

// UpdateHeartbeat resets the heartbeat clock
func (s *UserSession) UpdateHeartbeat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastHeartbeat = time.Now()
	s.MissedBeats = 0
}

// IncrementMissedBeats counts a missed heartbeat
func (s *UserSession) IncrementMissedBeats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MissedBeats++
}

// ShouldBeCleaned true after three consecutive missed beats
func (s *UserSession) ShouldBeCleaned() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MissedBeats >= 3
}

// WriteMessage writes JSON to the connection.
// gorilla/websocket allows one concurrent writer, hence the lock.
func (s *UserSession) WriteMessage(message interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteJSON(message)
}
