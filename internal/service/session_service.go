package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/model"
)

// ErrUserOffline returned when a push target has no live session
var ErrUserOffline = fmt.Errorf("user is offline")

const (
	heartbeatSweepInterval = 30 * time.Second
	heartbeatTimeout       = 60 * time.Second
)

// SessionService registry of connected chat clients
type SessionService struct {
	userSessions  map[int64]*model.UserSession // userId -> session
	sessionToUser map[string]int64             // sessionId -> userId
	mu            sync.RWMutex
	logger        *zap.Logger
}

// NewSessionService creates the registry and starts the heartbeat sweeper
func NewSessionService(logger *zap.Logger) *SessionService {
	s := &SessionService{
		userSessions:  make(map[int64]*model.UserSession),
		sessionToUser: make(map[string]int64),
		logger:        logger,
	}

	go s.heartbeatSweeper()

	return s
}

// Register registers a session, replacing any previous connection
// for the same user
func (s *SessionService) Register(userID int64, username string, conn *websocket.Conn, sessionID, clientIP string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.userSessions[userID]; ok {
		s.logger.Info("user reconnected, closing previous connection",
			zap.Int64("userId", userID),
			zap.String("oldSessionId", existing.SessionID))
		existing.Conn.Close()
		delete(s.sessionToUser, existing.SessionID)
	}

	session := &model.UserSession{
		UserID:        userID,
		Username:      username,
		Conn:          conn,
		SessionID:     sessionID,
		ClientIP:      clientIP,
		LastHeartbeat: time.Now(),
	}

	s.userSessions[userID] = session
	s.sessionToUser[sessionID] = userID

	s.logger.Info("session registered",
		zap.Int64("userId", userID),
		zap.String("sessionId", sessionID))
}

// Send pushes a message to a connected user
func (s *SessionService) Send(userID int64, message interface{}) error {
	s.mu.RLock()
	session, ok := s.userSessions[userID]
	s.mu.RUnlock()

	if !ok {
		s.logger.Warn("push skipped, user offline", zap.Int64("userId", userID))
		return ErrUserOffline
	}

	if err := session.WriteMessage(message); err != nil {
		s.logger.Error("push failed",
			zap.Int64("userId", userID),
			zap.Error(err))
		go s.RemoveByUserID(userID)
		return err
	}

	return nil
}

// Heartbeat records a heartbeat for the user
func (s *SessionService) Heartbeat(userID int64) bool {
	s.mu.RLock()
	session, ok := s.userSessions[userID]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	session.UpdateHeartbeat()
	return true
}

// RemoveBySessionID drops a session by its id
func (s *SessionService) RemoveBySessionID(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID, ok := s.sessionToUser[sessionID]; ok {
		delete(s.userSessions, userID)
		delete(s.sessionToUser, sessionID)
		s.logger.Info("session removed",
			zap.Int64("userId", userID),
			zap.String("sessionId", sessionID))
	}
}

// RemoveByUserID drops a user's session
func (s *SessionService) RemoveByUserID(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.userSessions[userID]; ok {
		delete(s.sessionToUser, session.SessionID)
		delete(s.userSessions, userID)
		s.logger.Info("session removed", zap.Int64("userId", userID))
	}
}

// OnlineCount number of connected users
func (s *SessionService) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.userSessions)
}

// heartbeatSweeper drops sessions after repeated missed heartbeats
func (s *SessionService) heartbeatSweeper() {
	ticker := time.NewTicker(heartbeatSweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()

		now := time.Now()
		for userID, session := range s.userSessions {
			if now.Sub(session.LastHeartbeat) <= heartbeatTimeout {
				continue
			}

			session.IncrementMissedBeats()

			if session.ShouldBeCleaned() {
				s.logger.Info("cleaning stale session",
					zap.Int64("userId", userID),
					zap.Int("missedBeats", session.MissedBeats))

				session.Conn.Close()
				delete(s.userSessions, userID)
				delete(s.sessionToUser, session.SessionID)
			} else {
				s.logger.Warn("missed heartbeat",
					zap.Int64("userId", userID),
					zap.Int("missedBeats", session.MissedBeats))
			}
		}

		s.mu.Unlock()
	}
}
