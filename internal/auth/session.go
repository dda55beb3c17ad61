package auth

import (
	"sync"

	"github.com/archilink/jobboard/internal/entities"
	"github.com/archilink/jobboard/internal/events"
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

// Session mirrors the identity provider's auth state. It subscribes to the
// bus once and treats every event as a full identity replacement: operations
// started under a previous identity must not see the new one as theirs.
type Session struct {
	mu   sync.RWMutex
	user *entities.Identity
}

func NewSession(bus EventBus.Bus) (*Session, error) {
	s := &Session{}
	if err := bus.Subscribe(events.AuthStateChangedTopic, s.onAuthStateChanged); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) onAuthStateChanged(event events.AuthStateChanged) {
	s.mu.Lock()
	s.user = event.User
	s.mu.Unlock()

	if event.User == nil {
		log.Info("auth state changed: signed out")
	} else {
		log.Infof("auth state changed: user %v (%v)", event.User.UserID, event.User.Role)
	}
}

// CurrentUser returns a copy of the active identity, or false when nobody
// is signed in.
func (s *Session) CurrentUser() (entities.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return entities.Identity{}, false
	}
	return *s.user, true
}
