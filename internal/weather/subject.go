package weather

import (
	"log"
	"sync"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// Subject keeps observers in registration order and broadcasts to them
type Subject struct {
	observers []Observer
	mu        sync.RWMutex
}

// NewSubject creates a subject with no observers
func NewSubject() *Subject {
	return &Subject{
		observers: make([]Observer, 0),
	}
}

// Register adds an observer. Registering an ID that is already present
// replaces the earlier observer in place.
func (s *Subject) Register(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.observers {
		if existing.ID() == o.ID() {
			s.observers[i] = o
			log.Printf("Subject: Replaced observer %s", o.ID())
			return
		}
	}

	s.observers = append(s.observers, o)
	log.Printf("Subject: Registered observer %s", o.ID())
}

// Remove drops the observer with the given ID, if present
func (s *Subject) Remove(observerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.observers {
		if o.ID() != observerID {
			continue
		}
		s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
		log.Printf("Subject: Removed observer %s", observerID)
		return
	}
}

// Observers returns the registered observer IDs in notification order
func (s *Subject) Observers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.observers))
	for _, o := range s.observers {
		ids = append(ids, o.ID())
	}
	return ids
}

// Notify sends u to every observer registered when the call started.
// Observers may register or remove observers (themselves included) from
// inside Update; the change takes effect on the next Notify.
func (s *Subject) Notify(u Update) error {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		if err := o.Update(u); err != nil {
			return apperr.Wrapf(err, "observer %s failed", o.ID()).WithMeta("observer_id", o.ID())
		}
	}

	return nil
}
