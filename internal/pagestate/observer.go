package pagestate

// Observer receives a snapshot after every state change.
type Observer interface {
	StateChanged(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// StateChanged implements Observer.
func (f ObserverFunc) StateChanged(snap Snapshot) {
	f(snap)
}

type subscription struct {
	observer Observer
}

// Subscribe registers o and returns a function that removes it.
// Observers are called synchronously in subscription order.
func (s *State) Subscribe(o Observer) (cancel func()) {
	sub := &subscription{observer: o}
	s.observers = append(s.observers, sub)
	return func() {
		for i, existing := range s.observers {
			if existing == sub {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, sub := range append([]*subscription(nil), s.observers...) {
		sub.observer.StateChanged(snap)
	}
}
