package ask

// Guard decides whether an event fires for an observed key. A guard matches
// when the key is equal to Key and Predicate, if set, returns true for the
// current state. Predicates must not modify the state.
type Guard[T any] struct {
	Key       Key
	Predicate func(*T) bool
}

// NewGuard creates a guard. A nil predicate matches on the key alone.
func NewGuard[T any](key Key, predicate func(*T) bool) Guard[T] {
	return Guard[T]{Key: key, Predicate: predicate}
}

// Test reports whether the guard matches key for state.
func (g Guard[T]) Test(key Key, state *T) bool {
	if key != g.Key {
		return false
	}
	if g.Predicate != nil {
		return g.Predicate(state)
	}
	return true
}

type event[T any] struct {
	guards   []Guard[T]
	callback func(*T)
}

// Dispatcher holds predicate-gated callbacks over a state of type T.
//
// Each guard of an event is tested on its own: when several guards of the
// same event match one key, the callback runs once per matching guard.
// Callbacks get exclusive access to the state and must not call OnChange.
type Dispatcher[T any] struct {
	events []event[T]
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{}
}

// AddEvent registers a callback behind a single guard.
func (d *Dispatcher[T]) AddEvent(guard Guard[T], callback func(*T)) {
	d.AddEventGuards([]Guard[T]{guard}, callback)
}

// AddEventGuards registers a callback behind several guards.
func (d *Dispatcher[T]) AddEventGuards(guards []Guard[T], callback func(*T)) {
	d.events = append(d.events, event[T]{
		guards:   append([]Guard[T](nil), guards...),
		callback: callback,
	})
}

// Len returns the number of registered events.
func (d *Dispatcher[T]) Len() int {
	return len(d.events)
}

// OnChange runs the callbacks triggered by key and returns how many times a
// callback was invoked.
func (d *Dispatcher[T]) OnChange(key Key, state *T) int {
	fired := 0
	for _, ev := range d.events {
		for _, guard := range ev.guards {
			if guard.Test(key, state) {
				ev.callback(state)
				fired++
			}
		}
	}
	return fired
}
