package lut

// Subscribe registers fn to be called synchronously after every change to
// the table mapping. A released table accepts no observers and returns 0.
func (t *LookupTable) Subscribe(fn func()) SubscriptionID {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.released || fn == nil {
		return 0
	}
	t.nextID++
	t.observers = append(t.observers, observer{id: t.nextID, fn: fn})
	return t.nextID
}

// Unsubscribe removes the observer registered under id and reports whether
// it was present
func (t *LookupTable) Unsubscribe(id SubscriptionID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, o := range t.observers {
		if o.id == id {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Observers returns the number of registered observers
func (t *LookupTable) Observers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.observers)
}

// Modified notifies every observer, in subscription order. Observers run
// without the lock held, so they may read the table or re-subscribe.
func (t *LookupTable) Modified() {
	t.mu.Lock()
	fns := make([]func(), len(t.observers))
	for i, o := range t.observers {
		fns[i] = o.fn
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Release marks the table destroyed and drops all observers. Bindings that
// still point at a released table treat it as gone.
func (t *LookupTable) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.released = true
	t.observers = nil
}

// Released reports whether Release has been called
func (t *LookupTable) Released() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released
}
