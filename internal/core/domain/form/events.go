package form

type Listener func(f Field)

type EventKind string

const (
	ValueChanged     EventKind = "value_changed"
	ErrorsChanged    EventKind = "errors_changed"
	ErrorTextChanged EventKind = "error_text_changed"
)

type Event struct {
	Kind  EventKind `json:"type"`
	Field Field     `json:"field"`
}

type channel struct {
	nextID    int
	listeners []registration
}

type registration struct {
	id       int
	listener Listener
}

func (c *channel) subscribe(l Listener) int {
	c.nextID++
	c.listeners = append(c.listeners, registration{id: c.nextID, listener: l})
	return c.nextID
}

func (c *channel) unsubscribe(id int) {
	for i, r := range c.listeners {
		if r.id == id {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return
		}
	}
}

// emit walks a snapshot so listeners may cancel subscriptions while being notified.
func (c *channel) emit(f Field) {
	listeners := c.listeners
	for _, r := range listeners {
		r.listener(f)
	}
}

type Subscription struct {
	cancel func()
}

func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}
