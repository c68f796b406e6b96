package nodestyle

import "sync"

// Collection holds the styles an editor scene draws with.
// Each editor owns its Collection; there is no package-level instance.
//
// Collection is safe for concurrent use.
type Collection struct {
	mu         sync.RWMutex
	connection *ConnectionStyle
	opts       []Option
}

// NewCollection creates a Collection with a default connection style.
// opts are applied to every connection style the collection creates.
func NewCollection(opts ...Option) *Collection {
	return &Collection{
		connection: New(opts...),
		opts:       opts,
	}
}

// ConnectionStyle returns the current connection style.
func (c *Collection) ConnectionStyle() *ConnectionStyle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connection
}

// SetConnectionStyle replaces the current connection style.
// A nil style resets to the defaults.
//
// Type colors belong to a style, so replacing it starts a fresh palette.
func (c *Collection) SetConnectionStyle(s *ConnectionStyle) {
	if s == nil {
		s = New(c.opts...)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connection = s
}

// SetConnectionStyleJSON replaces the current connection style with the
// defaults overlaid by text. On error the current style is kept.
func (c *Collection) SetConnectionStyleJSON(text string) error {
	s, err := NewFromJSON(text, c.opts...)
	if err != nil {
		return err
	}
	c.SetConnectionStyle(s)
	return nil
}
