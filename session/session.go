package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/go-boarding-client/token/jwt"
	"github.com/jrsteele09/go-boarding-client/tokenstore"
	"github.com/rs/zerolog/log"
)

// Observer is called after the identity changes. authenticated is false after a logout.
type Observer func(identity Identity, authenticated bool)

type subscription struct {
	id       uint64
	observer Observer
}

// Core holds at most one Identity and is the only writer of the token store.
// Construct one per application and hand it to the components that need it.
type Core struct {
	store    tokenstore.Store
	verifier jwt.Verifier

	mu       sync.RWMutex
	identity *Identity

	observersLock sync.Mutex
	observers     []subscription
	nextID        uint64
}

type Option func(*Core)

// WithVerifier makes Initialize and Login reject tokens the verifier does not accept.
// Without one the Core only decodes.
func WithVerifier(verifier jwt.Verifier) Option {
	return func(c *Core) {
		c.verifier = verifier
	}
}

func New(store tokenstore.Store, opts ...Option) *Core {
	c := &Core{store: store}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode builds an Identity from rawToken without storing or publishing it
func (c *Core) Decode(rawToken string) (Identity, error) {
	claims, err := jwt.Decode(rawToken)
	if err != nil {
		return Identity{}, err
	}
	return identityFromClaims(rawToken, claims), nil
}

// Initialize restores the identity from the token store. It is called once at start up.
// A missing or undecodable token leaves the session unauthenticated.
func (c *Core) Initialize(ctx context.Context) (Identity, bool) {
	rawToken, ok := c.store.Get()
	if !ok {
		return Identity{}, false
	}

	identity, err := c.decodeAndVerify(ctx, rawToken)
	if err != nil {
		log.Warn().Err(err).Msg("Stored token rejected, starting unauthenticated")
		return Identity{}, false
	}

	c.publish(&identity)
	return identity, true
}

// Login stores a freshly issued token and publishes its identity.
// On error nothing is stored and the previous identity is kept.
func (c *Core) Login(ctx context.Context, rawToken string) (Identity, error) {
	identity, err := c.decodeAndVerify(ctx, rawToken)
	if err != nil {
		return Identity{}, fmt.Errorf("[session Login] %w", err)
	}

	c.store.Set(rawToken)
	c.publish(&identity)
	return identity, nil
}

// Logout clears the stored token and the identity
func (c *Core) Logout() {
	c.store.Clear()
	c.publish(nil)
}

// CurrentIdentity returns the last published identity
func (c *Core) CurrentIdentity() (Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return Identity{}, false
	}
	return *c.identity, true
}

func (c *Core) IsAuthenticated() bool {
	_, ok := c.CurrentIdentity()
	return ok
}

// Subscribe registers an observer for identity changes. The returned func removes it.
func (c *Core) Subscribe(observer Observer) (unsubscribe func()) {
	c.observersLock.Lock()
	defer c.observersLock.Unlock()

	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, subscription{id: id, observer: observer})

	return func() {
		c.observersLock.Lock()
		defer c.observersLock.Unlock()
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Core) decodeAndVerify(ctx context.Context, rawToken string) (Identity, error) {
	identity, err := c.Decode(rawToken)
	if err != nil {
		return Identity{}, err
	}
	if c.verifier != nil {
		if err := c.verifier.Verify(ctx, rawToken); err != nil {
			return Identity{}, err
		}
	}
	return identity, nil
}

// publish swaps the identity, then notifies observers outside the lock
func (c *Core) publish(identity *Identity) {
	c.mu.Lock()
	c.identity = identity
	c.mu.Unlock()

	c.observersLock.Lock()
	observers := make([]Observer, 0, len(c.observers))
	for _, s := range c.observers {
		observers = append(observers, s.observer)
	}
	c.observersLock.Unlock()

	var current Identity
	if identity != nil {
		current = *identity
	}
	for _, observer := range observers {
		observer(current, identity != nil)
	}
}
