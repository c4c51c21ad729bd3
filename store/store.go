// Package store holds the storefront's session state: the design catalog,
// orders, the signed-in user, their cart, reviews and admin notifications.
//
// A Store is the only place this state is mutated. Every mutation runs to
// completion under one lock and then notifies subscribers synchronously,
// so HTTP handlers running on separate goroutines still observe a single
// logical session.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/stitchlink-api/models"
)

type ChangeKind string

const (
	ChangeLoaded       ChangeKind = "loaded"
	ChangeSession      ChangeKind = "session"
	ChangeCart         ChangeKind = "cart"
	ChangeOrderPlaced  ChangeKind = "order_placed"
	ChangeOrderStatus  ChangeKind = "order_status"
	ChangeDesign       ChangeKind = "design"
	ChangeReview       ChangeKind = "review"
	ChangeNotification ChangeKind = "notification"
)

// Change describes a completed mutation. Only the fields relevant to Kind
// are set.
type Change struct {
	Kind           ChangeKind         `json:"kind"`
	OrderID        string             `json:"orderId,omitempty"`
	Status         models.OrderStatus `json:"status,omitempty"`
	NotificationID string             `json:"notificationId,omitempty"`
	DesignID       string             `json:"designId,omitempty"`
	ReviewID       string             `json:"reviewId,omitempty"`
	At             time.Time          `json:"at"`
}

// Listener is called after a mutation has been applied and the store lock
// released, so it may read from the store.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	mu            sync.Mutex
	designs       []models.Design
	orders        []models.Order
	currentUser   *models.User
	cart          []models.CartItem
	reviews       []models.Review
	notifications []models.Notification
	ready         bool

	subsMu  sync.Mutex
	subs    []subscription
	nextSub int

	now   func() time.Time
	newID func(prefix string) string
}

type Option func(*Store)

// WithClock overrides the time source used for order dates and
// notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how order, notification and user ids are made.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New returns an empty store. Call Load to install the seed catalog.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: defaultID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultID(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// Subscribe registers fn for every subsequent Change. The returned func
// removes it; calling it more than once is harmless.
func (s *Store) Subscribe(fn Listener) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) emit(c Change) {
	if c.At.IsZero() {
		c.At = s.now()
	}

	s.subsMu.Lock()
	subs := append([]subscription(nil), s.subs...)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.fn(c)
	}
}

// Ready reports whether the seed catalog has been loaded.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Snapshot is a point-in-time copy of the whole session.
type Snapshot struct {
	Designs       []models.Design       `json:"designs"`
	Orders        []models.Order        `json:"orders"`
	CurrentUser   *models.User          `json:"currentUser"`
	Cart          []models.CartItem     `json:"cart"`
	Reviews       []models.Review       `json:"reviews"`
	Notifications []models.Notification `json:"notifications"`
	Loading       bool                  `json:"loading"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Designs:       cloneDesigns(s.designs),
		Orders:        cloneOrders(s.orders),
		Cart:          cloneCart(s.cart),
		Reviews:       append([]models.Review{}, s.reviews...),
		Notifications: append([]models.Notification{}, s.notifications...),
		Loading:       !s.ready,
	}
	if s.currentUser != nil {
		u := *s.currentUser
		snap.CurrentUser = &u
	}
	return snap
}

func cloneDesigns(in []models.Design) []models.Design {
	out := make([]models.Design, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

func cloneOrders(in []models.Order) []models.Order {
	out := make([]models.Order, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}

func cloneCart(in []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(in))
	for i, item := range in {
		item.Design = item.Design.Clone()
		out[i] = item
	}
	return out
}
