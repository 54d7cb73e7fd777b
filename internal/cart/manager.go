package cart

import (
	"fmt"
	"sync"

	"github.com/asaskevich/EventBus"
	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"

	"motomart/internal/domain"
)

const topicChanged = "cart.changed"

var (
	bucketCarts = []byte("carts")
	bucketPrefs = []byte("prefs")

	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Resolver maps a product id back to the catalog entry when a snapshot is
// restored. Lines whose product left the catalog are dropped.
type Resolver func(id string) (*domain.Product, bool)

type snapLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Manager hands out one Store per session id and keeps snapshots in a
// local bbolt file so carts survive a restart. Every store mutation is
// published on an event bus; the bbolt persister is the built-in
// subscriber.
type Manager struct {
	mu      sync.Mutex
	db      *bolt.DB
	bus     EventBus.Bus
	resolve Resolver
	stores  map[string]*Store
}

func NewManager(path string, resolve Resolver) (*Manager, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("cart: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketCarts); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketPrefs)
		return err
	})
	if err != nil {
		return nil, err
	}

	m := &Manager{
		db:      db,
		bus:     EventBus.New(),
		resolve: resolve,
		stores:  make(map[string]*Store),
	}
	if err := m.bus.Subscribe(topicChanged, m.persist); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) Close() error { return m.db.Close() }

// Subscribe registers an extra observer for cart changes. The handler
// receives the session id.
func (m *Manager) Subscribe(fn func(sid string)) error {
	return m.bus.Subscribe(topicChanged, fn)
}

// Get returns the session's store, restoring it from the snapshot file on
// first touch.
func (m *Manager) Get(sid string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sid]; ok {
		return s
	}
	s := m.restore(sid)
	s.onChange = func() { m.bus.Publish(topicChanged, sid) }
	m.stores[sid] = s
	return s
}

func (m *Manager) restore(sid string) *Store {
	s := NewStore()
	var raw []byte
	_ = m.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketCarts).Get([]byte(sid)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return s
	}
	var snap []snapLine
	if err := json.Unmarshal(raw, &snap); err != nil {
		return s
	}
	for _, l := range snap {
		if l.Qty < 1 {
			continue
		}
		if p, ok := m.resolve(l.ProductID); ok {
			s.lines = append(s.lines, Line{Product: p, Qty: l.Qty})
		}
	}
	return s
}

func (m *Manager) persist(sid string) {
	m.mu.Lock()
	s, ok := m.stores[sid]
	m.mu.Unlock()
	if !ok {
		return
	}
	lines := s.Lines()
	snap := make([]snapLine, 0, len(lines))
	for _, l := range lines {
		snap = append(snap, snapLine{ProductID: l.Product.ID, Qty: l.Qty})
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	_ = m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCarts).Put([]byte(sid), raw)
	})
}

// Theme returns the session's stored theme preference, empty if unset.
func (m *Manager) Theme(sid string) string {
	var theme string
	_ = m.db.View(func(tx *bolt.Tx) error {
		theme = string(tx.Bucket(bucketPrefs).Get([]byte(sid)))
		return nil
	})
	return theme
}

// SetTheme stores the single per-session preference value.
func (m *Manager) SetTheme(sid, theme string) error {
	return m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPrefs).Put([]byte(sid), []byte(theme))
	})
}
