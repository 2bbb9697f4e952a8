// Package localstore is the client's durable key-value storage: the
// serialized cart, the staff bearer token and the cached user profile
// all live here, in a single-table sqlite database.
package localstore

import (
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restaurant-client/utils"
)

// Well-known keys.
const (
	KeyCart        = "restaurant_client_cart"
	KeyAuthToken   = "staff_auth_token"
	KeyUserProfile = "staff_user_profile"
	KeyDeviceID    = "device_id"
)

type Record struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Store persists string values by key. When the sqlite file cannot be
// opened it degrades to an in-memory map so the client still runs;
// values then only last for the process lifetime.
type Store struct {
	db  *gorm.DB
	mu  sync.RWMutex
	mem map[string]string
}

// Open opens (or creates) the store at path. Open never fails: on a
// database error it logs and returns a memory-only store.
func Open(path string) *Store {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		utils.ErrorLogger.Printf("localstore: open %s failed, falling back to memory: %v", path, err)
		return &Store{mem: make(map[string]string)}
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		utils.ErrorLogger.Printf("localstore: migrate failed, falling back to memory: %v", err)
		return &Store{mem: make(map[string]string)}
	}
	return &Store{db: db}
}

// OpenMemory returns a store that never touches disk. Used by tests
// and as the fallback path of Open.
func OpenMemory() *Store {
	return &Store{mem: make(map[string]string)}
}

// Get returns the stored value and whether the key was present.
// A missing key is not an error.
func (s *Store) Get(key string) (string, bool) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		v, ok := s.mem[key]
		return v, ok
	}
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			utils.ErrorLogger.Printf("localstore: get %s: %v", key, err)
		}
		return "", false
	}
	return rec.Value, true
}

// Put writes the value, replacing any previous one.
func (s *Store) Put(key, value string) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.mem[key] = value
		return
	}
	rec := Record{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.Save(&rec).Error; err != nil {
		utils.ErrorLogger.Printf("localstore: put %s: %v", key, err)
	}
}

// Delete removes the key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.mem, key)
		return
	}
	if err := s.db.Delete(&Record{}, "key = ?", key).Error; err != nil {
		utils.ErrorLogger.Printf("localstore: delete %s: %v", key, err)
	}
}
