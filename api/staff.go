package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-client/localstore"
	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// AuthFailureHandler runs after a 401 has cleared the stored
// credentials. The caller decides what "go to login" means for its
// surface; the gateway itself performs no navigation.
type AuthFailureHandler func()

// StaffClient attaches the stored bearer token to every request. Any
// 401 clears the token and cached profile exactly once and invokes
// the failure handler, so staff calls fail closed.
type StaffClient struct {
	*Client
	store         *localstore.Store
	onAuthFailure AuthFailureHandler

	mu        sync.Mutex
	loggedOut bool
}

func NewStaffClient(baseURL string, store *localstore.Store, onAuthFailure AuthFailureHandler) *StaffClient {
	s := &StaffClient{
		Client:        newClient(baseURL),
		store:         store,
		onAuthFailure: onAuthFailure,
	}
	s.Client.attach = s.attachToken
	s.Client.onUnauthorized = s.handleUnauthorized
	return s
}

func (s *StaffClient) attachToken(req *http.Request) {
	if token, ok := s.store.Get(localstore.KeyAuthToken); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// handleUnauthorized clears credentials once per login. Concurrent
// 401s from racing calls must not fire the handler twice.
func (s *StaffClient) handleUnauthorized() {
	s.mu.Lock()
	if s.loggedOut {
		s.mu.Unlock()
		return
	}
	s.loggedOut = true
	s.mu.Unlock()

	s.store.Delete(localstore.KeyAuthToken)
	s.store.Delete(localstore.KeyUserProfile)
	utils.ErrorLogger.Println("staff client: unauthorized, cleared stored credentials")

	if s.onAuthFailure != nil {
		s.onAuthFailure()
	}
}

// Login authenticates and persists the token plus the profile cache.
func (s *StaffClient) Login(ctx context.Context, email, password string) (models.User, error) {
	result, err := s.Client.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	s.loggedOut = false
	s.mu.Unlock()

	s.store.Put(localstore.KeyAuthToken, result.Token)
	if raw, err := json.Marshal(result.User); err == nil {
		s.store.Put(localstore.KeyUserProfile, string(raw))
	}
	return result.User, nil
}

// Logout drops the stored token and profile without calling the
// backend.
func (s *StaffClient) Logout() {
	s.mu.Lock()
	s.loggedOut = true
	s.mu.Unlock()

	s.store.Delete(localstore.KeyAuthToken)
	s.store.Delete(localstore.KeyUserProfile)
}

// HasValidToken reports whether a token is stored and its exp claim
// has not passed. Surfaces check this before starting so an already
// stale token fails to the login screen without a round trip.
func (s *StaffClient) HasValidToken() bool {
	token, ok := s.store.Get(localstore.KeyAuthToken)
	if !ok || token == "" {
		return false
	}
	return !utils.TokenExpired(token, time.Now())
}

// CachedProfile returns the locally cached user profile, if any.
func (s *StaffClient) CachedProfile() (models.User, bool) {
	raw, ok := s.store.Get(localstore.KeyUserProfile)
	if !ok {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		utils.ErrorLogger.Printf("staff client: corrupt cached profile: %v", err)
		return models.User{}, false
	}
	return user, true
}
