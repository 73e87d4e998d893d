package service

import (
	"crypto/subtle"
	"errors"
	"sync"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates the admin area behind a single fixed credential pair.
// Success sets an in-memory flag; there is no session token, no expiry and
// no lockout.
type AuthService interface {
	Login(username, password string) error
	Logout()
	IsAuthenticated() bool
}

type authService struct {
	mu            sync.RWMutex
	username      string
	password      string
	authenticated bool
}

// NewAuthService creates a new instance of AuthService with the configured
// admin credentials.
func NewAuthService(username, password string) AuthService {
	return &authService{username: username, password: password}
}

func (s *authService) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

func (s *authService) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

func (s *authService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}
