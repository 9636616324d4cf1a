package auth

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type userRecord struct {
	id           string
	passwordHash []byte
}

// MemoryIdentity is the identity provider used in mock mode: in-process
// accounts, JWT-backed sessions. Safe for concurrent use.
type MemoryIdentity struct {
	codec *TokenCodec

	mu     sync.Mutex
	users  map[string]userRecord
	active map[string]string
	nextID int
}

func NewMemoryIdentity(codec *TokenCodec) *MemoryIdentity {
	return &MemoryIdentity{
		codec:  codec,
		users:  make(map[string]userRecord),
		active: make(map[string]string),
		nextID: 1,
	}
}

func (m *MemoryIdentity) SignUp(ctx context.Context, creds Credentials) (*Session, error) {
	if len(creds.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if _, exists := m.users[creds.Email]; exists {
		m.mu.Unlock()
		return nil, ErrEmailTaken
	}
	id := "user-" + strconv.Itoa(m.nextID)
	m.nextID++
	m.users[creds.Email] = userRecord{id: id, passwordHash: hash}
	m.mu.Unlock()

	return m.issueSession(id, creds.Email)
}

func (m *MemoryIdentity) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	m.mu.Lock()
	record, exists := m.users[creds.Email]
	m.mu.Unlock()

	if !exists {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(record.passwordHash, []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return m.issueSession(record.id, creds.Email)
}

func (m *MemoryIdentity) SignOut(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.active[token]; !exists {
		return ErrInvalidSession
	}
	delete(m.active, token)
	return nil
}

func (m *MemoryIdentity) issueSession(userID, email string) (*Session, error) {
	token, expiresAt, err := m.codec.Issue(userID, email)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.active[token] = userID
	m.mu.Unlock()

	return &Session{
		User:      User{ID: userID, Email: email},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
