package repository

import (
	"errors"
	"project/backend/models"
	"sync"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already taken")
)

// UserStore abstracts user persistence so controllers can run against
// postgres in production and an in-memory store in tests.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
}

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Create(user *models.User) error {
	_, err := s.FindByUsername(user.Username)
	if err == nil {
		return ErrDuplicateUser
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	if err := s.DB.Create(user).Error; err != nil {
		// A unique violation can still happen here: a duplicate email,
		// or a concurrent register winning the race after the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// MemoryUserStore keeps users in a process-local map. Used in tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) FindByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *MemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return ErrDuplicateUser
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicateUser
		}
	}
	user.ID = uint(len(s.users) + 1)
	s.users[user.Username] = *user
	return nil
}
