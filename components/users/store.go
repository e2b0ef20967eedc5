// components/users/store.go
//
// In-memory user store.
//
// Context
// -------
// Users live in a slice guarded by a sync.RWMutex.  Reads (List, Search,
// Get) share the lock, Create takes it exclusively.  IDs are assigned
// sequentially.  Nothing survives a restart.
//
// The users_stored gauge tracks the slice length.

package users

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/yanizio/apidemo/internal/metrics"
)

// ErrEmailTaken is returned by Create when another user has the address.
var ErrEmailTaken = errors.New("users: email already registered")

// DefaultRole is given to users created through the API.
const DefaultRole = "viewer"

// User is one stored account.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is the input to Create.
type NewUser struct {
	Name  string
	Email string
	Age   *int
}

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	users  []User
	nextID int
	now    func() time.Time
}

// NewStore returns a store holding seed.  Seed IDs are kept; new users get
// IDs above the largest seeded one.
func NewStore(seed ...User) *Store {
	s := &Store{users: append([]User(nil), seed...), nextID: 1, now: time.Now}
	for _, u := range seed {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	metrics.UsersStored.Set(float64(len(s.users)))
	return s
}

// SeedUsers returns the demo data the service starts with.
func SeedUsers() []User {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "admin", CreatedAt: at},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "editor", CreatedAt: at},
		{ID: 3, Name: "Alice Johnson", Email: "alice@example.com", Role: "viewer", CreatedAt: at},
		{ID: 4, Name: "Bob Brown", Email: "bob@example.com", Role: "viewer", CreatedAt: at},
		{ID: 5, Name: "Carol White", Email: "carol@example.com", Role: "editor", CreatedAt: at},
	}
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// List returns one page of users in ID order plus the total count.  Pages
// are 1-based; a page past the end is empty.
func (s *Store) List(page, limit int) ([]User, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.users)
	start := (page - 1) * limit
	if page < 1 || limit < 1 || start >= total {
		return []User{}, total
	}
	end := min(start+limit, total)
	return append([]User(nil), s.users[start:end]...), total
}

// Search returns users whose name or email contains q, ignoring case.  A
// non-empty category must equal the user's role, also ignoring case.
func (s *Store) Search(q, category string) []User {
	q = strings.ToLower(strings.TrimSpace(q))
	category = strings.TrimSpace(category)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []User{}
	for _, u := range s.users {
		if category != "" && !strings.EqualFold(u.Role, category) {
			continue
		}
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}

// Get returns the user with id.
func (s *Store) Get(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Create stores a new user.  Emails are compared case-insensitively.
func (s *Store) Create(in NewUser) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return User{}, ErrEmailTaken
		}
	}

	u := User{
		ID:        s.nextID,
		Name:      name,
		Email:     email,
		Age:       in.Age,
		Role:      DefaultRole,
		CreatedAt: s.now().UTC(),
	}
	s.nextID++
	s.users = append(s.users, u)
	metrics.UsersStored.Set(float64(len(s.users)))
	return u, nil
}
