package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/s-204-cmd/Scholars-spotlight-india/database"
	"github.com/s-204-cmd/Scholars-spotlight-india/model"
)

// ErrInvalidCredentials is returned by Login when the email/password pair is
// not in the demo credential table.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionService is the identity store: it resolves login/signup against the
// fixed demo credential table, holds the single current session, and persists
// it as one JSON record. Authentication is mock by contract; there is no
// hashing, lockout, or multi-session support.
type SessionService struct {
	mu    sync.Mutex
	store database.Storage
	user  *model.User
	ready bool
}

// NewSessionService creates a new session service
func NewSessionService(store database.Storage) *SessionService {
	return &SessionService{store: store}
}

// Restore loads the persisted current-user record, if any. It must complete
// before the server starts accepting requests; until then the session is not
// ready and callers must not act on authentication state.
func (s *SessionService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user model.User
	err := s.store.GetJSON(ctx, database.KeyCurrentUser, &user)
	switch {
	case err == nil:
		s.user = &user
	case errors.Is(err, database.ErrNotFound):
		// No persisted session: start unauthenticated.
	default:
		// Unreadable session record: best-effort contract, start unauthenticated.
		log.Warnf("session record unreadable, starting unauthenticated: %v", err)
	}

	s.ready = true
	return nil
}

// Ready reports whether Restore has completed.
func (s *SessionService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Login checks the credentials against the fixed demo table. On a match the
// matched user becomes the current session and is persisted. On a mismatch the
// previous session, in memory and persisted, is left untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range database.DemoAccounts() {
		if account.User.Email == email && account.Password == password {
			user := account.User.Clone()
			if err := s.store.SetJSON(ctx, database.KeyCurrentUser, user); err != nil {
				return model.User{}, err
			}
			s.user = &user
			return user.Clone(), nil
		}
	}

	return model.User{}, ErrInvalidCredentials
}

// Signup creates a new user and makes it the current session. It always
// succeeds: no duplicate-email check and no password rules. The password is
// accepted for interface parity and discarded.
func (s *SessionService) Signup(ctx context.Context, profile model.SignupProfile, password string) (model.User, error) {
	_ = password // never stored or verified; mock registration

	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.User{
		ID:                  "user-" + uuid.NewString(),
		Name:                profile.Name,
		Email:               profile.Email,
		Role:                model.RoleUser,
		ProfilePicture:      avatarURL(profile.Name),
		AcademicBackground:  profile.AcademicBackground,
		Percentage:          profile.Percentage,
		Stream:              profile.Stream,
		Age:                 profile.Age,
		Gender:              profile.Gender,
		ShortlistedColleges: []string{},
	}

	if err := s.store.SetJSON(ctx, database.KeyCurrentUser, user); err != nil {
		return model.User{}, err
	}
	s.user = &user
	return user.Clone(), nil
}

// Logout clears the current session and removes the persisted record.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.store.Delete(ctx, database.KeyCurrentUser)
}

// Current returns a copy of the current user, if a session is active.
func (s *SessionService) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return model.User{}, false
	}
	return s.user.Clone(), true
}

// IsAuthenticated reports whether a current user is set.
func (s *SessionService) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// SaveUser persists a mutated current-user record. Shortlist changes made by
// the catalog store flow through here so the session copy and the persisted
// record stay in sync.
func (s *SessionService) SaveUser(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := user.Clone()
	if err := s.store.SetJSON(ctx, database.KeyCurrentUser, saved); err != nil {
		return err
	}
	s.user = &saved
	return nil
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(name, " ", "+") + "&background=8E793E&color=fff"
}
