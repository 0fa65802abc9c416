package credential

import (
	"regexp"
	"sync"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service owns the credential record and the "logged in" signal.
//
// Components that need to react to auth changes subscribe to the service
// instead of watching storage: every successful mutation (register, login,
// logout, teardown) invokes all subscribers.
type Service struct {
	repo Repository

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, subs: map[int]func(){}}
}

// Register validates and stores a new credential record, overwriting any
// previous one, and opens a session with a fresh 32-character token.
// Validation runs in form order; the first failure wins and nothing is
// stored. Registering the email that is already stored fails and leaves the
// existing record, token included, untouched.
func (s *Service) Register(name, email, password, confirmPassword string) (Record, error) {
	if len(name) < 2 {
		return Record{}, ErrInvalidName
	}
	if !emailPattern.MatchString(email) {
		return Record{}, ErrInvalidEmail
	}

	stored, err := s.repo.Load()
	if err != nil {
		return Record{}, err
	}
	if stored.Email != "" && stored.Email == email {
		return Record{}, ErrEmailExists
	}

	if len(password) < 6 {
		return Record{}, ErrPasswordTooShort
	}
	if password != confirmPassword {
		return Record{}, ErrPasswordMismatch
	}

	rec := Record{
		Email:    email,
		Password: password,
		Name:     name,
		Token:    newRegistrationToken(),
	}
	if err := s.repo.Save(rec); err != nil {
		return Record{}, err
	}

	s.notify()
	return rec, nil
}

// Login checks the submitted credentials against the stored record and, on
// an exact match, opens a session with a fresh token. Any failure leaves
// stored state exactly as it was.
func (s *Service) Login(email, password string) (Record, error) {
	if email == "" || password == "" {
		return Record{}, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return Record{}, ErrInvalidEmail
	}

	stored, err := s.repo.Load()
	if err != nil {
		return Record{}, err
	}
	if stored.Email == "" || stored.Password == "" {
		return Record{}, ErrNoAccount
	}
	if email != stored.Email || password != stored.Password {
		return Record{}, ErrInvalidCredentials
	}

	token := newLoginToken()
	if err := s.repo.SetToken(token); err != nil {
		return Record{}, err
	}
	stored.Token = token

	s.notify()
	return stored, nil
}

// Logout ends the session by removing the token; the account fields stay so
// the user can log back in.
func (s *Service) Logout() error {
	if err := s.repo.ClearToken(); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Teardown removes the whole record: token, email, password and name.
func (s *Service) Teardown() error {
	if err := s.repo.Clear(); err != nil {
		return err
	}
	s.notify()
	return nil
}

// IsAuthenticated reports whether a session token is present.
func (s *Service) IsAuthenticated() bool {
	rec, err := s.repo.Load()
	if err != nil {
		return false
	}
	return rec.Token != ""
}

// Current returns the stored record.
func (s *Service) Current() (Record, error) {
	return s.repo.Load()
}

// Subscribe registers fn to run after every credential mutation and returns
// an unsubscribe func.
func (s *Service) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Service) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
