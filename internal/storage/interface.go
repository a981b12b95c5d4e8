package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

var (
	ErrUserNotFound    = errors.New("storage: user not found")
	ErrSessionNotFound = errors.New("storage: session not found")
)

// RequiredColumns lists the directory columns every source must provide.
var RequiredColumns = []string{
	"user_id", "first_name", "last_name", "city", "dietary_preference",
	"medical_conditions", "physical_limitations", "latest_cgm", "mood",
}

// RowError describes one directory row that was rejected during loading.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

type LoadResult struct {
	Profiles  []internal.UserProfile
	RowErrors []RowError
}

// ProfileSource produces the user roster. It is read once at startup.
type ProfileSource interface {
	LoadProfiles(ctx context.Context) (LoadResult, error)
}

type ProfileRepository interface {
	FindUserByID(ctx context.Context, id int) (*internal.UserProfile, error)
	List(ctx context.Context) ([]internal.UserProfile, error)
}

// UpdateFunc mutates a copy of a stored session. It may run more than once
// when a store retries after a conflicting write.
type UpdateFunc func(s *internal.Session) error

// SessionStore holds active sessions. Update is an atomic read-modify-write:
// concurrent updates to one session never overwrite each other.
type SessionStore interface {
	Create(ctx context.Context, s *internal.Session) error
	Get(ctx context.Context, id string) (*internal.Session, error)
	Update(ctx context.Context, id string, fn UpdateFunc) error
	Delete(ctx context.Context, id string) error
}
