package storage

import (
	"context"
	"sort"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

// Directory is the in-memory roster. It is filled once by NewDirectory and
// never mutated afterwards, so lookups need no locking.
type Directory struct {
	byID   map[int]internal.UserProfile
	sorted []internal.UserProfile
}

// NewDirectory indexes profiles by user id. Later duplicates of an id are
// ignored; sources already reject them as row errors.
func NewDirectory(profiles []internal.UserProfile) *Directory {
	d := &Directory{byID: make(map[int]internal.UserProfile, len(profiles))}
	for _, p := range profiles {
		if _, dup := d.byID[p.UserID]; dup {
			continue
		}
		d.byID[p.UserID] = p
		d.sorted = append(d.sorted, p)
	}
	sort.Slice(d.sorted, func(i, j int) bool { return d.sorted[i].UserID < d.sorted[j].UserID })
	return d
}

// LoadDirectory reads src once and builds a Directory from it. Rejected rows
// are logged and skipped.
func LoadDirectory(ctx context.Context, src ProfileSource, logger internal.Logger) (*Directory, error) {
	res, err := src.LoadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, rowErr := range res.RowErrors {
		logger.Warnf("storage: skipped directory row: %v", rowErr)
	}
	return NewDirectory(res.Profiles), nil
}

// FindUserByID returns a copy of the profile, or ErrUserNotFound.
func (d *Directory) FindUserByID(ctx context.Context, id int) (*internal.UserProfile, error) {
	p, ok := d.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &p, nil
}

func (d *Directory) List(ctx context.Context) ([]internal.UserProfile, error) {
	out := make([]internal.UserProfile, len(d.sorted))
	copy(out, d.sorted)
	return out, nil
}

func (d *Directory) Len() int { return len(d.sorted) }

// IDRange reports the smallest and largest user ids. ok is false when the
// directory is empty.
func (d *Directory) IDRange() (min, max int, ok bool) {
	if len(d.sorted) == 0 {
		return 0, 0, false
	}
	return d.sorted[0].UserID, d.sorted[len(d.sorted)-1].UserID, true
}

var _ ProfileRepository = (*Directory)(nil)
