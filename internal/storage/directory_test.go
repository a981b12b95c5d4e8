package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

type stubSource struct {
	res LoadResult
	err error
}

func (s stubSource) LoadProfiles(ctx context.Context) (LoadResult, error) { return s.res, s.err }

func TestDirectory_FindUserByID(t *testing.T) {
	d := NewDirectory([]internal.UserProfile{
		{UserID: 1002, FirstName: "Ben"},
		{UserID: 1001, FirstName: "Asha"},
	})
	ctx := context.Background()

	p, err := d.FindUserByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.FirstName)

	_, err = d.FindUserByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDirectory_ReturnsCopies(t *testing.T) {
	d := NewDirectory([]internal.UserProfile{{UserID: 1001, FirstName: "Asha"}})
	ctx := context.Background()

	p, _ := d.FindUserByID(ctx, 1001)
	p.FirstName = "Changed"
	again, _ := d.FindUserByID(ctx, 1001)
	assert.Equal(t, "Asha", again.FirstName)
}

func TestDirectory_ListSortedAndRange(t *testing.T) {
	d := NewDirectory([]internal.UserProfile{{UserID: 1003}, {UserID: 1001}, {UserID: 1002}, {UserID: 1001, FirstName: "dup"}})
	list, err := d.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 1001, list[0].UserID)
	assert.Empty(t, list[0].FirstName)
	assert.Equal(t, 1003, list[2].UserID)

	lo, hi, ok := d.IDRange()
	assert.True(t, ok)
	assert.Equal(t, 1001, lo)
	assert.Equal(t, 1003, hi)

	_, _, ok = NewDirectory(nil).IDRange()
	assert.False(t, ok)
}

func TestLoadDirectory(t *testing.T) {
	src := stubSource{res: LoadResult{
		Profiles:  []internal.UserProfile{{UserID: 1001}},
		RowErrors: []RowError{{Line: 3, Err: errors.New("bad")}},
	}}
	d, err := LoadDirectory(context.Background(), src, internal.NopLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())

	_, err = LoadDirectory(context.Background(), stubSource{err: errors.New("boom")}, internal.NopLogger())
	assert.Error(t, err)
}
