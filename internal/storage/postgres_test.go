package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows(RequiredColumns)
}

func TestPostgresSource_LoadProfiles(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := userRows().
		AddRow(1001, "Asha", "Rao", "Pune", "vegetarian", "Diabetes", "None", 190, "Tired").
		AddRow(1001, "Dup", "Row", "Pune", "vegan", "None", "None", 100, "Happy").
		AddRow(1002, "Ben", "Okafor", "Lagos", "vegan", "None", "None", "not-a-number", "Happy").
		AddRow(1003, "Chen", "Li", "Xi'an", "non-vegetarian", "None", "None", 75, "Neutral")
	mock.ExpectQuery(regexp.QuoteMeta(selectUsersSQL)).WillReturnRows(rows)

	src := NewPostgresSourceFromPool(mock, internal.NopLogger())
	res, err := src.LoadProfiles(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, res.Profiles, 2)
	assert.Equal(t, "Asha", res.Profiles[0].FirstName, "first row for a duplicate id wins")
	assert.Equal(t, 1003, res.Profiles[1].UserID)

	require.Len(t, res.RowErrors, 2)
	assert.Equal(t, 2, res.RowErrors[0].Line)
	assert.Contains(t, res.RowErrors[0].Error(), "duplicate user_id 1001")
	assert.Equal(t, 3, res.RowErrors[1].Line)
}

func TestPostgresSource_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("relation \"users\" does not exist")
	mock.ExpectQuery(regexp.QuoteMeta(selectUsersSQL)).WillReturnError(boom)

	src := NewPostgresSourceFromPool(mock, internal.NopLogger())
	_, err = src.LoadProfiles(context.Background())
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_FeedsDirectory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersSQL)).WillReturnRows(userRows().
		AddRow(1005, "Vik", "Singh", "Jaipur", "non-vegetarian", "Hypertension", "Back pain", 210, "Anxious"))

	dir, err := LoadDirectory(context.Background(), NewPostgresSourceFromPool(mock, internal.NopLogger()), internal.NopLogger())
	require.NoError(t, err)
	p, err := dir.FindUserByID(context.Background(), 1005)
	require.NoError(t, err)
	assert.Equal(t, 210, p.LatestCGM)
}
