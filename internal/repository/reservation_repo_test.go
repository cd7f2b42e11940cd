package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookings/internal/database"
	"bookings/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create(&domain.Room{ID: 1, RoomName: "General's Quarters"}).Error)
	require.NoError(t, db.Create(&domain.Room{ID: 2, RoomName: "Major's Suite"}).Error)
	return db
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestReservationRepository_HasAvailability(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertBlock(ctx, 1, day("2030-05-10"), day("2030-05-12")))

	cases := []struct {
		name       string
		room       int64
		start, end string
		want       bool
	}{
		{"before block", 1, "2030-05-01", "2030-05-05", true},
		{"touching block start", 1, "2030-05-05", "2030-05-10", true},
		{"overlapping start", 1, "2030-05-08", "2030-05-11", false},
		{"inside block", 1, "2030-05-11", "2030-05-11", false},
		{"covering block", 1, "2030-05-01", "2030-05-20", false},
		{"touching block end", 1, "2030-05-12", "2030-05-14", true},
		{"other room", 2, "2030-05-08", "2030-05-11", true},
	}

	for _, tc := range cases {
		ok, err := repo.HasAvailability(ctx, tc.room, day(tc.start), day(tc.end))
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, ok, tc.name)
	}
}

func TestReservationRepository_CreateAddsRestriction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	res := &domain.Reservation{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		StartDate: day("2030-06-01"),
		EndDate:   day("2030-06-04"),
		RoomID:    2,
	}
	require.NoError(t, repo.Create(ctx, res))
	require.NotZero(t, res.ID)

	var restrictions []domain.RoomRestriction
	require.NoError(t, db.Find(&restrictions).Error)
	require.Len(t, restrictions, 1)
	assert.Equal(t, int64(2), restrictions[0].RoomID)
	assert.Equal(t, domain.RestrictionReservation, restrictions[0].RestrictionID)
	require.NotNil(t, restrictions[0].ReservationID)
	assert.Equal(t, res.ID, *restrictions[0].ReservationID)

	ok, err := repo.HasAvailability(ctx, 2, day("2030-06-02"), day("2030-06-03"))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Room)
	assert.Equal(t, "Major's Suite", got.Room.RoomName)
}

func TestReservationRepository_DeleteExpiredBlocks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertBlock(ctx, 1, day("2030-01-01"), day("2030-01-03")))
	require.NoError(t, repo.InsertBlock(ctx, 1, day("2030-03-01"), day("2030-03-03")))
	require.NoError(t, repo.Create(ctx, &domain.Reservation{
		FirstName: "Bob", LastName: "Jones", Email: "bob@example.com",
		StartDate: day("2030-01-05"), EndDate: day("2030-01-06"), RoomID: 1,
	}))

	n, err := repo.DeleteExpiredBlocks(ctx, day("2030-02-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var left int64
	require.NoError(t, db.Model(&domain.RoomRestriction{}).Count(&left).Error)
	assert.Equal(t, int64(2), left)
}

func TestRoomRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	room, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Major's Suite", room.RoomName)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rooms, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomRepository_Available(t *testing.T) {
	db := setupTestDB(t)
	rooms := NewRoomRepository(db)
	reservations := NewReservationRepository(db)
	ctx := context.Background()

	require.NoError(t, reservations.InsertBlock(ctx, 1, day("2030-05-10"), day("2030-05-12")))

	free, err := rooms.Available(ctx, day("2030-05-11"), day("2030-05-13"))
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, int64(2), free[0].ID)

	free, err = rooms.Available(ctx, day("2030-05-12"), day("2030-05-13"))
	require.NoError(t, err)
	assert.Len(t, free, 2)
}
