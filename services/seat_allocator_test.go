package services_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/99xcafe/pos-backend/models"
	"github.com/99xcafe/pos-backend/services"
	"github.com/99xcafe/pos-backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupSeatDB migrates only the seats collection on an in-memory SQLite
func setupSeatDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Seat{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedSeats(db *gorm.DB, seats ...models.Seat) []models.Seat {
	for i := range seats {
		db.Create(&seats[i])
	}
	return seats
}

func TestReservePicksFirstFreeSeatsInStoreOrder(t *testing.T) {
	db := setupSeatDB(t)
	seats := seedSeats(db,
		models.Seat{Name: "A"},
		models.Seat{Name: "B"},
		models.Seat{Name: "C", IsReserved: true},
	)

	allocator := services.NewSeatAllocator(db)
	ids, err := allocator.Reserve(2)
	assert.NoError(t, err)
	assert.Equal(t, []uint{seats[0].ID, seats[1].ID}, ids)

	var reserved int64
	db.Model(&models.Seat{}).Where("is_reserved = ?", true).Count(&reserved)
	assert.EqualValues(t, 3, reserved)
}

func TestReserveFailsWhenNothingIsFree(t *testing.T) {
	db := setupSeatDB(t)
	seedSeats(db,
		models.Seat{Name: "A"},
		models.Seat{Name: "B"},
		models.Seat{Name: "C", IsReserved: true},
	)

	allocator := services.NewSeatAllocator(db)
	_, err := allocator.Reserve(2)
	assert.NoError(t, err)

	// Same request again: no seats left
	_, err = allocator.Reserve(2)
	var insufficient *services.InsufficientSeatsError
	assert.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 0, insufficient.Available)
	assert.Equal(t, 2, insufficient.Requested)
	assert.Contains(t, err.Error(), "Only 0 available.")
}

func TestReserveInsufficientLeavesSeatsUntouched(t *testing.T) {
	db := setupSeatDB(t)
	seedSeats(db,
		models.Seat{Name: "A"},
		models.Seat{Name: "B"},
	)

	allocator := services.NewSeatAllocator(db)
	_, err := allocator.Reserve(3)
	var insufficient *services.InsufficientSeatsError
	assert.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 2, insufficient.Available)

	var reserved int64
	db.Model(&models.Seat{}).Where("is_reserved = ?", true).Count(&reserved)
	assert.EqualValues(t, 0, reserved)
}

func TestReserveZeroSeats(t *testing.T) {
	db := setupSeatDB(t)
	seedSeats(db, models.Seat{Name: "A"})

	allocator := services.NewSeatAllocator(db)
	ids, err := allocator.Reserve(0)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReleaseSkipsMissingSeats(t *testing.T) {
	db := setupSeatDB(t)
	seats := seedSeats(db,
		models.Seat{Name: "A"},
		models.Seat{Name: "B"},
	)

	allocator := services.NewSeatAllocator(db)
	ids, err := allocator.Reserve(2)
	assert.NoError(t, err)

	// One id that no longer resolves must not break the release
	allocator.Release(append([]uint{9999}, ids...))

	for _, s := range seats {
		var seat models.Seat
		assert.NoError(t, db.First(&seat, s.ID).Error)
		assert.False(t, seat.IsReserved)
	}
}

func TestRestoreReclaimsReleasedSeats(t *testing.T) {
	db := setupSeatDB(t)
	seedSeats(db,
		models.Seat{Name: "A"},
		models.Seat{Name: "B"},
	)

	allocator := services.NewSeatAllocator(db)
	ids, err := allocator.Reserve(2)
	assert.NoError(t, err)

	allocator.Release(ids)
	allocator.Restore(ids)

	var reserved int64
	db.Model(&models.Seat{}).Where("is_reserved = ?", true).Count(&reserved)
	assert.EqualValues(t, 2, reserved)
}
