package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/99xcafe/pos-backend/models"
	"github.com/99xcafe/pos-backend/services"
)

func setupItemDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Item{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedLatte(t *testing.T, db *gorm.DB) models.Item {
	category := models.Category{Name: "Beverages"}
	assert.NoError(t, db.Create(&category).Error)
	item := models.Item{Name: "Latte", Price: 4.99, CategoryID: category.ID}
	assert.NoError(t, db.Create(&item).Error)
	return item
}

func TestPriceComputesLineAndOrderTotals(t *testing.T) {
	db := setupItemDB(t)
	latte := seedLatte(t, db)

	pricer := services.NewOrderPricer(db)
	lines, total, err := pricer.Price([]services.LineInput{
		{ItemID: models.FlexID(latte.ID), Quantity: float64(2)},
	})
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, latte.ID, lines[0].ItemID)
	assert.Equal(t, "Latte", lines[0].ItemName)
	assert.InDelta(t, 4.99, lines[0].Price, 1e-9)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 9.98, lines[0].LineTotal, 1e-9)
	assert.InDelta(t, 9.98, total, 1e-9)
}

func TestPriceUnknownItemRejectsWholeOrder(t *testing.T) {
	db := setupItemDB(t)
	latte := seedLatte(t, db)

	pricer := services.NewOrderPricer(db)
	lines, total, err := pricer.Price([]services.LineInput{
		{ItemID: models.FlexID(latte.ID), Quantity: float64(1)},
		{ItemID: models.FlexID(999), Quantity: float64(1)},
	})
	var unknown *services.UnknownItemError
	assert.True(t, errors.As(err, &unknown))
	assert.EqualValues(t, 999, unknown.ItemID)
	assert.Nil(t, lines)
	assert.Zero(t, total)
}

func TestPriceCoercesQuantities(t *testing.T) {
	db := setupItemDB(t)
	latte := seedLatte(t, db)
	id := models.FlexID(latte.ID)
	pricer := services.NewOrderPricer(db)

	cases := []struct {
		name     string
		quantity interface{}
		want     int
	}{
		{"missing", nil, 1},
		{"numeric string", "3", 3},
		{"padded string", " 2 ", 2},
		{"garbage string", "abc", 1},
		{"zero", float64(0), 1},
		{"negative", float64(-4), 1},
		{"fractional", 2.5, 1},
		{"plain number", float64(4), 4},
		{"boolean", true, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, _, err := pricer.Price([]services.LineInput{{ItemID: id, Quantity: tc.quantity}})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, lines[0].Quantity)
		})
	}
}

func TestPriceRoundsTotalToCents(t *testing.T) {
	db := setupItemDB(t)
	category := models.Category{Name: "Snacks"}
	assert.NoError(t, db.Create(&category).Error)
	a := models.Item{Name: "Cookie", Price: 0.10, CategoryID: category.ID}
	b := models.Item{Name: "Biscuit", Price: 0.20, CategoryID: category.ID}
	assert.NoError(t, db.Create(&a).Error)
	assert.NoError(t, db.Create(&b).Error)

	pricer := services.NewOrderPricer(db)
	_, total, err := pricer.Price([]services.LineInput{
		{ItemID: models.FlexID(a.ID), Quantity: float64(1)},
		{ItemID: models.FlexID(b.ID), Quantity: float64(1)},
	})
	assert.NoError(t, err)
	// 0.1 + 0.2 accumulates float noise; the total must come back clean
	assert.Equal(t, 0.3, total)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 9.98, services.RoundCents(9.98))
	assert.Equal(t, 9.99, services.RoundCents(9.986))
	assert.Equal(t, 9.98, services.RoundCents(9.984))
	assert.Equal(t, 0.3, services.RoundCents(0.1+0.2))
}
