package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/99xcafe/pos-backend/models"
	"gorm.io/gorm"
)

// LineInput is one requested order line. Quantity is left untyped because
// the management app historically sent it as a number, a string, or not
// at all; coerceQuantity sorts that out.
type LineInput struct {
	ItemID   models.FlexID `json:"itemId"`
	Quantity interface{}   `json:"quantity"`
}

// OrderPricer resolves order lines against the items collection and
// computes line and order totals.
type OrderPricer struct {
	DB *gorm.DB
}

func NewOrderPricer(db *gorm.DB) *OrderPricer {
	return &OrderPricer{DB: db}
}

// Price resolves every input line, snapshotting the item name and price,
// and returns the priced lines plus the order total rounded to cents.
// An unknown item id rejects the whole order; nothing is written here,
// so the caller can fail without cleanup.
func (op *OrderPricer) Price(lines []LineInput) ([]models.OrderLine, float64, error) {
	priced := make([]models.OrderLine, 0, len(lines))
	var total float64

	for _, ln := range lines {
		var item models.Item
		if err := op.DB.First(&item, ln.ItemID.Uint()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, &UnknownItemError{ItemID: ln.ItemID.Uint()}
			}
			return nil, 0, err
		}

		qty := coerceQuantity(ln.Quantity)
		lineTotal := item.Price * float64(qty)
		total += lineTotal

		priced = append(priced, models.OrderLine{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Price:     item.Price,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
	}

	return priced, RoundCents(total), nil
}

// RoundCents rounds to 2 decimal places, half away from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// coerceQuantity turns whatever the client sent into a positive integer.
// Missing or unparseable quantities fall back to 1. That masks input
// mistakes, but the management app depends on it.
func coerceQuantity(v interface{}) int {
	switch q := v.(type) {
	case nil:
		return 1
	case float64:
		if q >= 1 && q == math.Trunc(q) {
			return int(q)
		}
		return 1
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(q)); err == nil && n >= 1 {
			return n
		}
		return 1
	default:
		return 1
	}
}
