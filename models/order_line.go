package models

// OrderLine carries a snapshot of the item name and price taken when the
// order was priced, so later menu edits leave placed orders untouched.
type OrderLine struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"not null;index" json:"-"`
	ItemID    uint    `gorm:"not null" json:"itemId"`
	ItemName  string  `gorm:"type:varchar(255);not null" json:"itemName"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	LineTotal float64 `gorm:"type:decimal(10,2);not null" json:"lineTotal"`
}
