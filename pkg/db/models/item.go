package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item represents a stocked inventory item.
type Item struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name        string          `gorm:"column:name;size:70;not null"`
	Description string          `gorm:"column:description;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	Suppliers   []Supplier      `gorm:"many2many:item_suppliers;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the identifier once; it is never regenerated.
func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (i Item) String() string {
	return fmt.Sprintf("%s at %s ", i.Name, i.Price.StringFixed(2))
}
