package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a vendor providing one or more items. The items relation
// is the inverse side of Item.Suppliers over the same join table.
type Supplier struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;size:70;not null"`
	PhoneNumber string    `gorm:"column:phone_number;size:12;not null"`
	Email       *string   `gorm:"column:email"`
	Items       []Item    `gorm:"many2many:item_suppliers;constraint:OnDelete:CASCADE"`
}

func (s *Supplier) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s Supplier) String() string {
	return fmt.Sprintf("%s - %s", s.Name, s.PhoneNumber)
}
