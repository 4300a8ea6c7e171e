package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
// OrderDate is filled by GORM on insert and never written on updates. Status
// is constrained to the enumerated values by validation; the column itself is
// a plain varchar like the original schema.
type OrderModel struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"not null;index"`
	User        *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrderDate   time.Time       `gorm:"not null;autoCreateTime"`
	Status      string          `gorm:"type:varchar(50);not null" validate:"required,oneof=Pending Completed Canceled"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
