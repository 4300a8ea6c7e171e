// Package model holds the GORM-specific structs that mirror the persisted
// table layout. The column sets are fixed for compatibility with the existing
// schema; no bookkeeping columns are added beyond what the tables declare.
package model

import "time"

// UserModel mirrors the 'users' table.
// RegistrationDate is filled by GORM on insert and never written on updates.
type UserModel struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Email            string    `gorm:"type:varchar(254);unique;not null" validate:"required,email,max=254"`
	Password         string    `gorm:"type:varchar(128);not null" validate:"required,max=128"`
	PhoneNumber      *string   `gorm:"type:varchar(15)" validate:"omitempty,max=15"`
	Address          *string   `gorm:"type:text"`
	RegistrationDate time.Time `gorm:"not null;autoCreateTime"`

	Orders []OrderModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Cart   *CartModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
