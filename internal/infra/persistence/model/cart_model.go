package model

// CartModel mirrors the 'carts' table. The unique index on user_id enforces
// at most one cart per user.
type CartModel struct {
	ID     uint       `gorm:"primaryKey"`
	UserID uint       `gorm:"not null;uniqueIndex"`
	User   *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Items []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. Quantity carries both a
// validation rule and a store-level check constraint.
type CartItemModel struct {
	ID        uint          `gorm:"primaryKey"`
	CartID    uint          `gorm:"not null;index"`
	ProductID uint          `gorm:"not null;index"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int           `gorm:"not null;check:quantity >= 1" validate:"required,gte=1"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
