package model

// CategoryModel mirrors the 'categories' table. The parent reference is a
// self foreign key with cascade delete, so removing a category removes its
// whole subtree in the store.
type CategoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	ParentID    *uint          `gorm:"index"`
	Parent      *CategoryModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Title       string         `gorm:"type:varchar(50);not null" validate:"required,max=50"`
	Description string         `gorm:"type:text;not null;default:''"`
	Avatar      *string        `gorm:"type:varchar(255)" validate:"omitempty,max=255"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
