package model

// ProductModel mirrors the 'products' table plus the 'products_categories'
// join table. Price stays a float column to match the declared schema even
// though order totals use a fixed-point decimal.
type ProductModel struct {
	ID          uint             `gorm:"primaryKey"`
	ParentID    *uint            `gorm:"index"`
	Parent      *ProductModel    `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Name        string           `gorm:"type:varchar(50);not null" validate:"required,max=50"`
	ImageURL    string           `gorm:"column:image_url;type:varchar(255);not null" validate:"required,max=255"`
	Description *string          `gorm:"type:text"`
	Stock       int              `gorm:"not null"`
	Price       float64          `gorm:"not null"`
	Categories  []*CategoryModel `gorm:"many2many:products_categories;joinForeignKey:ProductID;joinReferences:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
