package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.CartModel{},
		model.CartItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
