// Package display carries presentation metadata for the schema: human-facing
// field labels looked up by entity and field name. The tables live here, next
// to the domain but outside the entity definitions, so the entities stay free
// of presentation concerns.
package display

// Locale selects a label translation table.
type Locale string

const (
	// LocaleEnglish is the default label locale.
	LocaleEnglish Locale = "en"
	// LocaleTaiwan is the zh-TW label locale.
	LocaleTaiwan Locale = "zh-TW"
)

// Entity names used as lookup keys.
const (
	EntityUser     = "user"
	EntityCategory = "category"
	EntityProduct  = "product"
	EntityOrder    = "order"
	EntityCart     = "cart"
	EntityCartItem = "cart_item"
)

var englishLabels = map[string]map[string]string{
	EntityUser: {
		"name":              "Name",
		"email":             "Email",
		"password":          "Password",
		"phone_number":      "Phone Number",
		"address":           "Address",
		"registration_date": "Registration Date",
	},
	EntityCategory: {
		"parent":      "Parent",
		"title":       "Name",
		"description": "Description",
		"avatar":      "Avatar",
	},
	EntityProduct: {
		"parent":      "Parent",
		"name":        "Name",
		"image_url":   "Image URL",
		"description": "Description",
		"categories":  "Categories",
		"stock":       "Stock",
		"price":       "Price",
	},
	EntityOrder: {
		"user":         "User",
		"order_date":   "Order Date",
		"status":       "Status",
		"total_amount": "Total Amount",
	},
	EntityCart: {
		"user": "User",
	},
	EntityCartItem: {
		"cart":     "Cart",
		"product":  "Product",
		"quantity": "Quantity",
	},
}

var taiwanLabels = map[string]map[string]string{
	EntityUser: {
		"name":              "姓名",
		"email":             "電子郵件",
		"password":          "密碼",
		"phone_number":      "電話號碼",
		"address":           "地址",
		"registration_date": "註冊日期",
	},
	EntityCategory: {
		"parent":      "上層分類",
		"title":       "名稱",
		"description": "描述",
		"avatar":      "圖示",
	},
	EntityProduct: {
		"parent":      "上層商品",
		"name":        "名稱",
		"image_url":   "圖片連結",
		"description": "描述",
		"categories":  "分類",
		"stock":       "庫存",
		"price":       "價格",
	},
	EntityOrder: {
		"user":         "使用者",
		"order_date":   "訂購日期",
		"status":       "狀態",
		"total_amount": "總金額",
	},
	EntityCart: {
		"user": "使用者",
	},
	EntityCartItem: {
		"cart":     "購物車",
		"product":  "商品",
		"quantity": "數量",
	},
}

var labelsByLocale = map[Locale]map[string]map[string]string{
	LocaleEnglish: englishLabels,
	LocaleTaiwan:  taiwanLabels,
}

// Label returns the display label for an entity field in the given locale.
// Unknown locales and untranslated fields fall back to the English table;
// a field missing there too returns the raw field name.
func Label(locale Locale, entity, field string) string {
	if table, ok := labelsByLocale[locale]; ok {
		if label, ok := table[entity][field]; ok {
			return label
		}
	}
	if label, ok := englishLabels[entity][field]; ok {
		return label
	}

	return field
}

// FieldLabels returns a copy of the label table for an entity in the given
// locale, falling back to English for the whole table when the locale is
// unknown.
func FieldLabels(locale Locale, entity string) map[string]string {
	table, ok := labelsByLocale[locale]
	if !ok {
		table = englishLabels
	}

	src := table[entity]
	out := make(map[string]string, len(src))
	for field, label := range src {
		out[field] = label
	}

	return out
}
