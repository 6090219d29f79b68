package valueobjects

// ProductCategory classifies the uploaded product for prompt building.
type ProductCategory string

// CategoryOther is the fallback when classification fails.
const CategoryOther ProductCategory = "Other"

var productCategories = []ProductCategory{
	"Fashion & Apparel",
	"Shoes & Footwear",
	"Jewelry & Accessories",
	"Beauty & Cosmetics",
	"Electronics & Gadgets",
	"Home & Furniture",
	"Food & Beverages",
	"Bags & Luggage",
	"Toys & Kids' Products",
	"Sports & Fitness Gear",
	CategoryOther,
}

// AllProductCategories lists the closed category set.
func AllProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(productCategories))
	copy(out, productCategories)
	return out
}

// NormalizeCategory maps an arbitrary model answer onto the closed set,
// falling back to Other.
func NormalizeCategory(s string) ProductCategory {
	for _, c := range productCategories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

func (c ProductCategory) String() string {
	return string(c)
}
