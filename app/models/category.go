package models

// Category is the closed set of menu sections the backend knows about.
type Category string

const (
	CategoryAppetizer Category = "APPETIZER"
	CategoryMain      Category = "MAIN"
	CategoryDessert   Category = "DESSERT"
	CategoryDrink     Category = "DRINK"
)

// categoryOrder is the fixed display order of known categories.
var categoryOrder = []Category{
	CategoryAppetizer,
	CategoryMain,
	CategoryDessert,
	CategoryDrink,
}

var categoryLabels = map[Category]string{
	CategoryAppetizer: "Appetizers",
	CategoryMain:      "Main Dishes",
	CategoryDessert:   "Desserts",
	CategoryDrink:     "Drinks",
}

// Rank returns the position of c in the display order. Categories outside
// the known set rank after every known one, so a stable sort keeps them in
// first-seen order at the end.
func (c Category) Rank() int {
	for i, known := range categoryOrder {
		if c == known {
			return i
		}
	}
	return len(categoryOrder)
}

// Known reports whether c is part of the closed category set.
func (c Category) Known() bool {
	return c.Rank() < len(categoryOrder)
}

// Label returns the human-readable section heading for c.
// Unknown categories fall back to their raw value.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
