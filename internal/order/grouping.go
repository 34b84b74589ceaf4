package order

import (
	"github.com/chriskampolis/tably/app/models"
	"github.com/chriskampolis/tably/pkg/collection"
)

// CategoryGroup is one menu section in display order.
type CategoryGroup struct {
	Category models.Category
	Items    []models.MenuItem
}

// GroupMenu buckets items by category and orders the sections APPETIZER,
// MAIN, DESSERT, DRINK. Categories outside the known set sort after every
// known one, in the order they first appear in items. Within a section,
// items are sorted by name.
func GroupMenu(items []models.MenuItem) []CategoryGroup {
	buckets := collection.GroupBy(items, func(m models.MenuItem) models.Category { return m.Category })

	var categories []models.Category
	seen := make(map[models.Category]bool)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	categories = collection.SortBy(categories, func(a, b models.Category) bool {
		return a.Rank() < b.Rank()
	})

	groups := make([]CategoryGroup, 0, len(categories))
	for _, cat := range categories {
		groups = append(groups, CategoryGroup{
			Category: cat,
			Items: collection.SortBy(buckets[cat], func(a, b models.MenuItem) bool {
				return a.Name < b.Name
			}),
		})
	}
	return groups
}

// GroupedMenu groups the workflow's current menu for display.
func (w *Workflow) GroupedMenu() []CategoryGroup {
	return GroupMenu(w.menu)
}
