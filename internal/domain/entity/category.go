// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is the icon used when a category is created without one.
const DefaultCategoryIcon = "📌"

// Category represents an expense category owned by one account.
type Category struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Icon      string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(ownerID uuid.UUID, name, icon string) *Category {
	return &Category{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
}

// CategoryTemplate describes one entry of the starter category set.
type CategoryTemplate struct {
	Name string
	Icon string
}

// DefaultCategories is the ordered starter set seeded for new accounts.
var DefaultCategories = []CategoryTemplate{
	{Name: "Food & Dining", Icon: "🍔"},
	{Name: "Transportation", Icon: "🚗"},
	{Name: "Shopping", Icon: "🛍️"},
	{Name: "Entertainment", Icon: "🎬"},
	{Name: "Bills & Utilities", Icon: "💡"},
	{Name: "Healthcare", Icon: "🏥"},
	{Name: "Education", Icon: "📚"},
	{Name: "Groceries", Icon: "🛒"},
	{Name: "Travel", Icon: "✈️"},
	{Name: "Other", Icon: "📌"},
}

// NewDefaultCategories builds the starter set for an owner.
// Creation times step by one microsecond so the set keeps a stable order.
func NewDefaultCategories(ownerID uuid.UUID) []*Category {
	now := time.Now().UTC()
	categories := make([]*Category, len(DefaultCategories))
	for i, tpl := range DefaultCategories {
		categories[i] = &Category{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Name:      tpl.Name,
			Icon:      tpl.Icon,
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		}
	}
	return categories
}
