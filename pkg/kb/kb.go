// Package kb manages reusable content snippets ("knowledge base") that
// users keep alongside their templates.
package kb

import (
	"fmt"
	"strings"
	"time"

	"github.com/letteragent/letteragent/pkg/template"
)

// DefaultCategory is applied when an item is saved with a blank
// category.
const DefaultCategory = "General"

// Item is one knowledge base entry.
type Item struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Content     string                    `json:"content"`
	Category    string                    `json:"category"`
	Tags        []string                  `json:"tags"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
	Permissions []template.PermissionRule `json:"permissions,omitempty"`
}

// Manager owns the in-memory knowledge base collection. Persistence is
// the caller's concern.
type Manager struct {
	items []Item
	now   func() time.Time
}

// NewManager wraps previously loaded items.
func NewManager(items []Item) *Manager {
	return &Manager{items: items, now: time.Now}
}

// NewManagerWithClock injects a clock for timestamp tests.
func NewManagerWithClock(items []Item, now func() time.Time) *Manager {
	return &Manager{items: items, now: now}
}

// List returns all items in stored order.
func (m *Manager) List() []Item {
	return append([]Item(nil), m.items...)
}

// Get looks up an item by id.
func (m *Manager) Get(id string) (Item, bool) {
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Save validates and stores an item. A blank id means a new entry: it
// receives a timestamp-derived id and both timestamps. An existing id
// is updated in place, keeping CreatedAt and refreshing UpdatedAt.
func (m *Manager) Save(item Item) (Item, error) {
	if item.Title == "" || item.Content == "" {
		return Item{}, fmt.Errorf("knowledge base title and content are required")
	}
	if item.Category == "" {
		item.Category = DefaultCategory
	}

	now := m.now()
	if item.ID == "" {
		item.ID = fmt.Sprintf("kb-%d", now.UnixMilli())
		item.CreatedAt = now
		item.UpdatedAt = now
		m.items = append(m.items, item)
		return item, nil
	}

	for i, cur := range m.items {
		if cur.ID == item.ID {
			item.CreatedAt = cur.CreatedAt
			item.UpdatedAt = now
			m.items[i] = item
			return item, nil
		}
	}

	// Unknown id: treat as an insert that keeps the caller's id.
	item.CreatedAt = now
	item.UpdatedAt = now
	m.items = append(m.items, item)
	return item, nil
}

// Delete removes a single item by id.
func (m *Manager) Delete(id string) bool {
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps in a whole new collection, the batch-save path.
func (m *Manager) Replace(items []Item) {
	m.items = append([]Item(nil), items...)
}

// SetPermissions attaches advisory permission rules to an item.
func (m *Manager) SetPermissions(id string, rules []template.PermissionRule) error {
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Permissions = rules
			return nil
		}
	}
	return fmt.Errorf("knowledge base item %q not found", id)
}

// Search matches query case-insensitively against title, content, and
// tags.
func (m *Manager) Search(query string) []Item {
	needle := strings.ToLower(query)
	var out []Item
	for _, it := range m.items {
		if needle == "" || matches(it, needle) {
			out = append(out, it)
		}
	}
	return out
}

// FilterCategory returns items in the given category; empty matches
// everything.
func (m *Manager) FilterCategory(category string) []Item {
	var out []Item
	for _, it := range m.items {
		if category == "" || it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func matches(it Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Content), needle) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
