package template

import (
	"fmt"
	"strings"
)

// Registry holds the working set of templates: builtins first, then
// custom templates in creation order. It is in-memory and synchronous;
// persistence of custom entries is the caller's concern.
type Registry struct {
	items []Descriptor
}

// NewRegistry builds a registry from the builtin catalog and previously
// saved custom templates. Loaded customs are forced to IsCustom and
// resolve to the generic skeleton regardless of what was stored. A saved
// custom whose id already exists (the shipped sample template) replaces
// the catalog entry instead of duplicating it.
func NewRegistry(customs []Descriptor) *Registry {
	r := &Registry{items: Builtins()}
	for _, c := range customs {
		c.IsCustom = true
		c.Skeleton = SkeletonGeneric
		if i := r.indexOf(c.ID); i >= 0 {
			r.items[i] = c
		} else {
			r.items = append(r.items, c)
		}
	}
	return r
}

func (r *Registry) indexOf(id string) int {
	for i, d := range r.items {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// List returns all templates in insertion order.
func (r *Registry) List() []Descriptor {
	return append([]Descriptor(nil), r.items...)
}

// Customs returns only user-authored templates, in creation order.
// This is the slice that gets persisted.
func (r *Registry) Customs() []Descriptor {
	var out []Descriptor
	for _, d := range r.items {
		if d.IsCustom {
			out = append(out, d)
		}
	}
	return out
}

// Get looks up a template by id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	for _, d := range r.items {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Add appends a new custom template. The caller supplies a unique
// timestamp-derived id; a duplicate id is rejected to keep the registry
// invariant explicit.
func (r *Registry) Add(d Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("template id is required")
	}
	if _, ok := r.Get(d.ID); ok {
		return fmt.Errorf("template id %q already exists", d.ID)
	}
	d.IsCustom = true
	d.Skeleton = SkeletonGeneric
	r.items = append(r.items, d)
	return nil
}

// Update replaces a custom template in place, keeping its position.
// Builtins are immutable and cannot be updated.
func (r *Registry) Update(d Descriptor) error {
	for i, cur := range r.items {
		if cur.ID == d.ID {
			if !cur.IsCustom {
				return fmt.Errorf("builtin template %q cannot be modified", cur.ID)
			}
			d.IsCustom = true
			d.Skeleton = SkeletonGeneric
			r.items[i] = d
			return nil
		}
	}
	return fmt.Errorf("template %q not found", d.ID)
}

// SetPermissions attaches advisory permission rules to any template.
// Permission edits are allowed on builtins since they never change
// generation behavior.
func (r *Registry) SetPermissions(id string, rules []PermissionRule) error {
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Permissions = rules
			return nil
		}
	}
	return fmt.Errorf("template %q not found", id)
}

// Remove deletes a custom template by id. Builtins are never removed.
// The caller handles selection fallback.
func (r *Registry) Remove(id string) bool {
	for i, d := range r.items {
		if d.ID == id && d.IsCustom {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// Filter returns templates whose title contains search
// (case-insensitive) and whose category matches. CategoryAll and the
// empty category match everything. The result is computed per call and
// never persisted.
func (r *Registry) Filter(search string, category Category) []Descriptor {
	needle := strings.ToLower(search)
	var out []Descriptor
	for _, d := range r.items {
		if category != "" && category != CategoryAll && d.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(d.Title), needle) {
			continue
		}
		out = append(out, d)
	}
	return out
}
