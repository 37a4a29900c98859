// Package state owns the working application state: the template
// registry, the knowledge base, and the sender profile. It loads the
// three persisted records at startup and writes them back best-effort;
// a failed persist is logged and never blocks the in-memory flow.
package state

import (
	"fmt"

	"github.com/letteragent/letteragent/pkg/account"
	"github.com/letteragent/letteragent/pkg/kb"
	"github.com/letteragent/letteragent/pkg/store"
	"github.com/letteragent/letteragent/pkg/template"
	"github.com/sirupsen/logrus"
)

// State is the top-level application state for one session.
type State struct {
	logger *logrus.Logger
	store  store.Store

	registry *template.Registry
	kb       *kb.Manager
	profile  *account.Profile

	selectedID string
}

// Load reads the persisted records and builds the working state.
// Unreadable records degrade to their defaults with a logged warning.
func Load(st store.Store, logger *logrus.Logger) *State {
	s := &State{logger: logger, store: st}

	var customs []template.Descriptor
	if _, err := st.Get(store.KeyCustomTemplates, &customs); err != nil {
		logger.WithError(err).Warn("Failed to load custom templates")
		customs = nil
	}
	s.registry = template.NewRegistry(customs)

	var items []kb.Item
	if _, err := st.Get(store.KeyKnowledgeBase, &items); err != nil {
		logger.WithError(err).Warn("Failed to load knowledge base")
		items = nil
	}
	s.kb = kb.NewManager(items)

	var profile account.Profile
	ok, err := st.Get(store.KeyAccountData, &profile)
	if err != nil {
		logger.WithError(err).Warn("Failed to load account data")
	} else if ok {
		s.profile = &profile
	}

	if all := s.registry.List(); len(all) > 0 {
		s.selectedID = all[0].ID
	}
	return s
}

// Registry exposes the template registry.
func (s *State) Registry() *template.Registry {
	return s.registry
}

// KB exposes the knowledge base manager.
func (s *State) KB() *kb.Manager {
	return s.kb
}

// Profile returns the loaded profile, or nil when none was saved.
func (s *State) Profile() *account.Profile {
	return s.profile
}

// SaveProfile validates and replaces the profile wholesale, then
// persists it best-effort.
func (s *State) SaveProfile(p account.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.profile = &p
	if err := s.store.Put(store.KeyAccountData, p); err != nil {
		s.logger.WithError(err).Error("Failed to save account data")
	}
	return nil
}

// ClearProfile drops the in-memory profile and purges its record.
func (s *State) ClearProfile() {
	s.profile = nil
	if err := s.store.Delete(store.KeyAccountData); err != nil {
		s.logger.WithError(err).Error("Failed to clear account data")
	}
}

// Selected returns the active template, if any.
func (s *State) Selected() (template.Descriptor, bool) {
	if s.selectedID == "" {
		return template.Descriptor{}, false
	}
	return s.registry.Get(s.selectedID)
}

// Select makes the template with id the active selection.
func (s *State) Select(id string) error {
	if _, ok := s.registry.Get(id); !ok {
		return fmt.Errorf("template %q not found", id)
	}
	s.selectedID = id
	return nil
}

// AddTemplate validates and appends a custom template, then persists
// the custom set.
func (s *State) AddTemplate(d template.Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := s.registry.Add(d); err != nil {
		return err
	}
	s.persistTemplates()
	return nil
}

// UpdateTemplate replaces a custom template and persists the custom
// set.
func (s *State) UpdateTemplate(d template.Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := s.registry.Update(d); err != nil {
		return err
	}
	s.persistTemplates()
	return nil
}

// RemoveTemplate deletes a custom template. If it was the active
// selection, selection falls back to the first remaining template, or
// to none when the registry is empty.
func (s *State) RemoveTemplate(id string) bool {
	removed := s.registry.Remove(id)
	if !removed {
		return false
	}
	s.persistTemplates()
	if s.selectedID == id {
		if all := s.registry.List(); len(all) > 0 {
			s.selectedID = all[0].ID
		} else {
			s.selectedID = ""
		}
	}
	return true
}

// SetTemplatePermissions attaches advisory rules and persists customs
// (builtin permission edits live only for the session).
func (s *State) SetTemplatePermissions(id string, rules []template.PermissionRule) error {
	if err := s.registry.SetPermissions(id, rules); err != nil {
		return err
	}
	s.persistTemplates()
	return nil
}

// SaveKBItem saves one knowledge base item and persists the
// collection.
func (s *State) SaveKBItem(item kb.Item) (kb.Item, error) {
	saved, err := s.kb.Save(item)
	if err != nil {
		return kb.Item{}, err
	}
	s.persistKB()
	return saved, nil
}

// DeleteKBItem removes one item and persists the collection.
func (s *State) DeleteKBItem(id string) bool {
	if !s.kb.Delete(id) {
		return false
	}
	s.persistKB()
	return true
}

// ReplaceKB swaps the whole collection, the manager's batch-save path.
func (s *State) ReplaceKB(items []kb.Item) {
	s.kb.Replace(items)
	s.persistKB()
}

// SetKBPermissions attaches advisory rules to an item and persists.
func (s *State) SetKBPermissions(id string, rules []template.PermissionRule) error {
	if err := s.kb.SetPermissions(id, rules); err != nil {
		return err
	}
	s.persistKB()
	return nil
}

func (s *State) persistTemplates() {
	if err := s.store.Put(store.KeyCustomTemplates, s.registry.Customs()); err != nil {
		s.logger.WithError(err).Error("Failed to save custom templates")
	}
}

func (s *State) persistKB() {
	if err := s.store.Put(store.KeyKnowledgeBase, s.kb.List()); err != nil {
		s.logger.WithError(err).Error("Failed to save knowledge base")
	}
}
