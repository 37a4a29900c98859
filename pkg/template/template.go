package template

import "fmt"

// Category classifies templates for sidebar filtering.
type Category string

const (
	CategoryStudent   Category = "Student"
	CategoryFaculty   Category = "Faculty"
	CategoryCorporate Category = "Corporate"
	CategoryInvestor  Category = "Investor"

	// CategoryAll is the filter wildcard; it is never stored on a descriptor.
	CategoryAll Category = "All"
)

// Categories lists the valid descriptor categories in display order.
func Categories() []Category {
	return []Category{CategoryStudent, CategoryFaculty, CategoryCorporate, CategoryInvestor}
}

// FieldType is the input widget kind for a custom field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
)

// Skeleton selects which prose skeleton the generator renders.
// It is resolved once at registration time: builtins carry their tag in
// the catalog, custom templates always resolve to SkeletonGeneric.
type Skeleton string

const (
	SkeletonGeneric          Skeleton = "generic"
	SkeletonSickLeave        Skeleton = "sick-leave"
	SkeletonScholarship      Skeleton = "scholarship"
	SkeletonBusinessProposal Skeleton = "business-proposal"
)

// FieldDescriptor defines one structured input on a custom template.
type FieldDescriptor struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Options     []string  `json:"options,omitempty"` // meaningful only for FieldSelect
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Access is the advisory access level of a permission rule.
type Access string

const (
	AccessView  Access = "view"
	AccessEdit  Access = "edit"
	AccessAdmin Access = "admin"
)

// PermissionRule attaches advisory access metadata to a template or
// knowledge base item. Exactly one of UserID or Role names the subject.
// Nothing in this tool enforces these rules.
type PermissionRule struct {
	UserID string `json:"userId,omitempty"`
	Role   string `json:"role,omitempty"`
	Access Access `json:"access"`
}

// Validate checks the mutually exclusive subject and the access enum.
func (r PermissionRule) Validate() error {
	if (r.UserID == "") == (r.Role == "") {
		return fmt.Errorf("permission rule must set exactly one of user or role")
	}
	switch r.Access {
	case AccessView, AccessEdit, AccessAdmin:
		return nil
	default:
		return fmt.Errorf("invalid access level %q", r.Access)
	}
}

// Descriptor describes one letter template, builtin or user-authored.
type Descriptor struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Category     Category          `json:"category"`
	Icon         string            `json:"icon,omitempty"`
	Description  string            `json:"description"`
	IsCustom     bool              `json:"isCustom,omitempty"`
	CustomFields []FieldDescriptor `json:"customFields,omitempty"`
	Permissions  []PermissionRule  `json:"permissions,omitempty"`

	// Skeleton is resolved at registration and never persisted.
	Skeleton Skeleton `json:"-"`
}

// Validate is the save gate for user-authored templates: title and
// description are required. It is not applied to builtins at load.
func (d Descriptor) Validate() error {
	if d.Title == "" || d.Description == "" {
		return fmt.Errorf("template title and description are required")
	}
	return nil
}
