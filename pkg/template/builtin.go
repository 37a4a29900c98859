package template

// Builtins returns a fresh copy of the builtin template catalog.
// Builtins are immutable after load; callers receive copies so in-place
// edits cannot leak back into the catalog.
func Builtins() []Descriptor {
	out := make([]Descriptor, len(builtins))
	copy(out, builtins)
	for i := range out {
		if len(builtins[i].CustomFields) > 0 {
			out[i].CustomFields = append([]FieldDescriptor(nil), builtins[i].CustomFields...)
		}
	}
	return out
}

var builtins = []Descriptor{
	{
		ID:          "1",
		Title:       "Sick Leave Application",
		Category:    CategoryStudent,
		Icon:        "FileText",
		Description: "Request sick leave with medical documentation",
		Skeleton:    SkeletonSickLeave,
	},
	{
		ID:          "2",
		Title:       "Scholarship Application",
		Category:    CategoryStudent,
		Icon:        "GraduationCap",
		Description: "Apply for academic scholarships and financial aid",
		Skeleton:    SkeletonScholarship,
	},
	{
		ID:          "3",
		Title:       "Internship Request Letter",
		Category:    CategoryStudent,
		Icon:        "Briefcase",
		Description: "Request internship opportunities",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "4",
		Title:       "Leave of Absence",
		Category:    CategoryFaculty,
		Icon:        "FileText",
		Description: "Request extended leave from teaching duties",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "5",
		Title:       "Research Grant Proposal",
		Category:    CategoryFaculty,
		Icon:        "GraduationCap",
		Description: "Propose research projects for funding",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "6",
		Title:       "Employment Offer Letter",
		Category:    CategoryCorporate,
		Icon:        "Briefcase",
		Description: "Formal job offer with terms and conditions",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "7",
		Title:       "Resignation Letter",
		Category:    CategoryCorporate,
		Icon:        "FileText",
		Description: "Professional resignation notice",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "8",
		Title:       "Business Proposal",
		Category:    CategoryCorporate,
		Icon:        "Briefcase",
		Description: "Propose business partnerships and collaborations",
		Skeleton:    SkeletonBusinessProposal,
	},
	{
		ID:          "9",
		Title:       "Legal Notice",
		Category:    CategoryCorporate,
		Icon:        "Scale",
		Description: "Formal legal communication",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "10",
		Title:       "Investment Pitch Letter",
		Category:    CategoryInvestor,
		Icon:        "Briefcase",
		Description: "Present investment opportunities",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "11",
		Title:       "Due Diligence Request",
		Category:    CategoryInvestor,
		Icon:        "Scale",
		Description: "Request detailed business information",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "12",
		Title:       "Term Sheet Proposal",
		Category:    CategoryInvestor,
		Icon:        "FileText",
		Description: "Outline investment terms and conditions",
		Skeleton:    SkeletonGeneric,
	},
	{
		ID:          "sample-custom-1",
		Title:       "Custom Project Proposal",
		Category:    CategoryCorporate,
		Icon:        "FileText",
		Description: "Customizable project proposal with dynamic fields",
		IsCustom:    true,
		Skeleton:    SkeletonGeneric,
		CustomFields: []FieldDescriptor{
			{
				ID:          "field-1",
				Label:       "Project Name",
				Type:        FieldText,
				Required:    true,
				Placeholder: "Enter project name",
			},
			{
				ID:          "field-2",
				Label:       "Project Budget",
				Type:        FieldText,
				Required:    true,
				Placeholder: "$0,000",
			},
			{
				ID:       "field-3",
				Label:    "Timeline",
				Type:     FieldSelect,
				Required: true,
				Options:  []string{"1-3 months", "3-6 months", "6-12 months", "12+ months"},
			},
			{
				ID:          "field-4",
				Label:       "Project Description",
				Type:        FieldTextarea,
				Required:    true,
				Placeholder: "Describe the project scope and objectives",
			},
			{
				ID:       "field-5",
				Label:    "Expected Start Date",
				Type:     FieldDate,
				Required: false,
			},
		},
	},
}
