// Package letter assembles formatted letters from templates, user
// input, and the sender profile. Generation is deterministic text
// substitution; the only outside read is the current date.
package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/letteragent/letteragent/pkg/account"
	"github.com/letteragent/letteragent/pkg/template"
	"github.com/sirupsen/logrus"
)

// Tones lists the accepted tone labels. The tone is carried through as
// part of the input contract but does not yet vary any wording.
var Tones = []string{"Formal", "Semi-formal", "Persuasive"}

// DefaultTone is the tone preselected in the input form.
const DefaultTone = "Formal"

// complianceNote is appended inside the body when compliance inclusion
// is requested. Exactly one occurrence ever appears in the output.
const complianceNote = "\n\nThis letter has been generated in compliance with professional standards and regulations as of 2025."

// Placeholder tokens substituted for absent profile fields.
const (
	placeholderName  = "[Your Name]"
	placeholderTitle = "[Your Title]"
	placeholderOrg   = "[Organization Name]"
	placeholderEmail = "[Email Address]"
	placeholderPhone = "[Phone Number]"
)

// Request carries everything the generator needs for one letter.
type Request struct {
	Template          template.Descriptor
	UserInput         string // free text with any flattened fields already prepended
	Tone              string
	IncludeCompliance bool
	Profile           *account.Profile // nil means all placeholders
}

// Generator produces letters. It never fails: absent or malformed
// optional inputs degrade to placeholder text.
type Generator struct {
	logger *logrus.Logger
	now    func() time.Time
}

// New creates a Generator reading the real clock.
func New(logger *logrus.Logger) *Generator {
	return &Generator{logger: logger, now: time.Now}
}

// NewWithClock creates a Generator with an injected clock. Tests use
// this to pin the date line.
func NewWithClock(logger *logrus.Logger, now func() time.Time) *Generator {
	return &Generator{logger: logger, now: now}
}

// Generate assembles the letter body for req. Pure apart from the
// clock read: identical inputs and date produce identical output.
func (g *Generator) Generate(req Request) string {
	if g.logger != nil {
		g.logger.WithFields(logrus.Fields{
			"template":   req.Template.ID,
			"skeleton":   string(skeletonFor(req.Template)),
			"tone":       req.Tone,
			"compliance": req.IncludeCompliance,
		}).Debug("Generating letter")
	}

	date := g.now().Format("January 2, 2006")

	compliance := ""
	if req.IncludeCompliance {
		compliance = complianceNote
	}

	s := resolveSender(req.Profile)

	switch skeletonFor(req.Template) {
	case template.SkeletonSickLeave:
		return renderSickLeave(s, date, req.UserInput, compliance)
	case template.SkeletonScholarship:
		return renderScholarship(s, date, req.UserInput, compliance)
	case template.SkeletonBusinessProposal:
		return renderBusinessProposal(s, date, req.UserInput, compliance)
	default:
		return renderGeneric(req.Template, s, date, req.UserInput, compliance)
	}
}

// skeletonFor returns the template's registration-time skeleton tag,
// defaulting to generic for descriptors that never passed through a
// registry.
func skeletonFor(d template.Descriptor) template.Skeleton {
	if d.Skeleton == "" {
		return template.SkeletonGeneric
	}
	return d.Skeleton
}

// sender holds the resolved sender fields, placeholders applied.
type sender struct {
	name      string
	title     string
	org       string
	email     string
	phone     string
	address   string // leading newline included when non-empty
	signature string
}

func resolveSender(p *account.Profile) sender {
	if p == nil {
		p = &account.Profile{}
	}
	s := sender{
		name:  orPlaceholder(p.FullName, placeholderName),
		title: orPlaceholder(p.Title, placeholderTitle),
		org:   orPlaceholder(p.Organization, placeholderOrg),
		email: orPlaceholder(p.Email, placeholderEmail),
		phone: orPlaceholder(p.Phone, placeholderPhone),
	}
	s.address = addressBlock(p)
	if p.Signature != "" {
		s.signature = p.Signature
	} else {
		s.signature = fmt.Sprintf("Sincerely,\n\n%s\n%s\n%s\n%s\n%s%s",
			s.name, s.title, s.org, s.email, s.phone, s.address)
	}
	return s
}

// addressBlock builds the optional sender address lines. The block
// exists only when address or city is present. State and zip without a
// city are dropped, matching the established output.
func addressBlock(p *account.Profile) string {
	if p.Address == "" && p.City == "" {
		return ""
	}
	var parts []string
	if p.Address != "" {
		parts = append(parts, p.Address)
	}
	if p.City != "" && p.State != "" && p.ZipCode != "" {
		parts = append(parts, fmt.Sprintf("%s, %s %s", p.City, p.State, p.ZipCode))
	} else if p.City != "" {
		parts = append(parts, p.City)
	}
	if p.Country != "" {
		parts = append(parts, p.Country)
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n" + strings.Join(parts, "\n")
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// orgLine renders the organization header line with its preceding
// newline, omitted when the organization resolves empty.
func orgLine(org string) string {
	if org == "" {
		return ""
	}
	return "\n" + org
}

func renderSickLeave(s sender, date, userInput, compliance string) string {
	return fmt.Sprintf(`%s
%s%s
%s
%s

%s

To: [Recipient Name]
[Recipient Title]
[Organization Name]

Subject: Application for Sick Leave

Dear [Recipient Name],

I am writing to formally request sick leave due to health concerns. %s

I have attached the necessary medical documentation to support my request. I will ensure that all pending work is completed or delegated appropriately during my absence.

Thank you for your understanding and consideration of this matter. I look forward to returning to my duties as soon as possible.
%s

%s`, s.name, s.title, orgLine(s.org), s.email, s.phone, date, userInput, compliance, s.signature)
}

func renderScholarship(s sender, date, userInput, compliance string) string {
	return fmt.Sprintf(`%s
%s
%s

%s

To: Scholarship Committee
[Institution Name]

Subject: Application for Academic Scholarship

Dear Committee Members,

I am writing to express my strong interest in applying for the academic scholarship offered by your esteemed institution. %s

My academic record demonstrates consistent excellence, and this scholarship would enable me to continue pursuing my educational goals without financial constraints. I am committed to maintaining high academic standards and contributing positively to the institution's community.
%s

I appreciate your consideration of my application and look forward to the opportunity to discuss my qualifications further.

%s`, s.name, s.email, s.phone, date, userInput, compliance, s.signature)
}

func renderBusinessProposal(s sender, date, userInput, compliance string) string {
	return fmt.Sprintf(`%s
%s
%s
%s
%s%s

%s

To: [Recipient Name]
[Company Name]
[Address]

Subject: Business Collaboration Proposal

Dear [Recipient Name],

I am pleased to present this business proposal for your consideration. %s

We believe that a partnership between our organizations would create significant mutual value and drive innovation in our respective markets. Our proposal outlines a strategic framework that leverages the strengths of both parties.

Key benefits include:
• Enhanced market reach and customer engagement
• Shared resources and expertise
• Accelerated growth opportunities
%s

We would welcome the opportunity to discuss this proposal in detail at your earliest convenience.

%s`, s.name, s.title, s.org, s.email, s.phone, s.address, date, userInput, compliance, s.signature)
}

func renderGeneric(t template.Descriptor, s sender, date, userInput, compliance string) string {
	return fmt.Sprintf(`%s
%s%s
%s
%s

%s

To: [Recipient Name]
[Recipient Title/Organization]

Subject: %s

Dear [Recipient Name],

I am writing regarding %s. %s

I believe this matter requires your attention and consideration. I am available to discuss this further and provide any additional information that may be needed.
%s

Thank you for your time and consideration.

%s`, s.name, s.title, orgLine(s.org), s.email, s.phone, date, t.Title, strings.ToLower(t.Description), userInput, compliance, s.signature)
}
