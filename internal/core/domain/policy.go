package domain

import "time"

// PolicyCategory classifies the traffic a web filtering policy targets.
type PolicyCategory string

const (
	CategoryEducation    PolicyCategory = "education"
	CategoryResearch     PolicyCategory = "research"
	CategorySocialMedia  PolicyCategory = "social_media"
	CategoryStreaming    PolicyCategory = "streaming"
	CategoryGaming       PolicyCategory = "gaming"
	CategoryMalware      PolicyCategory = "malware"
	CategoryAdultContent PolicyCategory = "adult_content"
	CategoryCustom       PolicyCategory = "custom"
)

var policyCategories = []string{
	string(CategoryEducation),
	string(CategoryResearch),
	string(CategorySocialMedia),
	string(CategoryStreaming),
	string(CategoryGaming),
	string(CategoryMalware),
	string(CategoryAdultContent),
	string(CategoryCustom),
}

func (c PolicyCategory) Valid() bool { return contains(policyCategories, string(c)) }

// PolicyAction is what a policy asks the filtering appliance to do on a match.
type PolicyAction string

const (
	ActionAllow PolicyAction = "allow"
	ActionBlock PolicyAction = "block"
	ActionWarn  PolicyAction = "warn"
)

var policyActions = []string{string(ActionAllow), string(ActionBlock), string(ActionWarn)}

func (a PolicyAction) Valid() bool { return contains(policyActions, string(a)) }

// Policy is a stored web filtering rule.
type Policy struct {
	ID          string         `json:"id" bson:"id"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	Category    PolicyCategory `json:"category" bson:"category"`
	Action      PolicyAction   `json:"action" bson:"action"`
	Domains     []string       `json:"domains" bson:"domains"`
	Keywords    []string       `json:"keywords" bson:"keywords"`
	Enabled     bool           `json:"enabled" bson:"enabled"`
	Priority    int            `json:"priority" bson:"priority"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// PolicyCreateRequest is the payload accepted by POST /api/policies.
type PolicyCreateRequest struct {
	Name        *string        `json:"name" binding:"required" example:"Block Social Media"`
	Description *string        `json:"description" binding:"required" example:"Block social media during study hours"`
	Category    PolicyCategory `json:"category" binding:"required" example:"social_media"`
	Action      PolicyAction   `json:"action" binding:"required" example:"block"`
	Domains     []string       `json:"domains"`
	Keywords    []string       `json:"keywords"`
	Enabled     *bool          `json:"enabled"`  // defaults to true
	Priority    *int           `json:"priority"` // defaults to 1
}

func (r PolicyCreateRequest) Validate() error {
	switch {
	case r.Name == nil:
		return requiredError("name")
	case r.Description == nil:
		return requiredError("description")
	case r.Category == "":
		return requiredError("category")
	case r.Action == "":
		return requiredError("action")
	}
	if !r.Category.Valid() {
		return enumError("category", string(r.Category), policyCategories)
	}
	if !r.Action.Valid() {
		return enumError("action", string(r.Action), policyActions)
	}
	return nil
}

// NewPolicy builds the stored record for a create request, applying defaults.
// Identifier and timestamps are left to the caller.
func (r PolicyCreateRequest) NewPolicy() Policy {
	p := Policy{
		Name:        deref(r.Name),
		Description: deref(r.Description),
		Category:    r.Category,
		Action:      r.Action,
		Domains:     nonNil(r.Domains),
		Keywords:    nonNil(r.Keywords),
		Enabled:     true,
		Priority:    1,
	}
	if r.Enabled != nil {
		p.Enabled = *r.Enabled
	}
	if r.Priority != nil {
		p.Priority = *r.Priority
	}
	return p
}

// PolicyUpdateRequest is a partial update: nil fields are left untouched.
type PolicyUpdateRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Category    *PolicyCategory `json:"category"`
	Action      *PolicyAction   `json:"action"`
	Domains     []string        `json:"domains"`
	Keywords    []string        `json:"keywords"`
	Enabled     *bool           `json:"enabled"`
	Priority    *int            `json:"priority"`
}

func (r PolicyUpdateRequest) Validate() error {
	if r.Category != nil && !r.Category.Valid() {
		return enumError("category", string(*r.Category), policyCategories)
	}
	if r.Action != nil && !r.Action.Valid() {
		return enumError("action", string(*r.Action), policyActions)
	}
	return nil
}

// Changes returns the supplied fields keyed by their stored names.
func (r PolicyUpdateRequest) Changes() map[string]any {
	set := make(map[string]any)
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Action != nil {
		set["action"] = *r.Action
	}
	if r.Domains != nil {
		set["domains"] = r.Domains
	}
	if r.Keywords != nil {
		set["keywords"] = r.Keywords
	}
	if r.Enabled != nil {
		set["enabled"] = *r.Enabled
	}
	if r.Priority != nil {
		set["priority"] = *r.Priority
	}
	return set
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
