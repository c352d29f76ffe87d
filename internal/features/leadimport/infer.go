package leadimport

import "strings"

// inferRule maps header keywords to a target field. Rules are evaluated
// in slice order and the first match wins, so keyword collisions (a
// header containing both "name" and "title") resolve by priority.
type inferRule struct {
	target   TargetField
	keywords []string
	allOf    bool // require every keyword instead of any
	exact    bool // match the whole normalized header
}

// inferRules is ordered by priority. Reordering it changes inference
// results for ambiguous headers, so keep the order fixed.
var inferRules = []inferRule{
	{target: TargetEmail, keywords: []string{"email"}},
	{target: TargetFirstName, keywords: []string{"first", "name"}, allOf: true},
	{target: TargetLastName, keywords: []string{"last", "name"}, allOf: true},
	{target: TargetFullName, keywords: []string{"name"}, exact: true},
	{target: TargetFullName, keywords: []string{"client_name", "contact_person"}},
	{target: TargetPhone, keywords: []string{"phone", "mobile", "telephone", "tel"}},
	{target: TargetCompanyName, keywords: []string{"company", "organization", "insurance_provider", "provider"}},
	{target: TargetJobTitle, keywords: []string{"job", "title", "position", "role"}},
	{target: TargetWebsite, keywords: []string{"website", "url"}},
	{target: TargetLinkedinURL, keywords: []string{"linkedin"}},
	{target: TargetLocation, keywords: []string{"location", "city", "address"}},
}

// InferTargetField proposes a target field for a raw column header.
// It is a pure function: same header in, same guess out.
func InferTargetField(header string) TargetField {
	h := normalizeHeader(header)

	for _, rule := range inferRules {
		if rule.matches(h) {
			return rule.target
		}
	}
	return TargetDoNotImport
}

func (r inferRule) matches(header string) bool {
	if r.exact {
		return header == r.keywords[0]
	}
	if r.allOf {
		for _, kw := range r.keywords {
			if !strings.Contains(header, kw) {
				return false
			}
		}
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

// normalizeHeader lowercases the header and joins words with underscores,
// so "Client Name" and "client_name" infer the same field
func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	return strings.Join(strings.Fields(h), "_")
}
