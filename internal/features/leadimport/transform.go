package leadimport

import "strings"

// TransformRows converts raw rows into lead records per the current
// mapping. Columns are processed in header order, so when two columns
// map to the same non-custom field the last one wins deterministically.
// Every input row yields exactly one output record; rows are never
// dropped here, even with an empty email — usability of a row is the
// ingestion service's call.
func TransformRows(rows []RawRow, mappings []ColumnMapping) []LeadRecord {
	leads := make([]LeadRecord, 0, len(rows))

	for _, row := range rows {
		lead := LeadRecord{OriginalRowData: row}

		for _, mapping := range mappings {
			if mapping.TargetField == TargetDoNotImport {
				continue
			}
			value := row[mapping.SourceColumn]
			if strings.TrimSpace(value) == "" {
				continue
			}

			switch mapping.TargetField {
			case TargetEmail:
				lead.Email = value
			case TargetFirstName:
				lead.FirstName = value
			case TargetLastName:
				lead.LastName = value
			case TargetFullName:
				// Forwarded whole; the ingestion service splits it
				lead.FullName = value
			case TargetPhone:
				lead.Phone = value
			case TargetCompanyName:
				lead.CompanyName = value
			case TargetJobTitle:
				lead.JobTitle = value
			case TargetWebsite:
				lead.Website = value
			case TargetLinkedinURL:
				lead.LinkedinURL = value
			case TargetLocation:
				lead.Location = value
			case TargetCustomVariable:
				if lead.CustomFields == nil {
					lead.CustomFields = make(map[string]string)
				}
				lead.CustomFields[mapping.SourceColumn] = value
			}
		}

		leads = append(leads, lead)
	}

	return leads
}

// HasEmailMapping reports whether at least one column maps to email.
// This is the upload gate: without it the batch is unusable.
func HasEmailMapping(mappings []ColumnMapping) bool {
	for _, mapping := range mappings {
		if mapping.TargetField == TargetEmail {
			return true
		}
	}
	return false
}

// MappingSummary flattens the mapping list for the ingestion request,
// excluding do_not_import entries
func MappingSummary(mappings []ColumnMapping) map[string]TargetField {
	summary := make(map[string]TargetField)
	for _, mapping := range mappings {
		if mapping.TargetField == TargetDoNotImport {
			continue
		}
		summary[mapping.SourceColumn] = mapping.TargetField
	}
	return summary
}
