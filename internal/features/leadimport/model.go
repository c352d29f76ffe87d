package leadimport

import "time"

// TargetField is a canonical lead attribute an import column can populate
type TargetField string

const (
	TargetDoNotImport    TargetField = "do_not_import"
	TargetEmail          TargetField = "email"
	TargetFirstName      TargetField = "first_name"
	TargetLastName       TargetField = "last_name"
	TargetFullName       TargetField = "full_name"
	TargetPhone          TargetField = "phone"
	TargetCompanyName    TargetField = "company_name"
	TargetJobTitle       TargetField = "job_title"
	TargetWebsite        TargetField = "website"
	TargetLinkedinURL    TargetField = "linkedin_url"
	TargetLocation       TargetField = "location"
	TargetCustomVariable TargetField = "custom_variable"
)

var validTargetFields = map[TargetField]bool{
	TargetDoNotImport:    true,
	TargetEmail:          true,
	TargetFirstName:      true,
	TargetLastName:       true,
	TargetFullName:       true,
	TargetPhone:          true,
	TargetCompanyName:    true,
	TargetJobTitle:       true,
	TargetWebsite:        true,
	TargetLinkedinURL:    true,
	TargetLocation:       true,
	TargetCustomVariable: true,
}

// Valid reports whether t is one of the canonical target fields
func (t TargetField) Valid() bool {
	return validTargetFields[t]
}

// RawRow is one parsed file row, keyed by original column header
type RawRow map[string]string

// ColumnMapping assigns one source file column to a target field.
// SampleValues are captured once at parse time and never recomputed;
// TargetField is the only part a user edits.
type ColumnMapping struct {
	SourceColumn string      `json:"source_column"`
	TargetField  TargetField `json:"target_field"`
	SampleValues []string    `json:"sample_values"`
}

// DedupConfig holds the duplicate-check scopes forwarded to the
// ingestion service; the dedup logic itself lives there.
type DedupConfig struct {
	Campaigns bool `json:"campaigns"`
	Lists     bool `json:"lists"`
	Workspace bool `json:"workspace"`
}

// DefaultDedupConfig enables every duplicate-check scope
func DefaultDedupConfig() DedupConfig {
	return DedupConfig{Campaigns: true, Lists: true, Workspace: true}
}

// LeadRecord is one transformed lead ready for ingestion
type LeadRecord struct {
	Email           string            `json:"email"`
	FirstName       string            `json:"first_name,omitempty"`
	LastName        string            `json:"last_name,omitempty"`
	FullName        string            `json:"full_name,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	CompanyName     string            `json:"company_name,omitempty"`
	JobTitle        string            `json:"job_title,omitempty"`
	Website         string            `json:"website,omitempty"`
	LinkedinURL     string            `json:"linkedin_url,omitempty"`
	Location        string            `json:"location,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
	OriginalRowData RawRow            `json:"original_row_data"`
}

// SessionState is one step of the import session lifecycle
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateParsing   SessionState = "parsing"
	StateRejected  SessionState = "rejected"
	StateMapped    SessionState = "mapped"
	StateUploading SessionState = "uploading"
	StateComplete  SessionState = "complete"
)

// ImportSession is the transient state of one file's import attempt,
// from parse to upload settlement. It is never persisted.
type ImportSession struct {
	ID            string          `json:"id"`
	State         SessionState    `json:"state"`
	FileName      string          `json:"file_name"`
	FileSizeBytes int64           `json:"file_size_bytes"`
	Headers       []string        `json:"headers"`
	Rows          []RawRow        `json:"-"`
	Mappings      []ColumnMapping `json:"mappings"`
	Dedup         DedupConfig     `json:"dedup"`
	LastError     string          `json:"last_error,omitempty"`
	ImportedCount int             `json:"imported_count,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
