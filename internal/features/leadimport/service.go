package leadimport

import (
	"context"
	"encoding/json"
	"io"

	"go-outreach/internal/config"

	"go.uber.org/zap"
)

// UploadResult is the settled outcome of a successful upload
type UploadResult struct {
	Session       *ImportSession  `json:"session"`
	ImportedCount int             `json:"imported_count"`
	Data          json.RawMessage `json:"data,omitempty"`
}

type ImportService interface {
	CreateSession(ctx context.Context, fileName string, sizeBytes int64, file io.Reader) (*ImportSession, error)
	GetSession(id string) (*ImportSession, error)
	UpdateMapping(id string, sourceColumn string, target TargetField) (*ImportSession, error)
	Upload(ctx context.Context, id string, dedup DedupConfig) (*UploadResult, error)
	ResetSession(id string) error
}

type ImportServiceImpl struct {
	Store  *SessionStore
	Ingest IngestClient
	Config *config.Config
	Log    *zap.Logger
}

func NewImportService(store *SessionStore, ingest IngestClient, cfg *config.Config, log *zap.Logger) ImportService {
	return &ImportServiceImpl{
		Store:  store,
		Ingest: ingest,
		Config: cfg,
		Log:    log,
	}
}

// CreateSession runs intake, parse, the size gates, and inference. A
// session is registered only once it reaches the mapped state; intake
// and parse rejections leave nothing behind to retry.
func (s *ImportServiceImpl) CreateSession(ctx context.Context, fileName string, sizeBytes int64, file io.Reader) (*ImportSession, error) {
	if err := ValidateUpload(fileName, sizeBytes, s.Config.MaxUploadMB); err != nil {
		return nil, err
	}

	session := NewImportSession(fileName, sizeBytes)
	if err := session.Apply(EventFileAccepted); err != nil {
		return nil, err
	}

	headers, rows, err := ParseLeadCSV(file)
	if err != nil {
		session.Apply(EventParseRejected)
		s.Log.Warn("Import file rejected at parse",
			zap.String("file", fileName), zap.Error(err))
		return nil, err
	}

	if err := CheckRowCount(rows, s.Config.MaxImportRows); err != nil {
		session.Apply(EventParseRejected)
		s.Log.Warn("Import file rejected by size gate",
			zap.String("file", fileName), zap.Int("rows", len(rows)), zap.Error(err))
		return nil, err
	}

	// Inference runs exactly once, here; mapping edits never re-run it
	session.Headers = headers
	session.Rows = rows
	session.Mappings = BuildMappings(headers, rows)
	if err := session.Apply(EventParsed); err != nil {
		return nil, err
	}

	s.Store.Put(session)
	s.Log.Info("Import session created",
		zap.String("session", session.ID),
		zap.String("file", fileName),
		zap.Int("rows", len(rows)),
		zap.Int("columns", len(headers)),
	)
	return s.Store.Snapshot(session.ID)
}

func (s *ImportServiceImpl) GetSession(id string) (*ImportSession, error) {
	return s.Store.Snapshot(id)
}

// UpdateMapping replaces the target field of exactly one column. Sample
// values and every other mapping entry stay untouched, and no
// validation happens here — the upload gate owns that.
func (s *ImportServiceImpl) UpdateMapping(id string, sourceColumn string, target TargetField) (*ImportSession, error) {
	if !target.Valid() {
		return nil, ErrInvalidTargetField
	}

	err := s.Store.Mutate(id, func(session *ImportSession) error {
		idx := -1
		for i := range session.Mappings {
			if session.Mappings[i].SourceColumn == sourceColumn {
				idx = i
				break
			}
		}
		if idx == -1 {
			return ErrUnknownColumn
		}

		if err := session.Apply(EventMappingChanged); err != nil {
			return err
		}
		session.Mappings[idx].TargetField = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Store.Snapshot(id)
}

// Upload gates the mapping, transforms the batch, and settles it
// against the ingestion service. On any failure the session drops back
// to mapped with its edits intact, so the user can correct and retry
// without re-uploading the file.
func (s *ImportServiceImpl) Upload(ctx context.Context, id string, dedup DedupConfig) (*UploadResult, error) {
	var (
		rows     []RawRow
		mappings []ColumnMapping
		fileName string
	)

	err := s.Store.Mutate(id, func(session *ImportSession) error {
		if !HasEmailMapping(session.Mappings) {
			// Gate refusal is not a state transition; the session
			// stays mapped and editable
			return ErrNoEmailColumn
		}
		if err := session.Apply(EventUploadStarted); err != nil {
			return err
		}
		session.Dedup = dedup
		session.LastError = ""

		rows = session.Rows
		mappings = make([]ColumnMapping, len(session.Mappings))
		copy(mappings, session.Mappings)
		fileName = session.FileName
		return nil
	})
	if err != nil {
		return nil, err
	}

	leads := TransformRows(rows, mappings)
	resp, err := s.Ingest.ImportLeads(ctx, IngestRequest{
		Leads:           leads,
		ColumnMapping:   MappingSummary(mappings),
		FileName:        fileName,
		DuplicateChecks: dedup,
	})
	if err != nil {
		s.Store.Mutate(id, func(session *ImportSession) error {
			if applyErr := session.Apply(EventUploadFailed); applyErr != nil {
				return applyErr
			}
			session.LastError = err.Error()
			return nil
		})
		s.Log.Error("Lead upload failed",
			zap.String("session", id), zap.Error(err))
		return nil, err
	}

	err = s.Store.Mutate(id, func(session *ImportSession) error {
		if applyErr := session.Apply(EventUploadSucceeded); applyErr != nil {
			return applyErr
		}
		session.ImportedCount = len(leads)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("Lead upload complete",
		zap.String("session", id),
		zap.Int("imported", len(leads)),
		zap.String("file", fileName),
	)

	session, err := s.Store.Snapshot(id)
	if err != nil {
		return nil, err
	}
	return &UploadResult{
		Session:       session,
		ImportedCount: len(leads),
		Data:          resp.Data,
	}, nil
}

// ResetSession discards a settled session. Resetting mid-upload is
// refused; the caller must wait for settlement.
func (s *ImportServiceImpl) ResetSession(id string) error {
	err := s.Store.Mutate(id, func(session *ImportSession) error {
		return session.Apply(EventReset)
	})
	if err != nil {
		return err
	}
	return s.Store.Delete(id)
}
