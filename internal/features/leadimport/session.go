package leadimport

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionEvent is one input to the session state machine
type SessionEvent string

const (
	EventFileAccepted    SessionEvent = "fileAccepted"
	EventParsed          SessionEvent = "parsed"
	EventParseRejected   SessionEvent = "parseRejected"
	EventMappingChanged  SessionEvent = "mappingChanged"
	EventUploadStarted   SessionEvent = "uploadStarted"
	EventUploadSucceeded SessionEvent = "uploadSucceeded"
	EventUploadFailed    SessionEvent = "uploadFailed"
	EventReset           SessionEvent = "reset"
)

// transitions is the session state machine:
// idle → parsing → (rejected | mapped); mapped ⇄ mapped on edits;
// mapped → uploading → (complete | mapped with error).
// rejected and complete are terminal until an explicit reset.
var transitions = map[SessionState]map[SessionEvent]SessionState{
	StateIdle: {
		EventFileAccepted: StateParsing,
	},
	StateParsing: {
		EventParsed:        StateMapped,
		EventParseRejected: StateRejected,
	},
	StateMapped: {
		EventMappingChanged: StateMapped,
		EventUploadStarted:  StateUploading,
		EventReset:          StateIdle,
	},
	StateUploading: {
		EventUploadSucceeded: StateComplete,
		EventUploadFailed:    StateMapped,
	},
	StateRejected: {
		EventReset: StateIdle,
	},
	StateComplete: {
		EventReset: StateIdle,
	},
}

// Apply advances the session state machine by one event. It mutates
// nothing but State and UpdatedAt; callers adjust the rest of the
// session under the same store lock.
func (s *ImportSession) Apply(event SessionEvent) error {
	next, ok := transitions[s.State][event]
	if !ok {
		return &InvalidTransitionError{State: s.State, Event: event}
	}
	s.State = next
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// NewImportSession creates an idle session for one file attempt
func NewImportSession(fileName string, sizeBytes int64) *ImportSession {
	now := time.Now().UTC()
	return &ImportSession{
		ID:            uuid.NewString(),
		State:         StateIdle,
		FileName:      fileName,
		FileSizeBytes: sizeBytes,
		Dedup:         DefaultDedupConfig(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SessionStore keeps live import sessions in memory only. Sessions are
// transient by contract: an explicit reset or a completed upload is the
// end of their life, and nothing is ever persisted.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*ImportSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*ImportSession),
	}
}

// Put registers a session under its ID
func (st *SessionStore) Put(session *ImportSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session
}

// Snapshot returns a copy of the session safe to read outside the lock.
// Rows are shared (they are immutable after parse); mappings are copied
// because the user edits them.
func (st *SessionStore) Snapshot(id string) (*ImportSession, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := *session
	copied.Mappings = make([]ColumnMapping, len(session.Mappings))
	copy(copied.Mappings, session.Mappings)
	return &copied, nil
}

// Mutate runs fn on the live session under the store lock
func (st *SessionStore) Mutate(id string, fn func(*ImportSession) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(session)
}

// Delete discards a session entirely
func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}
