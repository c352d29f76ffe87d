package leadimport

import (
	"errors"
	"testing"
)

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   SessionState
		event  SessionEvent
		want   SessionState
		wantOK bool
	}{
		{"accept file", StateIdle, EventFileAccepted, StateParsing, true},
		{"parse ok", StateParsing, EventParsed, StateMapped, true},
		{"parse rejected", StateParsing, EventParseRejected, StateRejected, true},
		{"edit mapping", StateMapped, EventMappingChanged, StateMapped, true},
		{"start upload", StateMapped, EventUploadStarted, StateUploading, true},
		{"upload ok", StateUploading, EventUploadSucceeded, StateComplete, true},
		{"upload failed back to mapped", StateUploading, EventUploadFailed, StateMapped, true},
		{"reset from mapped", StateMapped, EventReset, StateIdle, true},
		{"reset from rejected", StateRejected, EventReset, StateIdle, true},
		{"reset from complete", StateComplete, EventReset, StateIdle, true},

		{"cannot parse from idle", StateIdle, EventParsed, "", false},
		{"cannot edit after complete", StateComplete, EventMappingChanged, "", false},
		{"cannot edit while uploading", StateUploading, EventMappingChanged, "", false},
		{"cannot reset mid-upload", StateUploading, EventReset, "", false},
		{"cannot upload from rejected", StateRejected, EventUploadStarted, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewImportSession("leads.csv", 100)
			session.State = tt.from

			err := session.Apply(tt.event)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("Apply(%s) from %s: unexpected error %v", tt.event, tt.from, err)
				}
				if session.State != tt.want {
					t.Errorf("state = %s, want %s", session.State, tt.want)
				}
				return
			}

			var badTransition *InvalidTransitionError
			if !errors.As(err, &badTransition) {
				t.Fatalf("Apply(%s) from %s: got %v, want InvalidTransitionError", tt.event, tt.from, err)
			}
			if session.State != tt.from {
				t.Errorf("state changed on invalid transition: %s", session.State)
			}
		})
	}
}

func TestSessionStoreSnapshotIsolation(t *testing.T) {
	store := NewSessionStore()

	session := NewImportSession("leads.csv", 100)
	session.State = StateMapped
	session.Mappings = []ColumnMapping{
		{SourceColumn: "Email", TargetField: TargetEmail, SampleValues: []string{"a@x.com"}},
	}
	store.Put(session)

	snap, err := store.Snapshot(session.ID)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	// Mutating the snapshot must not leak into the store
	snap.Mappings[0].TargetField = TargetDoNotImport

	again, _ := store.Snapshot(session.ID)
	if again.Mappings[0].TargetField != TargetEmail {
		t.Error("snapshot mutation leaked into the stored session")
	}
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore()

	if _, err := store.Snapshot("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Snapshot(missing) = %v, want ErrSessionNotFound", err)
	}
	if err := store.Mutate("missing", func(*ImportSession) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Mutate(missing) = %v, want ErrSessionNotFound", err)
	}
	if err := store.Delete("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Delete(missing) = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()
	session := NewImportSession("leads.csv", 100)
	store.Put(session)

	if err := store.Delete(session.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Snapshot(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("session still present after delete")
	}
}
