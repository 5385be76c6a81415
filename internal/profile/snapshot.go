package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// snapshotVersion is the only snapshot format understood by import.
const snapshotVersion = "1.0"

var (
	// ErrImportVersion is returned for a snapshot with an unknown version.
	ErrImportVersion = errors.New("unsupported snapshot version")
	// ErrImportPayload is returned for a snapshot whose payload is not a
	// usable profile.
	ErrImportPayload = errors.New("snapshot does not contain a profile")
)

// Snapshot is the portable export format. It wraps the profile so a future
// format change can be detected by version.
type Snapshot struct {
	Version    string    `json:"version"`
	ExportDate time.Time `json:"exportDate"`
	UserData   *Profile  `json:"userData"`
}

// ExportSnapshot serializes the current profile for transfer to another
// machine.
func (s *Store) ExportSnapshot() ([]byte, error) {
	snapshot := Snapshot{
		Version:    snapshotVersion,
		ExportDate: s.now(),
		UserData:   s.Load(),
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent(snapshot) > %w", err)
	}
	return payload, nil
}

// ImportSnapshot replaces the profile with the one in the snapshot. The
// snapshot is validated in full before anything is mutated, so a bad import
// leaves the existing profile untouched.
func (s *Store) ImportSnapshot(payload []byte) error {
	var snapshot Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return fmt.Errorf("json.Unmarshal(snapshot) > %w", err)
	}
	if snapshot.Version != snapshotVersion {
		return fmt.Errorf("%w: %q", ErrImportVersion, snapshot.Version)
	}
	if snapshot.UserData == nil || snapshot.UserData.ID == "" {
		return ErrImportPayload
	}

	s.profile = snapshot.UserData
	return s.Save()
}
