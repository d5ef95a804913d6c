package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mentorly-admin/internal/common"
)

// Record is the persisted form of a session.
type Record struct {
	User         *models.UserProfile `json:"user"`
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
}

// Complete reports whether both tokens are present.
func (r *Record) Complete() bool {
	return r != nil && r.AccessToken != "" && r.RefreshToken != ""
}

// Store persists one session record across restarts.
//
// Load returns (nil, nil) when nothing has been saved.
type Store interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Clear(ctx context.Context) error
}

// SQLiteStore keeps the record as JSON under a single metadata key.
type SQLiteStore struct {
	repo metadata.Repository
	key  string
}

func NewSQLiteStore(repo metadata.Repository) *SQLiteStore {
	return &SQLiteStore{repo: repo, key: common.SessionStorageKey}
}

func (s *SQLiteStore) Load(ctx context.Context) (*Record, error) {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	return &rec, nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, s.key, data)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, s.key)
}
