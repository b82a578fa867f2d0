package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// sessionStore is the SQLite-backed implementation of [SessionStore]. Both
// session entries live in a single key/value table as JSON blobs; every save
// overwrites the previous value.
type sessionStore struct {
	*DB
	logger *logger.Logger
}

// NewSessionStore constructs a [SessionStore] on the given connection,
// creating the session table if it does not yet exist.
func NewSessionStore(db *DB, logger *logger.Logger) (SessionStore, error) {
	if _, err := db.Exec(createSessionTable); err != nil {
		logger.Err(err).Str("func", "NewSessionStore").Msg("failed to create session table")
		return nil, fmt.Errorf("failed to create session table: %w", err)
	}

	return &sessionStore{
		DB:     db,
		logger: logger,
	}, nil
}

// SaveForm overwrites the stored intake form.
func (s *sessionStore) SaveForm(ctx context.Context, form models.IntakeForm) error {
	return s.saveValue(ctx, sessionKeyForm, form)
}

// LoadForm returns the stored intake form and whether one was present.
func (s *sessionStore) LoadForm(ctx context.Context) (models.IntakeForm, bool, error) {
	var form models.IntakeForm
	found, err := s.loadValue(ctx, sessionKeyForm, &form)
	if err != nil {
		return models.IntakeForm{}, false, err
	}
	return form, found, nil
}

// SaveCaptures overwrites the stored dense capture array.
func (s *sessionStore) SaveCaptures(ctx context.Context, captures []models.CaptureStepResult) error {
	return s.saveValue(ctx, sessionKeyCaptures, captures)
}

// LoadCaptures returns the stored capture array. An entry whose slot count
// differs from steps (after a step vocabulary change) is discarded whole
// rather than partially reused.
func (s *sessionStore) LoadCaptures(ctx context.Context, steps int) ([]models.CaptureStepResult, bool, error) {
	var captures []models.CaptureStepResult
	found, err := s.loadValue(ctx, sessionKeyCaptures, &captures)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	if len(captures) != steps {
		s.logger.Warn().
			Str("func", "sessionStore.LoadCaptures").
			Int("stored", len(captures)).
			Int("expected", steps).
			Msg("discarding stored captures with mismatched slot count")
		return nil, false, nil
	}

	return captures, true, nil
}

// Clear drops both session entries.
func (s *sessionStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteSessionValues, sessionKeyForm, sessionKeyCaptures); err != nil {
		log.Err(err).Str("func", "sessionStore.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionStore) saveValue(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(value)
	if err != nil {
		log.Err(err).
			Str("func", "sessionStore.saveValue").
			Str("key", key).
			Msg("failed to encode session value")
		return fmt.Errorf("failed to encode session value: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, upsertSessionValue, key, payload); err != nil {
		log.Err(err).
			Str("func", "sessionStore.saveValue").
			Str("key", key).
			Msg("failed to write session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionStore) loadValue(ctx context.Context, key string, dest any) (bool, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	row := s.DB.QueryRowContext(ctx, getSessionValue, key)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).
			Str("func", "sessionStore.loadValue").
			Str("key", key).
			Msg("failed to read session value")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		log.Err(err).
			Str("func", "sessionStore.loadValue").
			Str("key", key).
			Msg("failed to decode session value")
		return false, fmt.Errorf("failed to decode session value: %w", err)
	}

	return true, nil
}
