package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sageplan/sage-backend/internal/apperrors"
	"github.com/sageplan/sage-backend/internal/model"
)

// ShareRepository provides data access methods for the scenario_share
// table. Shares record a client's consent decision; only accepted records
// surface to advisors.
type ShareRepository struct {
	db *sql.DB
}

// NewShareRepository creates a new ShareRepository with the provided database connection.
func NewShareRepository(db *sql.DB) *ShareRepository {
	return &ShareRepository{db: db}
}

// Insert stores a consent record.
func (r *ShareRepository) Insert(s model.ScenarioShare) error {
	analysisJSON, err := json.Marshal(s.AnalysisPayload)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	query := `
          INSERT INTO scenario_share (id, user_id, advisor_id, scenario_description, analysis_json, consent_status, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `
	_, err = r.db.Exec(query,
		s.ID,
		s.UserID,
		s.AdvisorID,
		s.ScenarioDescription,
		string(analysisJSON),
		s.ConsentStatus,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert scenario share: %w", err)
	}

	return nil
}

// ListAccepted retrieves accepted shares for an advisor/client pair, newest
// first.
func (r *ShareRepository) ListAccepted(advisorID, userID string) ([]model.ScenarioShare, error) {
	query := `
          SELECT id, user_id, advisor_id, scenario_description, analysis_json, consent_status, created_at
          FROM scenario_share
          WHERE advisor_id = ? AND user_id = ? AND consent_status = ?
          ORDER BY created_at DESC
      `
	rows, err := r.db.Query(query, advisorID, userID, model.ConsentAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenario_share table: %w", err)
	}
	defer rows.Close()

	shares := []model.ScenarioShare{}

	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		shares = append(shares, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scenario_share table: %w", err)
	}

	return shares, nil
}

// GetOnID retrieves a single share record.
func (r *ShareRepository) GetOnID(shareID string) (model.ScenarioShare, error) {
	query := `
          SELECT id, user_id, advisor_id, scenario_description, analysis_json, consent_status, created_at
          FROM scenario_share
          WHERE id = ?
      `
	row := r.db.QueryRow(query, shareID)

	var (
		s            model.ScenarioShare
		analysisJSON string
		createdAt    string
	)
	err := row.Scan(&s.ID, &s.UserID, &s.AdvisorID, &s.ScenarioDescription, &analysisJSON, &s.ConsentStatus, &createdAt)
	if err == sql.ErrNoRows {
		return model.ScenarioShare{}, apperrors.ErrShareNotFound
	}
	if err != nil {
		return model.ScenarioShare{}, fmt.Errorf("failed to scan scenario share: %w", err)
	}

	if err := hydrateShare(&s, analysisJSON, createdAt); err != nil {
		return model.ScenarioShare{}, err
	}

	return s, nil
}

// PruneRejectedBefore deletes rejected consent records created before the
// cutoff. Returns the number of records removed.
func (r *ShareRepository) PruneRejectedBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(
		"DELETE FROM scenario_share WHERE consent_status = ? AND created_at < ?",
		model.ConsentRejected,
		cutoff.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune scenario shares: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check prune result: %w", err)
	}

	return affected, nil
}

func scanShare(rows *sql.Rows) (model.ScenarioShare, error) {
	var (
		s            model.ScenarioShare
		analysisJSON string
		createdAt    string
	)
	err := rows.Scan(&s.ID, &s.UserID, &s.AdvisorID, &s.ScenarioDescription, &analysisJSON, &s.ConsentStatus, &createdAt)
	if err != nil {
		return model.ScenarioShare{}, fmt.Errorf("failed to scan scenario_share table results: %w", err)
	}

	if err := hydrateShare(&s, analysisJSON, createdAt); err != nil {
		return model.ScenarioShare{}, err
	}

	return s, nil
}

func hydrateShare(s *model.ScenarioShare, analysisJSON, createdAt string) error {
	if err := json.Unmarshal([]byte(analysisJSON), &s.AnalysisPayload); err != nil {
		return fmt.Errorf("failed to unmarshal analysis payload: %w", err)
	}

	parsed, err := ParseTime(createdAt)
	if err != nil {
		return err
	}
	s.CreatedAt = parsed

	return nil
}
