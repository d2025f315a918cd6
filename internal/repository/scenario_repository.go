package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sageplan/sage-backend/internal/apperrors"
	"github.com/sageplan/sage-backend/internal/model"
)

// ScenarioRepository provides data access methods for the saved_scenario
// table. Projection results are stored as a JSON document: the response is
// immutable after creation and is only ever read back whole.
type ScenarioRepository struct {
	db *sql.DB
}

// NewScenarioRepository creates a new ScenarioRepository with the provided database connection.
func NewScenarioRepository(db *sql.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

// Insert stores a saved scenario.
func (r *ScenarioRepository) Insert(s model.SavedScenario) error {
	projectionJSON, err := json.Marshal(s.ProjectionResult)
	if err != nil {
		return fmt.Errorf("failed to marshal projection result: %w", err)
	}

	query := `
          INSERT INTO saved_scenario (id, user_id, name, description, timeframe_months, projection_json, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `
	_, err = r.db.Exec(query,
		s.ID,
		s.UserID,
		s.Name,
		s.Description,
		s.TimeframeMonths,
		string(projectionJSON),
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert saved scenario: %w", err)
	}

	return nil
}

// ListForUser retrieves all saved scenarios for a user, newest first.
func (r *ScenarioRepository) ListForUser(userID string) ([]model.SavedScenario, error) {
	query := `
          SELECT id, user_id, name, description, timeframe_months, projection_json, created_at
          FROM saved_scenario
          WHERE user_id = ?
          ORDER BY created_at DESC
      `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved_scenario table: %w", err)
	}
	defer rows.Close()

	scenarios := []model.SavedScenario{}

	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved_scenario table: %w", err)
	}

	return scenarios, nil
}

// GetOnID retrieves one saved scenario scoped to its owner.
func (r *ScenarioRepository) GetOnID(userID, scenarioID string) (model.SavedScenario, error) {
	query := `
          SELECT id, user_id, name, description, timeframe_months, projection_json, created_at
          FROM saved_scenario
          WHERE user_id = ? AND id = ?
      `
	row := r.db.QueryRow(query, userID, scenarioID)

	var (
		s              model.SavedScenario
		projectionJSON string
		createdAt      string
	)
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.TimeframeMonths, &projectionJSON, &createdAt)
	if err == sql.ErrNoRows {
		return model.SavedScenario{}, apperrors.ErrScenarioNotFound
	}
	if err != nil {
		return model.SavedScenario{}, fmt.Errorf("failed to scan saved scenario: %w", err)
	}

	if err := hydrateScenario(&s, projectionJSON, createdAt); err != nil {
		return model.SavedScenario{}, err
	}

	return s, nil
}

// Delete removes a saved scenario scoped to its owner.
func (r *ScenarioRepository) Delete(userID, scenarioID string) error {
	result, err := r.db.Exec("DELETE FROM saved_scenario WHERE user_id = ? AND id = ?", userID, scenarioID)
	if err != nil {
		return fmt.Errorf("failed to delete saved scenario: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrScenarioNotFound
	}

	return nil
}

func scanScenario(rows *sql.Rows) (model.SavedScenario, error) {
	var (
		s              model.SavedScenario
		projectionJSON string
		createdAt      string
	)
	err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.TimeframeMonths, &projectionJSON, &createdAt)
	if err != nil {
		return model.SavedScenario{}, fmt.Errorf("failed to scan saved_scenario table results: %w", err)
	}

	if err := hydrateScenario(&s, projectionJSON, createdAt); err != nil {
		return model.SavedScenario{}, err
	}

	return s, nil
}

func hydrateScenario(s *model.SavedScenario, projectionJSON, createdAt string) error {
	if err := json.Unmarshal([]byte(projectionJSON), &s.ProjectionResult); err != nil {
		return fmt.Errorf("failed to unmarshal projection result: %w", err)
	}

	parsed, err := ParseTime(createdAt)
	if err != nil {
		return err
	}
	s.CreatedAt = parsed

	return nil
}
