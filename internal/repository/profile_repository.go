package repository

import (
	"database/sql"
	"fmt"

	"github.com/sageplan/sage-backend/internal/apperrors"
	"github.com/sageplan/sage-backend/internal/model"
)

// ProfileRepository provides data access methods for the profile table.
// Profiles are seeded reference data; this repository only reads.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository with the provided database connection.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, name, age, salary, current_cash, investment_assets,
          yearly_savings_rate, risk_appetite, target_retire_age,
          target_monthly_income, COALESCE(description, ''), COALESCE(advisor_id, '')`

// GetProfiles retrieves all profiles ordered by name.
func (r *ProfileRepository) GetProfiles() ([]model.UserProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM profile ORDER BY name", profileColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile table: %w", err)
	}
	defer rows.Close()

	profiles := []model.UserProfile{}

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile table results: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile table: %w", err)
	}

	return profiles, nil
}

// GetProfileOnID retrieves a single profile by ID.
func (r *ProfileRepository) GetProfileOnID(profileID string) (model.UserProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM profile WHERE id = ?", profileColumns)

	row := r.db.QueryRow(query, profileID)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return model.UserProfile{}, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to scan profile: %w", err)
	}

	return p, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (model.UserProfile, error) {
	var p model.UserProfile
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Salary,
		&p.CurrentCash,
		&p.InvestmentAssets,
		&p.YearlySavingsRate,
		&p.RiskAppetite,
		&p.TargetRetireAge,
		&p.TargetMonthlyIncome,
		&p.Description,
		&p.AdvisorID,
	)
	return p, err
}
