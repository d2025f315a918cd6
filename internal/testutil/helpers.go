package testutil

import (
	"database/sql"
	"testing"

	"github.com/sageplan/sage-backend/internal/projection"
	"github.com/sageplan/sage-backend/internal/repository"
	"github.com/sageplan/sage-backend/internal/service"
)

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	profileRepo := repository.NewProfileRepository(db)

	return service.NewPortfolioService(profileRepo)
}

// NewTestScenarioService wires a scenario service against the given
// projection client. Pass projection.NewDemoClient() for deterministic
// behavior; the share token issuer is left unset.
func NewTestScenarioService(t *testing.T, db *sql.DB, client projection.Client) *service.ScenarioService {
	t.Helper()

	profileRepo := repository.NewProfileRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	shareRepo := repository.NewShareRepository(db)

	return service.NewScenarioService(
		profileRepo,
		scenarioRepo,
		shareRepo,
		client,
		projection.NewSequencer(),
		nil,
	)
}
