package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sageplan/sage-backend/internal/apperrors"
	"github.com/sageplan/sage-backend/internal/model"
	"github.com/sageplan/sage-backend/internal/projection"
	"github.com/sageplan/sage-backend/internal/repository"
	"github.com/sageplan/sage-backend/internal/service"
	"github.com/sageplan/sage-backend/internal/sharetoken"
	"github.com/sageplan/sage-backend/internal/testutil"
)

// stubClient lets a test observe or interfere with the projection call.
type stubClient struct {
	fn func(ctx context.Context, req model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error)
}

func (c *stubClient) ProjectScenario(ctx context.Context, req model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error) {
	return c.fn(ctx, req)
}

// TestScenarioService_Project tests the projection round trip against the
// demo projector.
//
// WHY: Project is the core operation of the scenario composer. The service
// must synthesize the baseline, send its snapshot, and reconcile the
// response into a comparison whose deltas are computed locally.
func TestScenarioService_Project(t *testing.T) {
	t.Run("returns comparison with projected totals", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Projection Client")

		// Execute
		outcome, err := svc.Project(context.Background(), profile.ID, "What if I retire at 55?", 12)

		// Assert
		if err != nil {
			t.Fatalf("Project() returned unexpected error: %v", err)
		}
		if !outcome.Comparison.Total.Projected {
			t.Error("Expected total comparison to be projected")
		}
		if outcome.Comparison.Total.Change <= 0 {
			t.Errorf("Expected positive 12-month growth, got %f", outcome.Comparison.Total.Change)
		}
		if outcome.Response.Summary == "" {
			t.Error("Expected a non-empty summary")
		}
		if len(outcome.Comparison.Holdings) == 0 {
			t.Error("Expected holding comparisons")
		}
	})

	t.Run("sends the synthesized baseline as the snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		var captured model.ScenarioProjectionRequest
		client := &stubClient{fn: func(_ context.Context, req model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error) {
			captured = req
			return testutil.SampleProjectionResponse(5), nil
		}}
		svc := testutil.NewTestScenarioService(t, db, client)
		profile := testutil.CreateProfile(t, db, "Snapshot Client")

		_, err := svc.Project(context.Background(), profile.ID, "What if I max out my 401(k)?", 6)
		if err != nil {
			t.Fatalf("Project() returned unexpected error: %v", err)
		}

		if captured.ProfileID != profile.ID {
			t.Errorf("Expected profile ID %s, got %s", profile.ID, captured.ProfileID)
		}
		if captured.CurrentPortfolio.TotalValue <= 0 {
			t.Error("Expected snapshot to carry the synthesized total")
		}
		if len(captured.CurrentPortfolio.Holdings) == 0 {
			t.Error("Expected snapshot holdings")
		}
	})

	t.Run("rejects empty description before any call", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		called := false
		client := &stubClient{fn: func(_ context.Context, _ model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error) {
			called = true
			return model.ScenarioProjectionResponse{}, nil
		}}
		svc := testutil.NewTestScenarioService(t, db, client)
		profile := testutil.CreateProfile(t, db, "Validation Client")

		_, err := svc.Project(context.Background(), profile.ID, "   ", 12)
		if !errors.Is(err, apperrors.ErrEmptyScenarioDescription) {
			t.Errorf("Expected ErrEmptyScenarioDescription, got %v", err)
		}
		if called {
			t.Error("Expected no projection call for an invalid request")
		}
	})

	t.Run("rejects unsupported timeframe", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Timeframe Client")

		_, err := svc.Project(context.Background(), profile.ID, "What if inflation spikes?", 9)
		if !errors.Is(err, apperrors.ErrInvalidTimeframe) {
			t.Errorf("Expected ErrInvalidTimeframe, got %v", err)
		}
	})

	t.Run("wraps transport failures as projection failed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		client := &stubClient{fn: func(_ context.Context, _ model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error) {
			return model.ScenarioProjectionResponse{}, errors.New("connection refused")
		}}
		svc := testutil.NewTestScenarioService(t, db, client)
		profile := testutil.CreateProfile(t, db, "Failing Client")

		_, err := svc.Project(context.Background(), profile.ID, "What if the market drops 20%?", 3)
		if !errors.Is(err, apperrors.ErrProjectionFailed) {
			t.Errorf("Expected ErrProjectionFailed, got %v", err)
		}
	})
}

// TestScenarioService_ProjectSupersession tests stale-response suppression.
//
// WHY: A user can submit a new scenario while an earlier one is still in
// flight. The earlier response must be discarded whole when it finally
// arrives; only the newest request's result may surface.
func TestScenarioService_ProjectSupersession(t *testing.T) {
	db := testutil.SetupTestDB(t)

	profileRepo := repository.NewProfileRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	shareRepo := repository.NewShareRepository(db)
	seq := projection.NewSequencer()

	profile := testutil.CreateProfile(t, db, "Impatient Client")

	// The stub simulates a newer submission arriving while this request
	// is still on the wire.
	client := &stubClient{fn: func(_ context.Context, _ model.ScenarioProjectionRequest) (model.ScenarioProjectionResponse, error) {
		seq.Begin(profile.ID)
		return testutil.SampleProjectionResponse(5), nil
	}}

	svc := service.NewScenarioService(profileRepo, scenarioRepo, shareRepo, client, seq, nil)

	_, err := svc.Project(context.Background(), profile.ID, "What if I retire at 55?", 12)
	if !errors.Is(err, apperrors.ErrProjectionSuperseded) {
		t.Errorf("Expected ErrProjectionSuperseded, got %v", err)
	}
}

// TestScenarioService_SavedScenarios tests the saved scenario lifecycle.
//
// WHY: Saved scenarios are the only persisted projection state. Listing
// must summarize without re-running projections, retrieval is owner-scoped,
// and deletion of a missing scenario reports not-found.
func TestScenarioService_SavedScenarios(t *testing.T) {
	t.Run("save then list returns summary with change percent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Saving Client")

		saved, err := svc.SaveScenario(profile.ID, "Early retirement", "What if I retire at 55?", 12, testutil.SampleProjectionResponse(9.1))
		if err != nil {
			t.Fatalf("SaveScenario() returned unexpected error: %v", err)
		}
		if saved.ID == "" {
			t.Error("Expected generated scenario ID")
		}

		summaries, err := svc.ListScenarios(profile.ID)
		if err != nil {
			t.Fatalf("ListScenarios() returned unexpected error: %v", err)
		}
		if len(summaries) != 1 {
			t.Fatalf("Expected 1 summary, got %d", len(summaries))
		}
		if summaries[0].TotalChangePercent != 9.1 {
			t.Errorf("Expected change percent 9.1, got %f", summaries[0].TotalChangePercent)
		}
	})

	t.Run("list is newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Ordered Client")

		now := time.Now().UTC()
		testutil.CreateSavedScenario(t, db, profile.ID, "Older", now.Add(-2*time.Hour))
		testutil.CreateSavedScenario(t, db, profile.ID, "Newer", now.Add(-1*time.Hour))

		summaries, err := svc.ListScenarios(profile.ID)
		if err != nil {
			t.Fatalf("ListScenarios() returned unexpected error: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("Expected 2 summaries, got %d", len(summaries))
		}
		if summaries[0].Name != "Newer" {
			t.Errorf("Expected newest first, got %s", summaries[0].Name)
		}
	})

	t.Run("get is scoped to the owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		owner := testutil.CreateProfile(t, db, "Owner")
		other := testutil.CreateProfile(t, db, "Other")

		scenario := testutil.CreateSavedScenario(t, db, owner.ID, "Private", time.Now())

		if _, err := svc.GetScenario(owner.ID, scenario.ID); err != nil {
			t.Fatalf("GetScenario() returned unexpected error: %v", err)
		}

		_, err := svc.GetScenario(other.ID, scenario.ID)
		if !errors.Is(err, apperrors.ErrScenarioNotFound) {
			t.Errorf("Expected ErrScenarioNotFound for other user, got %v", err)
		}
	})

	t.Run("delete missing scenario reports not-found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Deleting Client")

		err := svc.DeleteScenario(profile.ID, testutil.MakeID())
		if !errors.Is(err, apperrors.ErrScenarioNotFound) {
			t.Errorf("Expected ErrScenarioNotFound, got %v", err)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Nameless Client")

		_, err := svc.SaveScenario(profile.ID, "  ", "desc", 12, testutil.SampleProjectionResponse(5))
		if !errors.Is(err, apperrors.ErrMissingRequiredField) {
			t.Errorf("Expected ErrMissingRequiredField, got %v", err)
		}
	})
}

// TestScenarioService_Consent tests consent recording and advisor
// visibility.
//
// WHY: Only accepted shares may surface to advisors; rejected records exist
// for audit but never appear in advisor listings. Accepted shares get a
// signed token when an issuer is configured.
func TestScenarioService_Consent(t *testing.T) {
	t.Run("rejects unknown consent status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())

		_, _, err := svc.RecordConsent("user", "advisor", "desc", "maybe", nil)
		if !errors.Is(err, apperrors.ErrInvalidConsentStatus) {
			t.Errorf("Expected ErrInvalidConsentStatus, got %v", err)
		}
	})

	t.Run("mixed-case status is stored normalized and stays visible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Mixed Case Client")

		share, _, err := svc.RecordConsent(profile.ID, profile.AdvisorID, "What if I retire at 55?", " Accepted ", nil)
		if err != nil {
			t.Fatalf("RecordConsent() returned unexpected error: %v", err)
		}
		if share.ConsentStatus != model.ConsentAccepted {
			t.Errorf("Expected stored status %q, got %q", model.ConsentAccepted, share.ConsentStatus)
		}

		shares, err := svc.ListSharedScenarios(profile.AdvisorID, profile.ID)
		if err != nil {
			t.Fatalf("ListSharedScenarios() returned unexpected error: %v", err)
		}
		if len(shares) != 1 {
			t.Errorf("Expected the share to be visible to the advisor, got %d shares", len(shares))
		}
	})

	t.Run("only accepted shares are visible to the advisor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
		profile := testutil.CreateProfile(t, db, "Consenting Client")

		accepted, _, err := svc.RecordConsent(profile.ID, profile.AdvisorID, "What if I retire at 55?", model.ConsentAccepted, map[string]any{"headline": "On track"})
		if err != nil {
			t.Fatalf("RecordConsent() returned unexpected error: %v", err)
		}
		if _, _, err := svc.RecordConsent(profile.ID, profile.AdvisorID, "What if I sell everything?", model.ConsentRejected, nil); err != nil {
			t.Fatalf("RecordConsent() returned unexpected error: %v", err)
		}

		shares, err := svc.ListSharedScenarios(profile.AdvisorID, profile.ID)
		if err != nil {
			t.Fatalf("ListSharedScenarios() returned unexpected error: %v", err)
		}
		if len(shares) != 1 {
			t.Fatalf("Expected 1 visible share, got %d", len(shares))
		}
		if shares[0].ID != accepted.ID {
			t.Errorf("Expected accepted share %s, got %s", accepted.ID, shares[0].ID)
		}
	})

	t.Run("accepted share yields a resolvable token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		key, err := sharetoken.GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey() returned unexpected error: %v", err)
		}
		issuer, err := sharetoken.NewIssuer(key, time.Hour)
		if err != nil {
			t.Fatalf("NewIssuer() returned unexpected error: %v", err)
		}

		svc := service.NewScenarioService(
			repository.NewProfileRepository(db),
			repository.NewScenarioRepository(db),
			repository.NewShareRepository(db),
			projection.NewDemoClient(),
			projection.NewSequencer(),
			issuer,
		)
		profile := testutil.CreateProfile(t, db, "Tokened Client")

		share, token, err := svc.RecordConsent(profile.ID, profile.AdvisorID, "What if I downsize?", model.ConsentAccepted, nil)
		if err != nil {
			t.Fatalf("RecordConsent() returned unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("Expected a share token for an accepted consent")
		}

		resolved, err := svc.GetShareByToken(token)
		if err != nil {
			t.Fatalf("GetShareByToken() returned unexpected error: %v", err)
		}
		if resolved.ID != share.ID {
			t.Errorf("Expected share %s, got %s", share.ID, resolved.ID)
		}

		_, err = svc.GetShareByToken("not-a-token")
		if !errors.Is(err, apperrors.ErrShareNotFound) {
			t.Errorf("Expected ErrShareNotFound for a bad token, got %v", err)
		}
	})
}

// TestScenarioService_Overview tests the combined scenario overview.
//
// WHY: The overview backs a single dashboard panel and loads scenarios and
// shares concurrently; both halves must reflect the stored state.
func TestScenarioService_Overview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())
	profile := testutil.CreateProfile(t, db, "Overview Client")

	now := time.Now().UTC()
	testutil.CreateSavedScenario(t, db, profile.ID, "Saved", now)
	testutil.CreateShare(t, db, profile.ID, profile.AdvisorID, model.ConsentAccepted, now)
	testutil.CreateShare(t, db, profile.ID, profile.AdvisorID, model.ConsentRejected, now)

	overview, err := svc.Overview(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("Overview() returned unexpected error: %v", err)
	}

	if len(overview.Scenarios) != 1 {
		t.Errorf("Expected 1 scenario summary, got %d", len(overview.Scenarios))
	}
	if len(overview.SharedWithAdvisor) != 1 {
		t.Errorf("Expected 1 accepted share, got %d", len(overview.SharedWithAdvisor))
	}
}

// TestScenarioService_QuickScenarios tests the preset prompt list.
//
// WHY: The composer relies on a stable set of prompts; the returned slice
// must be a copy so callers cannot mutate the presets.
func TestScenarioService_QuickScenarios(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestScenarioService(t, db, projection.NewDemoClient())

	prompts := svc.QuickScenarios()
	if len(prompts) != 10 {
		t.Fatalf("Expected 10 quick scenarios, got %d", len(prompts))
	}

	prompts[0] = "mutated"
	if svc.QuickScenarios()[0] == "mutated" {
		t.Error("Expected QuickScenarios to return a copy")
	}
}
