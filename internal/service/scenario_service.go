package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sageplan/sage-backend/internal/apperrors"
	"github.com/sageplan/sage-backend/internal/engine"
	"github.com/sageplan/sage-backend/internal/model"
	"github.com/sageplan/sage-backend/internal/projection"
	"github.com/sageplan/sage-backend/internal/repository"
	"github.com/sageplan/sage-backend/internal/sharetoken"
	"github.com/sageplan/sage-backend/internal/validation"
)

// ProjectionOutcome pairs a reasoning-service response with the locally
// computed baseline comparison.
type ProjectionOutcome struct {
	Response   model.ScenarioProjectionResponse `json:"response"`
	Comparison model.ProjectionComparison       `json:"comparison"`
}

// ScenarioOverview is the combined scenario state for one user: their saved
// scenarios and the analyses they have consented to share.
type ScenarioOverview struct {
	Scenarios         []model.SavedScenarioSummary `json:"scenarios"`
	SharedWithAdvisor []model.ScenarioShare        `json:"shared_with_advisor"`
}

// ScenarioService orchestrates scenario projections, saved scenarios, and
// advisor consent shares. The projection client is fixed at construction;
// demo and live deployments differ only in which client is wired in.
type ScenarioService struct {
	profileRepo  *repository.ProfileRepository
	scenarioRepo *repository.ScenarioRepository
	shareRepo    *repository.ShareRepository
	client       projection.Client
	sequencer    *projection.Sequencer
	issuer       *sharetoken.Issuer
	now          func() time.Time
}

// NewScenarioService creates a new ScenarioService. The issuer may be nil;
// share links are then disabled and consent records are stored without a
// token.
func NewScenarioService(
	profileRepo *repository.ProfileRepository,
	scenarioRepo *repository.ScenarioRepository,
	shareRepo *repository.ShareRepository,
	client projection.Client,
	sequencer *projection.Sequencer,
	issuer *sharetoken.Issuer,
) *ScenarioService {
	return &ScenarioService{
		profileRepo:  profileRepo,
		scenarioRepo: scenarioRepo,
		shareRepo:    shareRepo,
		client:       client,
		sequencer:    sequencer,
		issuer:       issuer,
		now:          time.Now,
	}
}

// Project runs one scenario projection for a profile. Submitting a new
// scenario supersedes any in-flight projection for the same user: when a
// response arrives for a request that is no longer the newest, it is
// discarded whole and ErrProjectionSuperseded is returned. No partial state
// survives a failed or superseded projection.
func (s *ScenarioService) Project(ctx context.Context, profileID, description string, timeframeMonths int) (ProjectionOutcome, error) {
	req := model.ScenarioProjectionRequest{
		ProfileID:           profileID,
		ScenarioDescription: description,
		TimeframeMonths:     timeframeMonths,
	}
	if err := validation.ValidateScenarioRequest(req); err != nil {
		return ProjectionOutcome{}, err
	}

	profile, err := s.profileRepo.GetProfileOnID(profileID)
	if err != nil {
		return ProjectionOutcome{}, err
	}

	baseline := engine.SynthesizePortfolio(&profile, s.now())
	req.CurrentPortfolio = Snapshot(baseline)

	// Issued before the call so that a newer submission can invalidate
	// this one while it is still on the wire.
	token := s.sequencer.Begin(profileID)

	resp, err := s.client.ProjectScenario(ctx, req)
	if err != nil {
		return ProjectionOutcome{}, fmt.Errorf("%w: %v", apperrors.ErrProjectionFailed, err)
	}

	if !s.sequencer.IsCurrent(profileID, token) {
		return ProjectionOutcome{}, apperrors.ErrProjectionSuperseded
	}

	return ProjectionOutcome{
		Response:   resp,
		Comparison: engine.MergeProjection(baseline, resp),
	}, nil
}

// SaveScenario persists a completed projection under a user-chosen name.
func (s *ScenarioService) SaveScenario(userID, name, description string, timeframeMonths int, result model.ScenarioProjectionResponse) (model.SavedScenario, error) {
	if err := validation.ValidateNonEmpty("name", name); err != nil {
		return model.SavedScenario{}, err
	}
	if !model.ValidTimeframe(timeframeMonths) {
		return model.SavedScenario{}, apperrors.ErrInvalidTimeframe
	}

	scenario := model.SavedScenario{
		ID:               uuid.New().String(),
		UserID:           userID,
		Name:             name,
		Description:      description,
		TimeframeMonths:  timeframeMonths,
		ProjectionResult: result,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.scenarioRepo.Insert(scenario); err != nil {
		return model.SavedScenario{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToSaveScenario, err)
	}

	return scenario, nil
}

// ListScenarios returns the user's saved scenarios as list summaries,
// newest first.
func (s *ScenarioService) ListScenarios(userID string) ([]model.SavedScenarioSummary, error) {
	scenarios, err := s.scenarioRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveScenarios, err)
	}

	summaries := make([]model.SavedScenarioSummary, len(scenarios))
	for i, sc := range scenarios {
		summaries[i] = model.SavedScenarioSummary{
			ID:                 sc.ID,
			Name:               sc.Name,
			Description:        sc.Description,
			TimeframeMonths:    sc.TimeframeMonths,
			TotalChangePercent: sc.ProjectionResult.Projection.TotalChangePercent,
			CreatedAt:          sc.CreatedAt,
		}
	}

	return summaries, nil
}

// GetScenario returns one saved scenario with its full projection.
func (s *ScenarioService) GetScenario(userID, scenarioID string) (model.SavedScenario, error) {
	return s.scenarioRepo.GetOnID(userID, scenarioID)
}

// DeleteScenario removes a saved scenario.
func (s *ScenarioService) DeleteScenario(userID, scenarioID string) error {
	err := s.scenarioRepo.Delete(userID, scenarioID)
	if err != nil && !errors.Is(err, apperrors.ErrScenarioNotFound) {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToDeleteScenario, err)
	}
	return err
}

// RecordConsent stores a client's decision on sharing a scenario analysis
// with their advisor. Both decisions are recorded; rejected records exist
// only for audit and are pruned on a schedule. For accepted shares a signed
// access token is returned when an issuer is configured.
func (s *ScenarioService) RecordConsent(userID, advisorID, description, status string, analysis map[string]any) (model.ScenarioShare, string, error) {
	status, err := validation.NormalizeConsentStatus(status)
	if err != nil {
		return model.ScenarioShare{}, "", err
	}

	share := model.ScenarioShare{
		ID:                  uuid.New().String(),
		UserID:              userID,
		AdvisorID:           advisorID,
		ScenarioDescription: description,
		AnalysisPayload:     analysis,
		ConsentStatus:       status,
		CreatedAt:           s.now().UTC(),
	}

	if err := s.shareRepo.Insert(share); err != nil {
		return model.ScenarioShare{}, "", fmt.Errorf("%w: %v", apperrors.ErrFailedToRecordConsent, err)
	}

	var token string
	if status == model.ConsentAccepted && s.issuer != nil {
		t, err := s.issuer.Issue(share.ID)
		if err != nil {
			return model.ScenarioShare{}, "", fmt.Errorf("%w: %v", apperrors.ErrFailedToRecordConsent, err)
		}
		token = t
	}

	return share, token, nil
}

// ListSharedScenarios returns the accepted shares an advisor can see for
// one client.
func (s *ScenarioService) ListSharedScenarios(advisorID, userID string) ([]model.ScenarioShare, error) {
	shares, err := s.shareRepo.ListAccepted(advisorID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveShares, err)
	}
	return shares, nil
}

// GetShareByToken resolves a signed share token to its consent record.
// Invalid, expired, or tampered tokens all surface as not-found.
func (s *ScenarioService) GetShareByToken(token string) (model.ScenarioShare, error) {
	if s.issuer == nil {
		return model.ScenarioShare{}, apperrors.ErrShareNotFound
	}

	shareID, err := s.issuer.Verify(token)
	if err != nil {
		return model.ScenarioShare{}, apperrors.ErrShareNotFound
	}

	return s.shareRepo.GetOnID(shareID)
}

// Overview assembles the user's scenario state in one call: saved scenario
// summaries and the analyses shared with their advisor, loaded
// concurrently.
func (s *ScenarioService) Overview(ctx context.Context, userID string) (ScenarioOverview, error) {
	profile, err := s.profileRepo.GetProfileOnID(userID)
	if err != nil {
		return ScenarioOverview{}, err
	}

	var overview ScenarioOverview

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		summaries, err := s.ListScenarios(userID)
		if err != nil {
			return err
		}
		overview.Scenarios = summaries
		return nil
	})
	g.Go(func() error {
		shares, err := s.ListSharedScenarios(profile.AdvisorID, userID)
		if err != nil {
			return err
		}
		overview.SharedWithAdvisor = shares
		return nil
	})

	if err := g.Wait(); err != nil {
		return ScenarioOverview{}, err
	}

	return overview, nil
}

// quickScenarios are the preset what-if prompts offered in the scenario
// composer.
var quickScenarios = []string{
	"What if I retire at 55 instead of 65?",
	"What if I max out my 401(k) contributions?",
	"What if the market drops 20% next year?",
	"What if I increase my savings rate to 25%?",
	"What if I buy a second home in five years?",
	"What if inflation stays above 4% for a decade?",
	"What if I shift my portfolio to 80% bonds?",
	"What if I take a sabbatical for a year?",
	"What if I start a backdoor Roth IRA?",
	"What if I downsize my home at retirement?",
}

// QuickScenarios returns the preset scenario prompts.
func (s *ScenarioService) QuickScenarios() []string {
	return append([]string(nil), quickScenarios...)
}
