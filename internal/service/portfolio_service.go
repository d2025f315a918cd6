package service

import (
	"time"

	"github.com/sageplan/sage-backend/internal/apperrors"
	"github.com/sageplan/sage-backend/internal/engine"
	"github.com/sageplan/sage-backend/internal/model"
	"github.com/sageplan/sage-backend/internal/repository"
)

// assumedAnnualReturn drives the synthetic performance series.
const assumedAnnualReturn = 0.07

// PortfolioService produces baseline portfolio state for a profile. With no
// brokerage integration, the synthesizer is the system of record: the
// portfolio is regenerated from the profile on every call, never cached or
// mutated.
type PortfolioService struct {
	profileRepo *repository.ProfileRepository
	now         func() time.Time
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(profileRepo *repository.ProfileRepository) *PortfolioService {
	return &PortfolioService{
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// GetProfiles returns all seeded profiles.
func (s *PortfolioService) GetProfiles() ([]model.UserProfile, error) {
	return s.profileRepo.GetProfiles()
}

// GetProfile returns one profile by ID.
func (s *PortfolioService) GetProfile(profileID string) (model.UserProfile, error) {
	return s.profileRepo.GetProfileOnID(profileID)
}

// GetPortfolio synthesizes the baseline portfolio for a profile.
func (s *PortfolioService) GetPortfolio(profileID string) (model.PortfolioData, error) {
	profile, err := s.profileRepo.GetProfileOnID(profileID)
	if err != nil {
		return model.PortfolioData{}, err
	}

	return engine.SynthesizePortfolio(&profile, s.now()), nil
}

// GetPerformanceSeries generates the portfolio value series for a named
// range preset.
func (s *PortfolioService) GetPerformanceSeries(profileID string, rangeName string) ([]model.PerformancePoint, error) {
	days, step, ok := engine.RangeWindow(engine.PerformanceRange(rangeName))
	if !ok {
		return nil, apperrors.ErrInvalidRange
	}

	portfolio, err := s.GetPortfolio(profileID)
	if err != nil {
		return nil, err
	}

	return engine.GeneratePerformanceSeries(portfolio.TotalValue, assumedAnnualReturn, days, step, s.now()), nil
}

// Snapshot trims a portfolio down to the shape sent to the reasoning
// service.
func Snapshot(p model.PortfolioData) model.PortfolioSnapshot {
	accounts := make([]model.PortfolioSnapshotAccount, len(p.Accounts))
	for i, a := range p.Accounts {
		accounts[i] = model.PortfolioSnapshotAccount{
			ID:      a.ID,
			Name:    a.Name,
			Balance: a.Balance,
		}
	}

	holdings := make([]model.PortfolioSnapshotHolding, len(p.Holdings))
	for i, h := range p.Holdings {
		holdings[i] = model.PortfolioSnapshotHolding{
			Symbol:     h.Symbol,
			Name:       h.Name,
			Value:      h.Value,
			Allocation: h.Allocation,
		}
	}

	return model.PortfolioSnapshot{
		TotalValue: p.TotalValue,
		Accounts:   accounts,
		Holdings:   holdings,
	}
}
