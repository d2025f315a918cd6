package validation

import (
	"strings"

	"github.com/sageplan/sage-backend/internal/apperrors"
	"github.com/sageplan/sage-backend/internal/model"
)

// ValidateScenarioRequest runs the pre-flight checks on a projection
// request. Rejections here surface inline to the client and never reach the
// reasoning service.
func ValidateScenarioRequest(req model.ScenarioProjectionRequest) error {
	if strings.TrimSpace(req.ScenarioDescription) == "" {
		return apperrors.ErrEmptyScenarioDescription
	}
	if !model.ValidTimeframe(req.TimeframeMonths) {
		return apperrors.ErrInvalidTimeframe
	}
	return nil
}

// NormalizeConsentStatus checks a consent decision value and returns its
// canonical lowercase form. The normalized value is what gets stored and
// compared; accepting "Accepted" but persisting it verbatim would leave the
// share invisible to the advisor listing.
func NormalizeConsentStatus(status string) (string, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case model.ConsentAccepted, model.ConsentRejected:
		return status, nil
	}
	return "", apperrors.ErrInvalidConsentStatus
}
