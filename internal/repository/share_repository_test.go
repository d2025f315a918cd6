package repository_test

import (
	"testing"
	"time"

	"github.com/sageplan/sage-backend/internal/model"
	"github.com/sageplan/sage-backend/internal/repository"
	"github.com/sageplan/sage-backend/internal/testutil"
)

// TestShareRepository_PruneRejectedBefore tests the retention cleanup used
// by the background job.
//
// WHY: Rejected consent records are kept only for a retention window.
// Pruning must remove old rejected records while never touching accepted
// ones, regardless of age.
func TestShareRepository_PruneRejectedBefore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewShareRepository(db)

	userID := testutil.MakeID()
	advisorID := testutil.MakeID()
	now := time.Now().UTC()

	oldRejected := testutil.CreateShare(t, db, userID, advisorID, model.ConsentRejected, now.AddDate(0, 0, -60))
	testutil.CreateShare(t, db, userID, advisorID, model.ConsentRejected, now.AddDate(0, 0, -1))
	oldAccepted := testutil.CreateShare(t, db, userID, advisorID, model.ConsentAccepted, now.AddDate(0, 0, -60))

	pruned, err := repo.PruneRejectedBefore(now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("PruneRejectedBefore() returned unexpected error: %v", err)
	}
	if pruned != 1 {
		t.Errorf("Expected 1 pruned record, got %d", pruned)
	}

	// The old rejected record is gone
	if _, err := repo.GetOnID(oldRejected.ID); err == nil {
		t.Error("Expected old rejected share to be pruned")
	}

	// The old accepted record survives
	if _, err := repo.GetOnID(oldAccepted.ID); err != nil {
		t.Errorf("Expected old accepted share to survive, got %v", err)
	}
}
