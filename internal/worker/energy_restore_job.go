package worker

import (
	"context"
	"time"

	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/metrics"
	"github.com/virelli/ArenaForge_Go/internal/repository"
)

// EnergyRestoreJob tops up energy for accounts active within the last week.
// Scheduled on a fixed interval; each run is a single bulk update.
type EnergyRestoreJob struct {
	repo repository.Account
}

// NewEnergyRestoreJob creates a new EnergyRestoreJob
func NewEnergyRestoreJob(repo repository.Account) *EnergyRestoreJob {
	return &EnergyRestoreJob{repo: repo}
}

func (j *EnergyRestoreJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEnergyRestoreStarting)

	activeSince := time.Now().UTC().AddDate(0, 0, -domain.ActiveWindowDays)
	affected, err := j.repo.RestoreEnergy(ctx, domain.EnergyRestoreAmount, activeSince)
	if err != nil {
		log.Error(LogMsgEnergyRestoreFailed, "error", err)
		return err
	}

	metrics.EnergyRestoredAccounts.Add(float64(affected))
	log.Info(LogMsgEnergyRestoreCompleted, "accounts_restored", affected)
	return nil
}
