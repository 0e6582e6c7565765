package service

import (
	"go.uber.org/zap"

	"github-migrator/internal/domain/entity"
)

// journal records the outcome of every migration step so a failed run can
// report exactly which steps completed.
type journal struct {
	report *entity.MigrationReport
	logger *zap.Logger
}

func newJournal(report *entity.MigrationReport, logger *zap.Logger) *journal {
	report.Journal = make([]entity.StepRecord, len(entity.Steps))
	for i, step := range entity.Steps {
		report.Journal[i] = entity.StepRecord{Step: step, Status: entity.StepPending}
	}
	return &journal{report: report, logger: logger}
}

func (j *journal) set(step entity.Step, status entity.StepStatus, detail string) {
	for i := range j.report.Journal {
		if j.report.Journal[i].Step == step {
			j.report.Journal[i].Status = status
			j.report.Journal[i].Detail = detail
			return
		}
	}
}

func (j *journal) complete(step entity.Step, detail string) {
	j.set(step, entity.StepCompleted, detail)
	j.logger.Debug("step completed", zap.String("step", string(step)), zap.String("detail", detail))
}

// fail marks step as failed and every pending step as skipped.
func (j *journal) fail(step entity.Step, err error) {
	j.set(step, entity.StepFailed, err.Error())
	for i := range j.report.Journal {
		if j.report.Journal[i].Status == entity.StepPending {
			j.report.Journal[i].Status = entity.StepSkipped
		}
	}
	j.logger.Error("❌ Migration step failed",
		zap.String("step", string(step)),
		zap.Any("completed_steps", j.report.CompletedSteps()),
		zap.Error(err))
}
