package mapping

import (
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	"github.com/smartcedi/cedis-tracker/internal/models"
)

// ToModelSavingsGoal converts a domain SavingsGoal to a model SavingsGoal
func ToModelSavingsGoal(d domain.SavingsGoal) models.SavingsGoal {
	return models.SavingsGoal{
		GoalID:        d.GoalID,
		UserID:        d.UserID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Color:         d.Color,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSavingsGoal converts a model SavingsGoal to a domain SavingsGoal
func ToDomainSavingsGoal(m models.SavingsGoal) domain.SavingsGoal {
	return domain.SavingsGoal{
		GoalID:        m.GoalID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		Color:         m.Color,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSavingsGoalSlice converts a slice of model SavingsGoals to domain SavingsGoals
func ToDomainSavingsGoalSlice(ms []models.SavingsGoal) []domain.SavingsGoal {
	ds := make([]domain.SavingsGoal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSavingsGoal(m)
	}
	return ds
}
