package entity

import (
	"testing"
	"time"

	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStatus_AppendsHistory(t *testing.T) {
	jc := &JobCard{Status: enum.JobCardStatusReceived}
	now := time.Now()

	jc.ApplyStatus(enum.JobCardStatusDiagnosis, now, "Inspection done", "admin")

	assert.Equal(t, enum.JobCardStatusDiagnosis, jc.Status)
	require.Len(t, jc.StatusHistory, 1)
	assert.Equal(t, enum.JobCardStatusDiagnosis, jc.StatusHistory[0].Status)
	assert.Equal(t, "Inspection done", jc.StatusHistory[0].Notes)
	assert.Equal(t, "admin", jc.StatusHistory[0].UpdatedBy)
}

func TestApplyStatus_MilestonesSetOnce(t *testing.T) {
	jc := &JobCard{Status: enum.JobCardStatusReceived}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	jc.ApplyStatus(enum.JobCardStatusReady, first, "", "admin")
	require.NotNil(t, jc.ReadyAt)
	assert.Equal(t, first, *jc.ReadyAt)

	// Moving away and back keeps the original milestone
	jc.ApplyStatus(enum.JobCardStatusInProgress, first.Add(time.Hour), "rework", "admin")
	jc.ApplyStatus(enum.JobCardStatusReady, second, "", "admin")

	assert.Equal(t, first, *jc.ReadyAt)
	assert.Len(t, jc.StatusHistory, 3)
}

func TestApplyStatus_AllMilestones(t *testing.T) {
	jc := &JobCard{Status: enum.JobCardStatusReceived}
	now := time.Now()

	jc.ApplyStatus(enum.JobCardStatusDiagnosis, now, "", "")
	jc.ApplyStatus(enum.JobCardStatusInProgress, now, "", "")
	jc.ApplyStatus(enum.JobCardStatusReady, now, "", "")
	jc.ApplyStatus(enum.JobCardStatusDelivered, now, "", "")

	assert.NotNil(t, jc.DiagnosisCompletedAt)
	assert.NotNil(t, jc.RepairStartedAt)
	assert.NotNil(t, jc.ReadyAt)
	assert.NotNil(t, jc.DeliveredAt)
}

func TestApplyStatus_AnyTransitionAllowed(t *testing.T) {
	jc := &JobCard{Status: enum.JobCardStatusDelivered}

	jc.ApplyStatus(enum.JobCardStatusReceived, time.Now(), "vehicle returned", "admin")

	assert.Equal(t, enum.JobCardStatusReceived, jc.Status)
}

func TestRecomputeFinalTotal(t *testing.T) {
	jc := &JobCard{
		ServicesRequested: []ServiceItem{
			{Name: "General Service", EstimatedCost: 1499, ActualCost: 1600},
			{Name: "Brake Check", EstimatedCost: 300, ActualCost: 0},
		},
		PartsUsed: []PartItem{
			{Name: "Oil Filter", Quantity: 1, UnitPrice: 450, Total: 450},
			{Name: "Spark Plug", Quantity: 4, UnitPrice: 120, Total: 480},
		},
		LabourCharges: 500,
	}

	jc.RecomputeFinalTotal()

	// Parts 930 + actual service costs 1600 + labour 500. Uncosted services
	// contribute nothing until an actual cost is entered.
	assert.Equal(t, 3030.0, jc.FinalTotal)
}

func TestRecomputeFinalTotal_Empty(t *testing.T) {
	jc := &JobCard{FinalTotal: 999}
	jc.RecomputeFinalTotal()
	assert.Equal(t, 0.0, jc.FinalTotal)
}
