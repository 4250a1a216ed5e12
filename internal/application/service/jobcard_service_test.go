package service

import (
	"testing"
	"time"

	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrackingResult_Timeline(t *testing.T) {
	received := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	repairStarted := received.Add(4 * time.Hour)

	jc := &entity.JobCard{
		JobCardNumber:   "JC-2026-0007",
		CustomerName:    "Ravi Kumar",
		VehicleBrand:    "Honda",
		VehicleModel:    "Activa",
		VehicleNumber:   "KA01AB1234",
		Status:          enum.JobCardStatusInProgress,
		ReceivedAt:      received,
		RepairStartedAt: &repairStarted,
		EstimatedTotal:  1499,
	}

	result := buildTrackingResult(jc)

	assert.Equal(t, "JC-2026-0007", result.JobCardNumber)
	assert.Equal(t, enum.JobCardStatusInProgress, result.Status)
	assert.Equal(t, "Repair In Progress", result.StatusLabel)
	require.Len(t, result.Timeline, 5)

	// Steps up to and including the current one are completed
	assert.True(t, result.Timeline[0].Completed)
	assert.True(t, result.Timeline[1].Completed)
	assert.True(t, result.Timeline[2].Completed)
	assert.False(t, result.Timeline[3].Completed)
	assert.False(t, result.Timeline[4].Completed)

	assert.True(t, result.Timeline[2].Current)
	assert.False(t, result.Timeline[1].Current)

	require.NotNil(t, result.Timeline[0].Timestamp)
	assert.Equal(t, received, *result.Timeline[0].Timestamp)
	// Diagnosis was skipped so its milestone is empty even though the step
	// shows completed
	assert.Nil(t, result.Timeline[1].Timestamp)
	require.NotNil(t, result.Timeline[2].Timestamp)
	assert.Equal(t, repairStarted, *result.Timeline[2].Timestamp)
}

func TestBuildTrackingResult_Delivered(t *testing.T) {
	delivered := time.Now()
	jc := &entity.JobCard{
		JobCardNumber: "JC-2026-0008",
		Status:        enum.JobCardStatusDelivered,
		ReceivedAt:    delivered.Add(-72 * time.Hour),
		DeliveredAt:   &delivered,
	}

	result := buildTrackingResult(jc)

	for _, step := range result.Timeline {
		assert.True(t, step.Completed)
	}
	assert.True(t, result.Timeline[4].Current)
}

func TestPromoteFromBooking(t *testing.T) {
	svc := &JobCardService{}

	serviceType := &entity.Service{
		Name:             "General Service",
		ShortDescription: "Periodic maintenance",
		BasePrice:        1499,
	}
	booking := &entity.Booking{
		CustomerName:  "Priya Sharma",
		Phone:         "9876543210",
		Email:         "priya@example.com",
		VehicleType:   enum.VehicleType4W,
		VehicleBrand:  "Maruti",
		VehicleModel:  "Swift",
		VehicleNumber: "ka05mn6789",
		ServiceType:   serviceType,
		Notes:         "AC not cooling",
	}

	jc := &entity.JobCard{}
	svc.promoteFromBooking(jc, booking)

	assert.Equal(t, "Priya Sharma", jc.CustomerName)
	assert.Equal(t, "9876543210", jc.Phone)
	assert.Equal(t, enum.VehicleType4W, jc.VehicleType)
	assert.Equal(t, "KA05MN6789", jc.VehicleNumber)
	assert.Equal(t, "AC not cooling", jc.CustomerNotes)

	require.Len(t, jc.ServicesRequested, 1)
	assert.Equal(t, "General Service", jc.ServicesRequested[0].Name)
	assert.Equal(t, 1499.0, jc.ServicesRequested[0].EstimatedCost)
	assert.Equal(t, 1499.0, jc.EstimatedTotal)
}

func TestPromoteFromBooking_ExplicitFieldsWin(t *testing.T) {
	svc := &JobCardService{}

	booking := &entity.Booking{
		CustomerName: "Priya Sharma",
		Phone:        "9876543210",
		VehicleType:  enum.VehicleType4W,
	}

	jc := &entity.JobCard{
		CustomerName: "Priya S",
		Phone:        "9123456789",
		ServicesRequested: []entity.ServiceItem{
			{Name: "Custom Work", EstimatedCost: 2000},
		},
	}
	svc.promoteFromBooking(jc, booking)

	assert.Equal(t, "Priya S", jc.CustomerName)
	assert.Equal(t, "9123456789", jc.Phone)
	assert.Len(t, jc.ServicesRequested, 1)
	assert.Equal(t, "Custom Work", jc.ServicesRequested[0].Name)
}
