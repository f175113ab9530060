package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/db"
)

func TestAssignStaff_EligibleStaffIsAssigned(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", Title: "Spring campaign", DueDate: monday.AddDate(0, 0, 30), ShootHours: 8, EditHours: 12},
		},
	}

	result, err := AssignStaff(context.Background(), store, zap.NewNop(), "b1", "s1", false)

	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", result.StaffName)
	assert.Equal(t, 20.0, result.RequiredHours)
	assert.Equal(t, 160.0, result.AvailableHours)
	assert.False(t, result.Forced)
	assert.Equal(t, [][2]string{{"b1", "s1"}}, store.addedAssignments)
}

func TestAssignStaff_InsufficientHoursRejected(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 10},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 30), ShootHours: 8, EditHours: 12},
		},
	}

	_, err := AssignStaff(context.Background(), store, zap.NewNop(), "b1", "s1", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "10.0h available")
	assert.Contains(t, err.Error(), "requires 20.0h")
	assert.Empty(t, store.addedAssignments)
}

func TestAssignStaff_ForceOverridesCapacityCheck(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 10},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 30), ShootHours: 8, EditHours: 12},
		},
	}

	result, err := AssignStaff(context.Background(), store, zap.NewNop(), "b1", "s1", true)

	require.NoError(t, err)
	assert.True(t, result.Forced)
	assert.Equal(t, [][2]string{{"b1", "s1"}}, store.addedAssignments)
}

func TestAssignStaff_OtherAssignmentsCountAtFullWeight(t *testing.T) {
	// 40h capacity minus the other brief's undivided 25h leaves 15h,
	// short of this brief's 20h even though the other brief has two
	// assignees
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", FirstName: "Ana", LastName: "Reyes", Status: "Active", MonthlyAvailableHours: 40},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 30), ShootHours: 8, EditHours: 12},
			{ID: "b2", DueDate: monday.AddDate(0, 0, 45), ShootHours: 10, EditHours: 15, AssignedStaff: []string{"s1", "s2"}},
		},
	}

	_, err := AssignStaff(context.Background(), store, zap.NewNop(), "b1", "s1", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "15.0h available")
}

func TestAssignStaff_AlreadyAssigned(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", Status: "Active", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 30), ShootHours: 8, EditHours: 12, AssignedStaff: []string{"s1"}},
		},
	}

	_, err := AssignStaff(context.Background(), store, zap.NewNop(), "b1", "s1", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already assigned")
}

func TestAssignStaff_InactiveStaffRejected(t *testing.T) {
	store := &mockStore{
		staff: []db.Staff{
			{ID: "s1", Status: "Inactive", MonthlyAvailableHours: 160},
		},
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 30), ShootHours: 8, EditHours: 12},
		},
	}

	_, err := AssignStaff(context.Background(), store, zap.NewNop(), "b1", "s1", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestUnassignStaff_RemovesAssignment(t *testing.T) {
	store := &mockStore{
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 30), AssignedStaff: []string{"s1"}},
		},
	}

	err := UnassignStaff(context.Background(), store, zap.NewNop(), "b1", "s1")

	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"b1", "s1"}}, store.removedAssignments)
}

func TestUnassignStaff_NotAssigned(t *testing.T) {
	store := &mockStore{
		briefs: []db.Brief{
			{ID: "b1", DueDate: monday.AddDate(0, 0, 30)},
		},
	}

	err := UnassignStaff(context.Background(), store, zap.NewNop(), "b1", "s1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not assigned")
	assert.Empty(t, store.removedAssignments)
}
