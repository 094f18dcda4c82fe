package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"pending to confirmed", AppointmentPending, AppointmentConfirmed, true},
		{"pending to cancelled", AppointmentPending, AppointmentCancelled, true},
		{"confirmed to completed", AppointmentConfirmed, AppointmentCompleted, true},
		{"confirmed to cancelled", AppointmentConfirmed, AppointmentCancelled, true},
		{"pending to completed skips confirmation", AppointmentPending, AppointmentCompleted, false},
		{"confirmed back to pending", AppointmentConfirmed, AppointmentPending, false},
		{"no self transition", AppointmentPending, AppointmentPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

// Terminal states accept no transition at all, to any target.
func TestCanTransition_TerminalClosure(t *testing.T) {
	all := []AppointmentStatus{
		AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled,
	}

	for _, terminal := range []AppointmentStatus{AppointmentCompleted, AppointmentCancelled} {
		require.True(t, terminal.IsTerminal())
		for _, target := range all {
			assert.False(t, CanTransition(terminal, target),
				"terminal %s must not transition to %s", terminal, target)
		}
	}

	assert.False(t, AppointmentPending.IsTerminal())
	assert.False(t, AppointmentConfirmed.IsTerminal())
}

func TestParseAppointmentStatus(t *testing.T) {
	got, err := ParseAppointmentStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, AppointmentConfirmed, got)

	_, err = ParseAppointmentStatus("approved")
	assert.Error(t, err)

	_, err = ParseAppointmentStatus("")
	assert.Error(t, err)
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "paid", "shipped", "completed", "cancelled"} {
		got, err := ParseOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(s), got)
	}

	_, err := ParseOrderStatus("refunded")
	assert.Error(t, err)
}

func TestStaffMember_Validate(t *testing.T) {
	valid := StaffMember{
		Name:        "Yuki",
		Specialties: []Category{CategoryLash},
		WorkDays:    []int{1, 2, 3, 4, 5, 6},
		WorkStart:   "10:00",
		WorkEnd:     "19:00",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*StaffMember)
	}{
		{"start after end", func(s *StaffMember) { s.WorkStart = "19:00"; s.WorkEnd = "10:00" }},
		{"start equals end", func(s *StaffMember) { s.WorkStart = "10:00"; s.WorkEnd = "10:00" }},
		{"workday out of range", func(s *StaffMember) { s.WorkDays = []int{7} }},
		{"duplicate workday", func(s *StaffMember) { s.WorkDays = []int{1, 1} }},
		{"no workdays", func(s *StaffMember) { s.WorkDays = nil }},
		{"no specialties", func(s *StaffMember) { s.Specialties = nil }},
		{"unknown specialty", func(s *StaffMember) { s.Specialties = []Category{"nails"} }},
		{"empty name", func(s *StaffMember) { s.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			s.Specialties = append([]Category(nil), valid.Specialties...)
			s.WorkDays = append([]int(nil), valid.WorkDays...)
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestStaffMember_WorksOnAndCanPerform(t *testing.T) {
	s := StaffMember{
		Specialties: []Category{CategoryLash, CategoryBrow},
		WorkDays:    []int{1, 2, 3, 4, 5, 6}, // Mon-Sat
	}

	assert.True(t, s.WorksOn(time.Tuesday))
	assert.False(t, s.WorksOn(time.Sunday))

	assert.True(t, s.CanPerform(CategoryLash))
	assert.False(t, s.CanPerform(CategoryLip))
}
