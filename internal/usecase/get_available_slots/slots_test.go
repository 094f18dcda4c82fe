package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func lashArtist(t *testing.T) *domain.StaffMember {
	t.Helper()
	return &domain.StaffMember{
		ID:          1,
		Name:        "Mia",
		WorkDays:    []int{1, 2, 3, 4, 5, 6}, // Monday through Saturday
		WorkStart:   mustTime(t, "10:00"),
		WorkEnd:     mustTime(t, "19:00"),
		Specialties: []domain.Category{domain.CategoryLash},
	}
}

func TestGenerateTimeSlots_NinetyMinuteService(t *testing.T) {
	staff := lashArtist(t)
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	slots, err := generateTimeSlots(staff, 90, monday)
	require.NoError(t, err)

	// every half hour from opening until the last start where 90 minutes
	// still fit before 19:00
	require.Len(t, slots, 16)
	assert.Equal(t, "10:00", slots[0].String())
	assert.Equal(t, "10:30", slots[1].String())
	assert.Equal(t, "17:30", slots[len(slots)-1].String())
}

func TestGenerateTimeSlots_OffDayIsEmpty(t *testing.T) {
	staff := lashArtist(t)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	slots, err := generateTimeSlots(staff, 90, sunday)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots, "off day is an empty list, not an absence")
}

func TestGenerateTimeSlots_TwoHourService(t *testing.T) {
	staff := lashArtist(t)
	staff.WorkStart = mustTime(t, "11:00")
	staff.WorkEnd = mustTime(t, "20:00")

	tuesday := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tuesday.Weekday())

	slots, err := generateTimeSlots(staff, 120, tuesday)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "11:00", slots[0].String())
	assert.Equal(t, "18:00", slots[len(slots)-1].String(), "18:00 + 2h lands exactly on closing")
}

func TestGenerateTimeSlots_ServiceLongerThanShift(t *testing.T) {
	staff := lashArtist(t)
	staff.WorkStart = mustTime(t, "10:00")
	staff.WorkEnd = mustTime(t, "12:00")

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(staff, 180, monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_EveryStartFitsBeforeClose(t *testing.T) {
	staff := lashArtist(t)
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	for _, duration := range []int{15, 30, 45, 60, 90, 120, 240} {
		slots, err := generateTimeSlots(staff, duration, monday)
		require.NoError(t, err)

		for _, slot := range slots {
			end, err := slot.AddMinutes(duration)
			require.NoError(t, err)
			assert.False(t, end.IsAfter(staff.WorkEnd),
				"slot %s with duration %d overruns %s", slot, duration, staff.WorkEnd)
		}
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	staff := lashArtist(t)
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	first, err := generateTimeSlots(staff, 60, monday)
	require.NoError(t, err)
	second, err := generateTimeSlots(staff, 60, monday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_HalfHourSpacing(t *testing.T) {
	staff := lashArtist(t)
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(staff, 45, monday)
	require.NoError(t, err)
	require.True(t, len(slots) > 1)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, domain.SlotStepMinutes, slots[i].ToMinutes()-slots[i-1].ToMinutes())
	}
}
