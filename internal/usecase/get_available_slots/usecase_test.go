package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
	staffRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/staff"
)

type fakeCatalog struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalog) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeStaff struct {
	members map[int64]*domain.StaffMember
}

func (f *fakeStaff) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return m, nil
}

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func newSlotsUseCase(t *testing.T) *UseCase {
	t.Helper()

	catalog := &fakeCatalog{services: map[int64]*domain.Service{
		10: {ID: 10, Title: "Volume lash set", Category: domain.CategoryLash, DurationMinutes: 90, Price: 2800},
		11: {ID: 11, Title: "Brow lamination", Category: domain.CategoryBrow, DurationMinutes: 60, Price: 1600},
	}}
	staff := &fakeStaff{members: map[int64]*domain.StaffMember{
		1: lashArtist(t),
	}}

	return NewUseCase(catalog, staff, testLogger{})
}

func TestExecute_ReturnsSlots(t *testing.T) {
	uc := newSlotsUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 10,
		StaffID:   1,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // Monday
	})
	require.NoError(t, err)

	assert.Equal(t, 90, resp.DurationMinutes)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "10:00", resp.Slots[0].String())
	assert.Equal(t, "17:30", resp.Slots[15].String())
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newSlotsUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 999,
		StaffID:   1,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UnknownStaff(t *testing.T) {
	uc := newSlotsUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 10,
		StaffID:   999,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_StaffNotEligible(t *testing.T) {
	uc := newSlotsUseCase(t)

	// staff member 1 only does lash work, service 11 is a brow service
	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 11,
		StaffID:   1,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrStaffNotEligible)
}

func TestExecute_RejectsBadInput(t *testing.T) {
	uc := newSlotsUseCase(t)

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero service", &Request{ServiceID: 0, StaffID: 1, Date: time.Now()}},
		{"zero staff", &Request{ServiceID: 10, StaffID: 0, Date: time.Now()}},
		{"zero date", &Request{ServiceID: 10, StaffID: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
