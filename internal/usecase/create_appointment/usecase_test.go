package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
	staffRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/staff"
	"github.com/mulelash/MB-BeautyService/pkg/ptr"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

type fakeAppointments struct {
	created []*domain.Appointment
	nextID  int64
	activeN int
}

func (f *fakeAppointments) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	apt.ID = f.nextID
	apt.CreatedAt = time.Now()
	apt.UpdatedAt = apt.CreatedAt
	f.created = append(f.created, apt)
	return apt, nil
}

func (f *fakeAppointments) CountActiveAt(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (int, error) {
	return f.activeN, nil
}

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

// passthroughTx runs the function without a real transaction
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(_ context.Context, collection string) {
	f.published = append(f.published, collection)
}

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func fixtures(t *testing.T, autoConfirm bool) (*UseCase, *fakeAppointments) {
	t.Helper()

	appointments := &fakeAppointments{}
	catalog := &fakeCatalog{services: map[int64]*domain.Service{
		10: {ID: 10, Title: "Volume lash set", Category: domain.CategoryLash, DurationMinutes: 90, Price: 2800},
	}}
	staff := &fakeStaff{members: map[int64]*domain.StaffMember{
		1: {
			ID:          1,
			Name:        "Mia",
			WorkDays:    []int{1, 2, 3, 4, 5, 6},
			WorkStart:   mustTime(t, "10:00"),
			WorkEnd:     mustTime(t, "19:00"),
			Specialties: []domain.Category{domain.CategoryLash},
		},
	}}

	uc := NewUseCase(appointments, catalog, staff, passthroughTx{}, &fakePublisher{}, autoConfirm, testLogger{})
	return uc, appointments
}

func monday() time.Time {
	return time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
}

func TestExecute_BooksPendingAppointment(t *testing.T) {
	uc, appointments := fixtures(t, false)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:    10,
		StaffID:      1,
		Date:         monday(),
		StartTime:    mustTime(t, "14:00"),
		CustomerRef:  ptr.Ptr("U-alice"),
		CustomerName: ptr.Ptr("Alice"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.AppointmentPending), resp.Status)
	assert.Equal(t, "Volume lash set", resp.ServiceTitle)
	assert.Equal(t, 2800.0, resp.ServicePrice)
	assert.Equal(t, "Mia", resp.StaffName)
	assert.Equal(t, 90, resp.DurationMinutes)
	require.Len(t, appointments.created, 1)
}

func TestExecute_AutoConfirmSkipsPending(t *testing.T) {
	uc, _ := fixtures(t, true)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 10,
		StaffID:   1,
		Date:      monday(),
		StartTime: mustTime(t, "10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.AppointmentConfirmed), resp.Status)
}

func TestExecute_LastFittingSlotBooks(t *testing.T) {
	uc, _ := fixtures(t, false)

	// 17:30 + 90m lands exactly on closing
	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 10,
		StaffID:   1,
		Date:      monday(),
		StartTime: mustTime(t, "17:30"),
	})
	assert.NoError(t, err)
}

func TestExecute_RejectsUnbookableSlots(t *testing.T) {
	uc, appointments := fixtures(t, false)

	cases := []struct {
		name  string
		date  time.Time
		start string
	}{
		{"off day", time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), "14:00"}, // Sunday
		{"before shift", monday(), "09:00"},
		{"off the step grid", monday(), "14:10"},
		{"overruns closing", monday(), "18:00"}, // 18:00 + 90m > 19:00
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				ServiceID: 10,
				StaffID:   1,
				Date:      tc.date,
				StartTime: mustTime(t, tc.start),
			})
			assert.ErrorIs(t, err, ErrSlotNotBookable)
		})
	}

	assert.Empty(t, appointments.created, "rejected requests must not write")
}

func TestExecute_OccupiedSlotStillBooks(t *testing.T) {
	uc, appointments := fixtures(t, false)
	appointments.activeN = 1

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 10,
		StaffID:   1,
		Date:      monday(),
		StartTime: mustTime(t, "14:00"),
	})
	require.NoError(t, err, "overlap warns, it does not reject")
	assert.Len(t, appointments.created, 1)
}

func TestExecute_UnknownServiceAndStaff(t *testing.T) {
	uc, _ := fixtures(t, false)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 999, StaffID: 1, Date: monday(), StartTime: mustTime(t, "14:00"),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		ServiceID: 10, StaffID: 999, Date: monday(), StartTime: mustTime(t, "14:00"),
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
