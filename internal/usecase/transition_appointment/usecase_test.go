package transition_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	appointmentRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/appointment"
	"github.com/mulelash/MB-BeautyService/pkg/ptr"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

type fakeAppointments struct {
	byID map[int64]*domain.Appointment
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	clone := *apt
	return &clone, nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	apt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	apt.Status = status
	return nil
}

type fakeOutbox struct {
	queued []*domain.OutboxEvent
}

func (f *fakeOutbox) Create(_ context.Context, ev *domain.OutboxEvent) (*domain.OutboxEvent, error) {
	ev.ID = int64(len(f.queued) + 1)
	f.queued = append(f.queued, ev)
	return ev, nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(_ context.Context, collection string) {
	f.published = append(f.published, collection)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func pendingAppointment(t *testing.T, customerRef *string) *domain.Appointment {
	t.Helper()
	return &domain.Appointment{
		ID:              1,
		ServiceID:       10,
		StaffID:         1,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "14:00"),
		DurationMinutes: 90,
		Status:          domain.AppointmentPending,
		ServiceTitle:    "Volume lash set",
		StaffName:       "Mia",
		CustomerRef:     customerRef,
	}
}

func fixtures(t *testing.T, apt *domain.Appointment) (*UseCase, *fakeAppointments, *fakeOutbox) {
	t.Helper()
	appointments := &fakeAppointments{byID: map[int64]*domain.Appointment{apt.ID: apt}}
	outbox := &fakeOutbox{}
	uc := NewUseCase(appointments, outbox, passthroughTx{}, &fakePublisher{}, testLogger{})
	return uc, appointments, outbox
}

func TestExecute_ConfirmQueuesNotification(t *testing.T) {
	apt := pendingAppointment(t, ptr.Ptr("U-alice"))
	uc, appointments, outbox := fixtures(t, apt)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		TargetStatus:  "confirmed",
		OperatorID:    "U-admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.AppointmentConfirmed, appointments.byID[1].Status)

	require.Len(t, outbox.queued, 1)
	assert.Equal(t, "U-alice", outbox.queued[0].Recipient)
	assert.Equal(t, int64(1), outbox.queued[0].AppointmentID)
	assert.Contains(t, outbox.queued[0].Message, "已確認")
	assert.Contains(t, outbox.queued[0].Message, "Volume lash set")
	assert.Equal(t, outbox.queued[0].Message, resp.Notification)
}

func TestExecute_DeclineQueuesNotification(t *testing.T) {
	apt := pendingAppointment(t, ptr.Ptr("U-alice"))
	uc, _, outbox := fixtures(t, apt)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		TargetStatus:  "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.Len(t, outbox.queued, 1)
	assert.Contains(t, outbox.queued[0].Message, "未能安排")
}

func TestExecute_ConfirmedTransitionsCarryNoNotification(t *testing.T) {
	apt := pendingAppointment(t, ptr.Ptr("U-alice"))
	apt.Status = domain.AppointmentConfirmed
	uc, _, outbox := fixtures(t, apt)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		TargetStatus:  "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	assert.Empty(t, resp.Notification)
	assert.Empty(t, outbox.queued)
}

func TestExecute_NoCustomerRefSkipsNotification(t *testing.T) {
	apt := pendingAppointment(t, nil)
	uc, appointments, outbox := fixtures(t, apt)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		TargetStatus:  "confirmed",
	})
	require.NoError(t, err, "a missing delivery channel never blocks the transition")

	assert.Equal(t, domain.AppointmentConfirmed, appointments.byID[1].Status)
	assert.Empty(t, outbox.queued)
	assert.Empty(t, resp.Notification)
}

func TestExecute_RejectedTransitionLeavesStateAlone(t *testing.T) {
	cases := []struct {
		name   string
		from   domain.AppointmentStatus
		target string
	}{
		{"pending straight to completed", domain.AppointmentPending, "completed"},
		{"completed is terminal", domain.AppointmentCompleted, "cancelled"},
		{"cancelled is terminal", domain.AppointmentCancelled, "confirmed"},
		{"confirmed back to pending", domain.AppointmentConfirmed, "pending"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apt := pendingAppointment(t, ptr.Ptr("U-alice"))
			apt.Status = tc.from
			uc, appointments, outbox := fixtures(t, apt)

			_, err := uc.Execute(context.Background(), &Request{
				AppointmentID: 1,
				TargetStatus:  tc.target,
			})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tc.from, appointments.byID[1].Status, "rejected transition must not mutate")
			assert.Empty(t, outbox.queued)
		})
	}
}

func TestExecute_UnknownStatusRejected(t *testing.T) {
	apt := pendingAppointment(t, nil)
	uc, _, _ := fixtures(t, apt)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		TargetStatus:  "approved",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MissingAppointment(t *testing.T) {
	apt := pendingAppointment(t, nil)
	uc, _, _ := fixtures(t, apt)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		TargetStatus:  "confirmed",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
