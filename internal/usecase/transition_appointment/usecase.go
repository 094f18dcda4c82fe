package transition_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	appointmentRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/appointment"
)

// UseCase moves one appointment through its lifecycle. The re-read, the
// status update and the outbox write share one serializable transaction, so
// two operators deciding the same request cannot both win: the second
// re-reads a status the transition table rejects.
type UseCase struct {
	appointmentRepo AppointmentRepository
	outboxRepo      OutboxRepository
	txManager       TransactionManager
	publisher       ChangePublisher
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	outboxRepo OutboxRepository,
	txManager TransactionManager,
	publisher ChangePublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		outboxRepo:      outboxRepo,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionAppointment: id=%d, target=%s, operator=%s",
		req.AppointmentID, req.TargetStatus, req.OperatorID)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	target, err := domain.ParseAppointmentStatus(req.TargetStatus)
	if err != nil {
		uc.logger.Warn("TransitionAppointment: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		result       *domain.Appointment
		notification string
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		apt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("TransitionAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("TransitionAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !apt.CanTransitionTo(target) {
			uc.logger.Warn("TransitionAppointment: id=%d cannot move %s -> %s",
				apt.ID, apt.Status, target)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, apt.Status, target)
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, apt.ID, target); err != nil {
			uc.logger.Error("TransitionAppointment: failed to update status of id=%d: %v", apt.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		notification = renderNotification(apt.Status, target, apt)
		if notification != "" {
			if apt.CustomerRef == nil || *apt.CustomerRef == "" {
				uc.logger.Warn("TransitionAppointment: id=%d has no customer ref, notification skipped", apt.ID)
				notification = ""
			} else {
				_, err := uc.outboxRepo.Create(txCtx, &domain.OutboxEvent{
					AppointmentID: apt.ID,
					Recipient:     *apt.CustomerRef,
					Message:       notification,
				})
				if err != nil {
					uc.logger.Error("TransitionAppointment: failed to queue notification for id=%d: %v", apt.ID, err)
					return fmt.Errorf("%w: failed to queue notification: %v", ErrInternal, err)
				}
			}
		}

		apt.Status = target
		result = apt
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, domain.CollectionBookings)
	uc.logger.Info("TransitionAppointment: id=%d is now %s", result.ID, result.Status)

	return &Response{
		ID:           result.ID,
		Status:       string(result.Status),
		Date:         result.Date,
		StartTime:    result.StartTime,
		ServiceTitle: result.ServiceTitle,
		StaffName:    result.StaffName,
		Notification: notification,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
