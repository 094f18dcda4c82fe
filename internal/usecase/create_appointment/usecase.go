package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
	staffRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/staff"
)

// UseCase books one appointment. The occupancy check and the insert run in
// one serializable transaction so two customers racing for the same slot
// cannot interleave between check and write.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	staffRepo       StaffRepository
	txManager       TransactionManager
	publisher       ChangePublisher
	autoConfirm     bool
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	publisher ChangePublisher,
	autoConfirm bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		staffRepo:       staffRepo,
		txManager:       txManager,
		publisher:       publisher,
		autoConfirm:     autoConfirm,
		logger:          logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, staff=%d, date=%s, time=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff member: %v", ErrInternal, err)
	}

	if err := validateStaffEligible(staff, service); err != nil {
		uc.logger.Warn("CreateAppointment: staff id=%d not eligible for service id=%d",
			req.StaffID, req.ServiceID)
		return nil, err
	}

	if err := validateSlotBookable(staff, service, req); err != nil {
		uc.logger.Warn("CreateAppointment: slot check failed: %v", err)
		return nil, err
	}

	status := domain.AppointmentPending
	if uc.autoConfirm {
		status = domain.AppointmentConfirmed
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// The shop takes overlapping appointments deliberately (a lash set
		// has idle phases), so occupancy only warns, it never rejects.
		taken, err := uc.appointmentRepo.CountActiveAt(txCtx, req.StaffID, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count active appointments: %v", err)
			return fmt.Errorf("%w: failed to count active appointments: %v", ErrInternal, err)
		}
		if taken > 0 {
			uc.logger.Warn("CreateAppointment: staff=%d already has %d active appointment(s) at %s %s",
				req.StaffID, taken, req.Date.Format(domain.DateFormat), req.StartTime)
		}

		apt := &domain.Appointment{
			ServiceID:       req.ServiceID,
			StaffID:         req.StaffID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          status,
			ServiceTitle:    service.Title,
			ServicePrice:    service.Price,
			StaffName:       staff.Name,
			CustomerRef:     req.CustomerRef,
			CustomerName:    req.CustomerName,
			Note:            req.Note,
		}

		created, err := uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, domain.CollectionBookings)
	uc.logger.Info("CreateAppointment: created appointment id=%d (status=%s)", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		StaffID:         result.StaffID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceTitle:    result.ServiceTitle,
		ServicePrice:    result.ServicePrice,
		StaffName:       result.StaffName,
		CustomerRef:     result.CustomerRef,
		CustomerName:    result.CustomerName,
		Note:            result.Note,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
