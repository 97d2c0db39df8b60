package usecase

import (
	"context"
	"errors"

	"clinicflow/internal/converter"
	"clinicflow/internal/delivery/dto"
	"clinicflow/internal/delivery/http/middleware"
	"clinicflow/internal/domain/entity"
	"clinicflow/internal/domain/repository"
	"clinicflow/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotRecordOwner      = errors.New("you cannot create appointments for other patients")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListForDoctor(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListForPatient(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
	}
}

// Create books an appointment for the actor's own patient record. The doctor
// reference is stored as given; it is not cross-checked against the Doctor
// role.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !patient.IsOwnedBy(actor) {
		return nil, ErrNotRecordOwner
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Reason:      req.Reason,
		Status:      entity.AppointmentStatusScheduled,
		StartAt:     req.StartAt,
		EndAt:       entity.DeriveEndAt(req.StartAt, req.EndAt),
		Location:    entity.DefaultLocation,
		CreatedByID: &actor.ID,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, &actor.ID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"patient_id": appointment.PatientID.String(),
		"doctor_id":  appointment.DoctorID.String(),
		"start_at":   appointment.StartAt,
	})

	// Reload with patient/doctor summaries for the response
	full, err := u.appointmentRepo.FindByID(ctx, u.db, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	return converter.AppointmentToResponse(full), nil
}

// ListForDoctor returns the actor's calendar, ascending by start time.
func (u *appointmentUsecase) ListForDoctor(ctx context.Context) (*dto.AppointmentListResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", actor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ListForPatient resolves the actor's own patient record and returns its
// appointments, ascending by start time.
func (u *appointmentUsecase) ListForPatient(ctx context.Context) (*dto.AppointmentListResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	patient, err := u.patientRepo.FindByUserID(ctx, u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient record for user %s: %+v", actor.ID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := map[string]interface{}{
		"start_at": appointment.StartAt,
		"end_at":   appointment.EndAt,
		"reason":   appointment.Reason,
		"status":   appointment.Status,
	}

	applyAppointmentPatch(appointment, req)

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, &actor.ID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), oldValue, map[string]interface{}{
		"start_at": appointment.StartAt,
		"end_at":   appointment.EndAt,
		"reason":   appointment.Reason,
		"status":   appointment.Status,
	})

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel sets the appointment status to Cancelled. Any patient or doctor may
// cancel any appointment; the route role gate is the only authorization, and
// terminal states are not guarded.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Cancel()

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogAction(ctx, &actor.ID, entity.AuditActionAppointmentCancel, entity.JSON{
		"entity":    "appointment",
		"entity_id": appointment.ID.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

// applyAppointmentPatch merges the patch into the stored appointment. A field
// only overwrites when it carries a non-zero value: an explicit empty string
// or zero time is treated as absent and leaves the stored value unchanged.
func applyAppointmentPatch(appointment *entity.Appointment, req *dto.UpdateAppointmentRequest) {
	if req.StartAt != nil && !req.StartAt.IsZero() {
		appointment.StartAt = *req.StartAt
	}
	if req.EndAt != nil && !req.EndAt.IsZero() {
		appointment.EndAt = *req.EndAt
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}
}
