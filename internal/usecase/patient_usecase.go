package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("patient record already exists for this user")
	ErrPatientAccessDenied  = errors.New("patient record does not belong to you")
	ErrOwnerNotFound        = errors.New("owning user not found")
	ErrActorMissing         = errors.New("user not found in context")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, search string) (*dto.PatientListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// Create registers a new patient record for an existing user. Emails are
// unique per user, so one record per user also means one record per email.
func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	owner, err := u.userRepo.FindByID(u.db.WithContext(ctx), req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find owning user %s: %+v", req.UserID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	existing, err := u.patientRepo.FindByUserID(ctx, u.db, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to check existing patient for user %s: %+v", req.UserID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientAlreadyExists
	}

	patient := &entity.Patient{
		UserID:         req.UserID,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Address:        req.Address,
		MedicalHistory: entity.StringList(req.MedicalHistory),
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = &dob
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		if isDuplicateKeyError(err, "user_id") {
			return nil, ErrPatientAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	patient.User = *owner

	u.auditService.LogCreate(ctx, &actor.ID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), map[string]interface{}{
		"user_id": patient.UserID.String(),
	})

	return converter.PatientToResponse(patient), nil
}

// List returns patient records newest-first, optionally filtered by a
// case-insensitive substring over the owner's name or email.
func (u *patientUsecase) List(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.Search(ctx, u.db, search)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !patient.CanBeViewedBy(actor) {
		return nil, ErrPatientAccessDenied
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrActorMissing
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !patient.CanBeUpdatedBy(actor) {
		return nil, ErrPatientAccessDenied
	}

	oldValue := map[string]interface{}{
		"gender":  patient.Gender,
		"phone":   patient.Phone,
		"address": patient.Address,
	}

	// Shallow merge of provided patch fields
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = &dob
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = entity.StringList(*req.MedicalHistory)
	}

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, &actor.ID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), oldValue, map[string]interface{}{
		"gender":  patient.Gender,
		"phone":   patient.Phone,
		"address": patient.Address,
	})

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return ErrActorMissing
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, &actor.ID, entity.AuditActionPatientDelete, "patient", patient.ID.String(), map[string]interface{}{
		"user_id": patient.UserID.String(),
	})

	return nil
}
