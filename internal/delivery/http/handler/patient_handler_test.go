package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicflow/internal/delivery/dto"
	"clinicflow/internal/usecase"
	"clinicflow/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubPatientUsecase struct {
	createFn  func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	listFn    func(ctx context.Context, search string) (*dto.PatientListResponse, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	updateFn  func(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (s *stubPatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubPatientUsecase) List(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	return s.listFn(ctx, search)
}

func (s *stubPatientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPatientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubPatientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func TestCreatePatient(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
	}{
		{
			name:       "valid request",
			body:       `{"user_id":"` + userID.String() + `","gender":"Female","phone":"555-0100"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing user id",
			body:       `{"gender":"Female"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid gender",
			body:       `{"user_id":"` + userID.String() + `","gender":"Unknown"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "owner does not exist",
			body:       `{"user_id":"` + userID.String() + `"}`,
			createErr:  usecase.ErrOwnerNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "record already exists",
			body:       `{"user_id":"` + userID.String() + `"}`,
			createErr:  usecase.ErrPatientAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "bad date of birth",
			body:       `{"user_id":"` + userID.String() + `","date_of_birth":"01/02/1990"}`,
			createErr:  usecase.ErrInvalidDateFormat,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPatientUsecase{
				createFn: func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
					if tt.createErr != nil {
						return nil, tt.createErr
					}
					return &dto.PatientResponse{ID: uuid.New(), UserID: req.UserID, MedicalHistory: []string{}}, nil
				},
			}
			h := NewPatientHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreatePatient(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestGetAllPatientsPassesSearch(t *testing.T) {
	var gotSearch string
	stub := &stubPatientUsecase{
		listFn: func(ctx context.Context, search string) (*dto.PatientListResponse, error) {
			gotSearch = search
			return &dto.PatientListResponse{Patients: []dto.PatientResponse{}, Total: 0}, nil
		},
	}
	h := NewPatientHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/patients?search=jane", nil)
	rec := httptest.NewRecorder()

	h.GetAllPatients(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotSearch != "jane" {
		t.Errorf("search = %q, want %q", gotSearch, "jane")
	}
}

func TestGetPatient(t *testing.T) {
	patientID := uuid.New()

	tests := []struct {
		name       string
		id         string
		getErr     error
		wantStatus int
	}{
		{name: "found", id: patientID.String(), wantStatus: http.StatusOK},
		{name: "invalid id", id: "not-a-uuid", wantStatus: http.StatusBadRequest},
		{name: "not found", id: patientID.String(), getErr: usecase.ErrPatientNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign record as patient", id: patientID.String(), getErr: usecase.ErrPatientAccessDenied, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPatientUsecase{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return &dto.PatientResponse{ID: id, MedicalHistory: []string{}}, nil
				},
			}
			h := NewPatientHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodGet, "/api/patients/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			h.GetPatient(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestUpdatePatient(t *testing.T) {
	patientID := uuid.New()

	tests := []struct {
		name       string
		body       string
		updateErr  error
		wantStatus int
	}{
		{name: "valid patch", body: `{"phone":"555-0199"}`, wantStatus: http.StatusOK},
		{name: "not found", body: `{}`, updateErr: usecase.ErrPatientNotFound, wantStatus: http.StatusNotFound},
		{name: "not the owner", body: `{}`, updateErr: usecase.ErrPatientAccessDenied, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPatientUsecase{
				updateFn: func(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
					if tt.updateErr != nil {
						return nil, tt.updateErr
					}
					return &dto.PatientResponse{ID: id, MedicalHistory: []string{}}, nil
				},
			}
			h := NewPatientHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPut, "/api/patients/"+patientID.String(), strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
			rec := httptest.NewRecorder()

			h.UpdatePatient(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestDeletePatient(t *testing.T) {
	patientID := uuid.New()

	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "not found", deleteErr: usecase.ErrPatientNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPatientUsecase{
				deleteFn: func(ctx context.Context, id uuid.UUID) error {
					return tt.deleteErr
				},
			}
			h := NewPatientHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodDelete, "/api/patients/"+patientID.String(), nil)
			req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
			rec := httptest.NewRecorder()

			h.DeletePatient(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
