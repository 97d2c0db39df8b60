package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicflow/internal/domain/entity"

	"github.com/google/uuid"
)

func requestAs(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	user := &entity.User{ID: uuid.New(), RoleID: roleID}
	return req.WithContext(context.WithValue(req.Context(), UserKey, user))
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		roleID     int
		wantStatus int
	}{
		{name: "admin passes admin gate", middleware: RequireAdmin, roleID: entity.RoleIDAdmin, wantStatus: http.StatusOK},
		{name: "doctor blocked by admin gate", middleware: RequireAdmin, roleID: entity.RoleIDDoctor, wantStatus: http.StatusForbidden},
		{name: "doctor passes doctor gate", middleware: RequireDoctor, roleID: entity.RoleIDDoctor, wantStatus: http.StatusOK},
		{name: "patient passes patient gate", middleware: RequirePatient, roleID: entity.RoleIDPatient, wantStatus: http.StatusOK},
		{name: "staff blocked by patient gate", middleware: RequirePatient, roleID: entity.RoleIDStaff, wantStatus: http.StatusForbidden},
		{name: "staff passes clinic staff gate", middleware: RequireClinicStaff, roleID: entity.RoleIDStaff, wantStatus: http.StatusOK},
		{name: "patient blocked by clinic staff gate", middleware: RequireClinicStaff, roleID: entity.RoleIDPatient, wantStatus: http.StatusForbidden},
		{name: "admin passes admin-or-doctor gate", middleware: RequireAdminOrDoctor, roleID: entity.RoleIDAdmin, wantStatus: http.StatusOK},
		{name: "staff blocked by admin-or-doctor gate", middleware: RequireAdminOrDoctor, roleID: entity.RoleIDStaff, wantStatus: http.StatusForbidden},
		{name: "staff passes admin-or-staff gate", middleware: RequireAdminOrStaff, roleID: entity.RoleIDStaff, wantStatus: http.StatusOK},
		{name: "doctor blocked by admin-or-staff gate", middleware: RequireAdminOrStaff, roleID: entity.RoleIDDoctor, wantStatus: http.StatusForbidden},
		{name: "doctor passes doctor-or-staff gate", middleware: RequireDoctorOrStaff, roleID: entity.RoleIDDoctor, wantStatus: http.StatusOK},
		{name: "patient passes patient-or-doctor gate", middleware: RequirePatientOrDoctor, roleID: entity.RoleIDPatient, wantStatus: http.StatusOK},
		{name: "admin blocked by patient-or-doctor gate", middleware: RequirePatientOrDoctor, roleID: entity.RoleIDAdmin, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.middleware(next).ServeHTTP(rec, requestAs(tt.roleID))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleWithoutUser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
