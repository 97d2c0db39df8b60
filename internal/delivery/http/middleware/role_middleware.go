package middleware

import (
	"net/http"

	"clinicflow/internal/domain/entity"
	"clinicflow/pkg/response"
)

// RequireRole creates a middleware that checks if the authenticated user has
// any of the required roles. Runs after Authenticate.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Not authenticated")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if user.RoleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "Forbidden: insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}

// RequireAdminOrDoctor allows patient-record creation and updates
func RequireAdminOrDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDDoctor)(next)
}

// RequireClinicStaff allows the patient-list view (Admin, Doctor, Staff)
func RequireClinicStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDDoctor, entity.RoleIDStaff)(next)
}

// RequireAdminOrStaff allows the full appointment list
func RequireAdminOrStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff)(next)
}

// RequireDoctorOrStaff allows appointment updates
func RequireDoctorOrStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor, entity.RoleIDStaff)(next)
}

// RequirePatientOrDoctor allows appointment cancellation
func RequirePatientOrDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient, entity.RoleIDDoctor)(next)
}
