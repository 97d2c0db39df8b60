package converter

import (
	"clinicflow/internal/delivery/dto"
	"clinicflow/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO, attaching
// patient/doctor summaries when those relations are loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Reason:    appointment.Reason,
		Notes:     appointment.Notes,
		Status:    string(appointment.Status),
		StartAt:   appointment.StartAt,
		EndAt:     appointment.EndAt,
		Location:  appointment.Location,
		CreatedBy: appointment.CreatedByID,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Patient.ID != uuid.Nil {
		summary := &dto.PatientSummary{
			ID:     appointment.Patient.ID,
			Name:   appointment.Patient.User.Name,
			Gender: appointment.Patient.Gender,
		}
		if appointment.Patient.DateOfBirth != nil {
			summary.DateOfBirth = appointment.Patient.DateOfBirth.Format("2006-01-02")
		}
		response.Patient = summary
	}

	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = &dto.DoctorSummary{
			ID:    appointment.Doctor.ID,
			Name:  appointment.Doctor.Name,
			Email: appointment.Doctor.Email,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of appointments
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
