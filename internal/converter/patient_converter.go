package converter

import (
	"clinicflow/internal/delivery/dto"
	"clinicflow/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO.
// Owner name/email are included when the User relation is loaded.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:             patient.ID,
		UserID:         patient.UserID,
		Gender:         patient.Gender,
		Phone:          patient.Phone,
		Address:        patient.Address,
		MedicalHistory: []string(patient.MedicalHistory),
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
	if response.MedicalHistory == nil {
		response.MedicalHistory = []string{}
	}

	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}

	if patient.User.Email != "" {
		response.Name = patient.User.Name
		response.Email = patient.User.Email
	}

	return response
}

// PatientsToResponses converts a slice of patients
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
