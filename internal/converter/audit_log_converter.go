package converter

import (
	"clinicflow/internal/delivery/dto"
	"clinicflow/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its DTO
func AuditLogToResponse(auditLog *entity.AuditLog) *dto.AuditLogResponse {
	if auditLog == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        auditLog.ID,
		UserID:    auditLog.UserID,
		Action:    auditLog.Action,
		Metadata:  map[string]interface{}(auditLog.Metadata),
		CreatedAt: auditLog.CreatedAt,
	}

	if auditLog.User != nil {
		response.UserName = auditLog.User.Name
	}

	return response
}

// AuditLogsToResponses converts a slice of audit logs
func AuditLogsToResponses(auditLogs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(auditLogs))
	for i := range auditLogs {
		responses[i] = *AuditLogToResponse(&auditLogs[i])
	}
	return responses
}
