package usecase

import (
	"testing"
	"time"

	"clinicflow/internal/delivery/dto"
	"clinicflow/internal/domain/entity"
)

func TestApplyAppointmentPatch(t *testing.T) {
	baseStart := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	baseEnd := baseStart.Add(30 * time.Minute)
	newStart := time.Date(2026, 4, 2, 14, 0, 0, 0, time.UTC)
	newEnd := newStart.Add(time.Hour)
	zero := time.Time{}

	base := func() *entity.Appointment {
		return &entity.Appointment{
			StartAt: baseStart,
			EndAt:   baseEnd,
			Reason:  "Annual checkup",
			Status:  entity.AppointmentStatusScheduled,
		}
	}

	tests := []struct {
		name string
		req  dto.UpdateAppointmentRequest
		want entity.Appointment
	}{
		{
			name: "empty patch changes nothing",
			req:  dto.UpdateAppointmentRequest{},
			want: *base(),
		},
		{
			name: "empty string and zero time are treated as absent",
			req: dto.UpdateAppointmentRequest{
				StartAt: &zero,
				EndAt:   &zero,
				Reason:  "",
				Status:  "",
			},
			want: *base(),
		},
		{
			name: "set fields overwrite",
			req: dto.UpdateAppointmentRequest{
				StartAt: &newStart,
				EndAt:   &newEnd,
				Reason:  "Follow-up",
				Status:  string(entity.AppointmentStatusCompleted),
			},
			want: entity.Appointment{
				StartAt: newStart,
				EndAt:   newEnd,
				Reason:  "Follow-up",
				Status:  entity.AppointmentStatusCompleted,
			},
		},
		{
			name: "partial patch keeps remaining fields",
			req: dto.UpdateAppointmentRequest{
				Reason: "Rescheduled by front desk",
			},
			want: entity.Appointment{
				StartAt: baseStart,
				EndAt:   baseEnd,
				Reason:  "Rescheduled by front desk",
				Status:  entity.AppointmentStatusScheduled,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base()
			applyAppointmentPatch(got, &tt.req)

			if !got.StartAt.Equal(tt.want.StartAt) {
				t.Errorf("StartAt = %v, want %v", got.StartAt, tt.want.StartAt)
			}
			if !got.EndAt.Equal(tt.want.EndAt) {
				t.Errorf("EndAt = %v, want %v", got.EndAt, tt.want.EndAt)
			}
			if got.Reason != tt.want.Reason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.want.Reason)
			}
			if got.Status != tt.want.Status {
				t.Errorf("Status = %s, want %s", got.Status, tt.want.Status)
			}
		})
	}
}
