package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"clinicflow/internal/domain/entity"
	"clinicflow/internal/infrastructure/database"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB connects to the database named by TEST_DATABASE_URL and applies
// migrations. Tests are skipped when the variable is unset.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := database.RunMigrations(db, "../../db/migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, roleID int, name string) *entity.User {
	t.Helper()
	user := &entity.User{
		RoleID:   roleID,
		Name:     name,
		Email:    fmt.Sprintf("%s-%s@test.local", name, uuid.New().String()[:8]),
		Password: "hashed",
	}
	if err := NewUserRepository().Create(db, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM audit_logs WHERE user_id = ?", user.ID)
		db.Exec("DELETE FROM appointments WHERE doctor_id = ? OR created_by = ?", user.ID, user.ID)
		db.Exec("DELETE FROM patients WHERE user_id = ?", user.ID)
		db.Exec("DELETE FROM users WHERE id = ?", user.ID)
	})
	return user
}

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository()

	user := createUser(t, db, entity.RoleIDPatient, "repo-user")

	found, err := repo.FindByEmail(db, user.Email)
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if found == nil || found.ID != user.ID {
		t.Fatalf("FindByEmail() = %v, want user %s", found, user.ID)
	}

	missing, err := repo.FindByID(db, uuid.New())
	if err != nil {
		t.Fatalf("FindByID() on missing row error = %v", err)
	}
	if missing != nil {
		t.Errorf("FindByID() on missing row = %v, want nil", missing)
	}
}

func TestPatientRepositorySearch(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewPatientRepository()

	marker := uuid.New().String()[:8]
	owner := createUser(t, db, entity.RoleIDPatient, "searchable-"+marker)

	patient := &entity.Patient{
		UserID: owner.ID,
		Gender: entity.GenderFemale,
		Phone:  "555-0100",
	}
	if err := repo.Create(ctx, db, patient); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// One record per user
	if err := repo.Create(ctx, db, &entity.Patient{UserID: owner.ID}); err == nil {
		t.Error("Create() accepted a second record for the same user")
		db.Exec("DELETE FROM patients WHERE user_id = ? AND id <> ?", owner.ID, patient.ID)
	}

	// Case-insensitive match over the owner's name
	results, err := repo.Search(ctx, db, "SEARCHABLE-"+marker)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != patient.ID {
		t.Fatalf("Search() = %d results, want the one created record", len(results))
	}
	if results[0].User.Name != owner.Name {
		t.Errorf("Search() did not preload owner, got name %q", results[0].User.Name)
	}

	byUser, err := repo.FindByUserID(ctx, db, owner.ID)
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if byUser == nil || byUser.ID != patient.ID {
		t.Fatalf("FindByUserID() = %v, want patient %s", byUser, patient.ID)
	}
}

func TestAppointmentRepositoryOrdering(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewAppointmentRepository()

	owner := createUser(t, db, entity.RoleIDPatient, "appt-owner")
	doctor := createUser(t, db, entity.RoleIDDoctor, "appt-doctor")

	patient := &entity.Patient{UserID: owner.ID}
	if err := NewPatientRepository().Create(ctx, db, patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	base := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		a := &entity.Appointment{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Status:    entity.AppointmentStatusScheduled,
			StartAt:   base.Add(offset),
			EndAt:     base.Add(offset + 30*time.Minute),
			Location:  entity.DefaultLocation,
		}
		if err := repo.Create(ctx, db, a); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	appointments, err := repo.FindByDoctorID(ctx, db, doctor.ID)
	if err != nil {
		t.Fatalf("FindByDoctorID() error = %v", err)
	}
	if len(appointments) != 3 {
		t.Fatalf("FindByDoctorID() = %d appointments, want 3", len(appointments))
	}
	for i := 1; i < len(appointments); i++ {
		if appointments[i].StartAt.Before(appointments[i-1].StartAt) {
			t.Errorf("appointments not in ascending start order at index %d", i)
		}
	}
}
