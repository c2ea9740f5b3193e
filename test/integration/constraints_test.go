package integration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shashavali-8524/health-care/internal/domain/accounts"
	"github.com/shashavali-8524/health-care/internal/domain/doctors"
	"github.com/shashavali-8524/health-care/internal/domain/mappings"
	"github.com/shashavali-8524/health-care/internal/domain/patients"
	"github.com/shashavali-8524/health-care/internal/platform/auth"
)

func uniqueName(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool) *accounts.User {
	t.Helper()
	hash, err := auth.HashPassword("SecurePass123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	name := uniqueName("user")
	u := &accounts.User{Username: name, Email: name + "@example.com", PasswordHash: hash}
	if err := accounts.NewUserRepoPG(pool).Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createTestPatient(t *testing.T, ctx context.Context, pool *pgxpool.Pool, ownerID uuid.UUID) *patients.Patient {
	t.Helper()
	p := &patients.Patient{CreatedBy: ownerID, Name: uniqueName("patient"), Age: 40, Gender: patients.GenderOther}
	if err := patients.NewPatientRepoPG(pool).Create(ctx, p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func createTestDoctor(t *testing.T, ctx context.Context, pool *pgxpool.Pool, creatorID uuid.UUID) *doctors.Doctor {
	t.Helper()
	d := &doctors.Doctor{CreatedBy: creatorID, Name: uniqueName("doctor"), Specialization: "General", ExperienceYears: 5}
	if err := doctors.NewDoctorRepoPG(pool).Create(ctx, d); err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return d
}

func mappingCount(t *testing.T, ctx context.Context, pool *pgxpool.Pool, patientID uuid.UUID) int {
	t.Helper()
	var n int
	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patient_doctor_mappings WHERE patient_id = $1`, patientID).Scan(&n)
	if err != nil {
		t.Fatalf("count mappings: %v", err)
	}
	return n
}

func TestPatientDeleteCascadesMappings(t *testing.T) {
	tdb := requireDB(t)
	ctx := context.Background()

	user := createTestUser(t, ctx, tdb.Pool)
	patient := createTestPatient(t, ctx, tdb.Pool, user.ID)
	docA := createTestDoctor(t, ctx, tdb.Pool, user.ID)
	docB := createTestDoctor(t, ctx, tdb.Pool, user.ID)

	mappingRepo := mappings.NewMappingRepoPG(tdb.Pool)
	for _, d := range []*doctors.Doctor{docA, docB} {
		m := &mappings.Mapping{PatientID: patient.ID, DoctorID: d.ID}
		if err := mappingRepo.Create(ctx, m); err != nil {
			t.Fatalf("create mapping: %v", err)
		}
	}
	if n := mappingCount(t, ctx, tdb.Pool, patient.ID); n != 2 {
		t.Fatalf("mapping count before delete = %d, want 2", n)
	}

	if err := patients.NewPatientRepoPG(tdb.Pool).Delete(ctx, patient.ID, user.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	if n := mappingCount(t, ctx, tdb.Pool, patient.ID); n != 0 {
		t.Errorf("orphaned mapping rows after patient delete: %d", n)
	}
	details, err := mappingRepo.ListByPatient(ctx, patient.ID)
	if err != nil {
		t.Fatalf("list by patient: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("ListByPatient returned %d rows for a deleted patient", len(details))
	}

	// The doctors survive the cascade.
	if _, err := doctors.NewDoctorRepoPG(tdb.Pool).GetByID(ctx, docA.ID); err != nil {
		t.Errorf("doctor removed by patient delete: %v", err)
	}
}

func TestDuplicateMappingConstraint(t *testing.T) {
	tdb := requireDB(t)
	ctx := context.Background()

	user := createTestUser(t, ctx, tdb.Pool)
	patient := createTestPatient(t, ctx, tdb.Pool, user.ID)
	doctor := createTestDoctor(t, ctx, tdb.Pool, user.ID)

	// Straight to the repo, past the service's existence pre-check, so the
	// unique constraint itself answers.
	repo := mappings.NewMappingRepoPG(tdb.Pool)
	if err := repo.Create(ctx, &mappings.Mapping{PatientID: patient.ID, DoctorID: doctor.ID}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := repo.Create(ctx, &mappings.Mapping{PatientID: patient.ID, DoctorID: doctor.ID})
	if !errors.Is(err, mappings.ErrDuplicate) {
		t.Fatalf("second create: got %v, want ErrDuplicate", err)
	}
	if n := mappingCount(t, ctx, tdb.Pool, patient.ID); n != 1 {
		t.Errorf("row count = %d, want exactly 1", n)
	}
}

func TestDuplicateMappingConstraintRace(t *testing.T) {
	tdb := requireDB(t)
	ctx := context.Background()

	user := createTestUser(t, ctx, tdb.Pool)
	patient := createTestPatient(t, ctx, tdb.Pool, user.ID)
	doctor := createTestDoctor(t, ctx, tdb.Pool, user.ID)

	repo := mappings.NewMappingRepoPG(tdb.Pool)

	const callers = 8
	errs := make(chan error, callers)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < callers; i++ {
		go func() {
			start.Wait()
			errs <- repo.Create(ctx, &mappings.Mapping{PatientID: patient.ID, DoctorID: doctor.ID})
		}()
	}
	start.Done()

	var succeeded int
	for i := 0; i < callers; i++ {
		switch err := <-errs; {
		case err == nil:
			succeeded++
		case errors.Is(err, mappings.ErrDuplicate):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("%d concurrent inserts succeeded, want exactly 1", succeeded)
	}
	if n := mappingCount(t, ctx, tdb.Pool, patient.ID); n != 1 {
		t.Errorf("row count = %d, want exactly 1", n)
	}
}

func TestUserUniqueConstraints(t *testing.T) {
	tdb := requireDB(t)
	ctx := context.Background()

	repo := accounts.NewUserRepoPG(tdb.Pool)
	first := createTestUser(t, ctx, tdb.Pool)

	hash, err := auth.HashPassword("SecurePass123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	err = repo.Create(ctx, &accounts.User{
		Username: first.Username, Email: uniqueName("u") + "@example.com", PasswordHash: hash,
	})
	if !errors.Is(err, accounts.ErrUsernameTaken) {
		t.Errorf("duplicate username: got %v, want ErrUsernameTaken", err)
	}

	err = repo.Create(ctx, &accounts.User{
		Username: uniqueName("u"), Email: first.Email, PasswordHash: hash,
	})
	if !errors.Is(err, accounts.ErrEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}
}
