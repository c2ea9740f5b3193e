package mappings

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("mapping not found")

	// ErrDuplicate is returned when the (patient, doctor) pair already
	// exists. The unique constraint is the source of truth, so Create
	// returns this even when two callers race past the existence pre-check.
	ErrDuplicate = errors.New("mapping already exists")
)

type MappingRepository interface {
	Create(ctx context.Context, m *Mapping) error
	Exists(ctx context.Context, patientID, doctorID uuid.UUID) (bool, error)
	ListDetails(ctx context.Context, limit, offset int) ([]*MappingDetail, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MappingDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Reference checks for create-time validation. Deliberately not
	// owner-scoped: any authenticated user may assign a doctor to any
	// patient.
	PatientExists(ctx context.Context, patientID uuid.UUID) (bool, error)
	DoctorExists(ctx context.Context, doctorID uuid.UUID) (bool, error)
}
