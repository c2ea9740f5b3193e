package mappings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrPatientNotFound and ErrDoctorNotFound report a create request that
	// references a record which does not exist.
	ErrPatientNotFound = errors.New("referenced patient does not exist")
	ErrDoctorNotFound  = errors.New("referenced doctor does not exist")
)

type Service struct {
	repo MappingRepository
}

func NewService(repo MappingRepository) *Service {
	return &Service{repo: repo}
}

// CreateMapping validates both references, then inserts. The existence
// pre-check only produces the friendlier error; the unique constraint in the
// database decides the race when two callers create the same pair at once,
// and a lost race surfaces as the same ErrDuplicate.
func (s *Service) CreateMapping(ctx context.Context, patientID, doctorID uuid.UUID) (*Mapping, error) {
	ok, err := s.repo.PatientExists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return nil, ErrPatientNotFound
	}

	ok, err = s.repo.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if !ok {
		return nil, ErrDoctorNotFound
	}

	exists, err := s.repo.Exists(ctx, patientID, doctorID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	m := &Mapping{PatientID: patientID, DoctorID: doctorID}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMappings(ctx context.Context, limit, offset int) ([]*MappingDetail, int, error) {
	return s.repo.ListDetails(ctx, limit, offset)
}

// ListByPatient returns all doctors assigned to the patient. Zero rows is a
// valid result, not an error — including for a patient id that does not
// exist.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MappingDetail, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) DeleteMapping(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
