package patients

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo PatientRepository
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo}
}

// CreatePatient stores a new patient owned by ownerID. Field validation
// happens at the handler boundary; the service only stamps ownership.
func (s *Service) CreatePatient(ctx context.Context, ownerID uuid.UUID, p *Patient) error {
	p.CreatedBy = ownerID
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id, ownerID uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id, ownerID)
}

func (s *Service) ListPatients(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, ownerID, limit, offset)
}

// UpdatePatient replaces every editable field of an owned patient. The
// ownership-scoped UPDATE returns ErrNotFound for both a missing id and a
// patient owned by another user.
func (s *Service) UpdatePatient(ctx context.Context, id, ownerID uuid.UUID, p *Patient) (*Patient, error) {
	p.ID = id
	p.CreatedBy = ownerID
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id, ownerID)
}

func (s *Service) DeletePatient(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.repo.Delete(ctx, id, ownerID)
}
