package patients

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound covers both a missing patient and a patient owned by someone
// else; callers cannot tell the two apart.
var ErrNotFound = errors.New("patient not found")

// PatientRepository is owner-scoped: every lookup, update and delete takes
// the owner id as an explicit predicate, never an implicit current user.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*Patient, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
