package mappings

import (
	"time"

	"github.com/google/uuid"

	"github.com/shashavali-8524/health-care/internal/domain/doctors"
	"github.com/shashavali-8524/health-care/internal/domain/patients"
)

// Mapping assigns one doctor to one patient. The (patient_id, doctor_id)
// pair is unique, enforced by a database constraint.
type Mapping struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID   uuid.UUID `db:"doctor_id" json:"doctor_id"`
	AssignedAt time.Time `db:"assigned_at" json:"assigned_at"`
}

// MappingDetail is the read model for mapping lists: the full patient and
// doctor records are embedded so clients need no second round trip.
type MappingDetail struct {
	ID         uuid.UUID        `json:"id"`
	Patient    patients.Patient `json:"patient"`
	Doctor     doctors.Doctor   `json:"doctor"`
	AssignedAt time.Time        `json:"assigned_at"`
}
