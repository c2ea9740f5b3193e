package patients

import (
	"time"

	"github.com/google/uuid"
)

// Valid gender values, matching the CHECK constraint on the patients table.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient maps to the patients table. CreatedBy is set once at creation and
// never changes; every query is scoped to it.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CreatedBy      uuid.UUID `db:"created_by" json:"created_by"`
	Name           string    `db:"name" json:"name"`
	Age            int       `db:"age" json:"age"`
	Gender         string    `db:"gender" json:"gender"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Address        *string   `db:"address" json:"address,omitempty"`
	MedicalHistory *string   `db:"medical_history" json:"medical_history,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
