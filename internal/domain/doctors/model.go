package doctors

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table. CreatedBy records who registered the
// doctor, but unlike patients the record is visible to every authenticated
// user.
type Doctor struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CreatedBy       uuid.UUID `db:"created_by" json:"created_by"`
	Name            string    `db:"name" json:"name"`
	Specialization  string    `db:"specialization" json:"specialization"`
	Phone           *string   `db:"phone" json:"phone,omitempty"`
	Email           *string   `db:"email" json:"email,omitempty"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
