package mappings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mappingRepoPG struct{ pool *pgxpool.Pool }

func NewMappingRepoPG(pool *pgxpool.Pool) MappingRepository {
	return &mappingRepoPG{pool: pool}
}

func (r *mappingRepoPG) Create(ctx context.Context, m *Mapping) error {
	m.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patient_doctor_mappings (id, patient_id, doctor_id)
		VALUES ($1,$2,$3)
		RETURNING assigned_at`,
		m.ID, m.PatientID, m.DoctorID).Scan(&m.AssignedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *mappingRepoPG) Exists(ctx context.Context, patientID, doctorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM patient_doctor_mappings WHERE patient_id = $1 AND doctor_id = $2
		)`, patientID, doctorID).Scan(&exists)
	return exists, err
}

const detailCols = `m.id, m.assigned_at,
	p.id, p.created_by, p.name, p.age, p.gender, p.phone, p.address, p.medical_history,
	p.created_at, p.updated_at,
	d.id, d.created_by, d.name, d.specialization, d.phone, d.email, d.experience_years,
	d.created_at, d.updated_at`

const detailJoin = `FROM patient_doctor_mappings m
	JOIN patients p ON p.id = m.patient_id
	JOIN doctors d ON d.id = m.doctor_id`

func scanDetail(row pgx.Row) (*MappingDetail, error) {
	var md MappingDetail
	err := row.Scan(&md.ID, &md.AssignedAt,
		&md.Patient.ID, &md.Patient.CreatedBy, &md.Patient.Name, &md.Patient.Age,
		&md.Patient.Gender, &md.Patient.Phone, &md.Patient.Address,
		&md.Patient.MedicalHistory, &md.Patient.CreatedAt, &md.Patient.UpdatedAt,
		&md.Doctor.ID, &md.Doctor.CreatedBy, &md.Doctor.Name, &md.Doctor.Specialization,
		&md.Doctor.Phone, &md.Doctor.Email, &md.Doctor.ExperienceYears,
		&md.Doctor.CreatedAt, &md.Doctor.UpdatedAt)
	return &md, err
}

func (r *mappingRepoPG) ListDetails(ctx context.Context, limit, offset int) ([]*MappingDetail, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient_doctor_mappings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+detailCols+` `+detailJoin+` ORDER BY m.assigned_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*MappingDetail
	for rows.Next() {
		md, err := scanDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, md)
	}
	return items, total, rows.Err()
}

func (r *mappingRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MappingDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+detailCols+` `+detailJoin+` WHERE m.patient_id = $1 ORDER BY m.assigned_at DESC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MappingDetail
	for rows.Next() {
		md, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, md)
	}
	return items, rows.Err()
}

func (r *mappingRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patient_doctor_mappings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mappingRepoPG) PatientExists(ctx context.Context, patientID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, patientID).Scan(&exists)
	return exists, err
}

func (r *mappingRepoPG) DoctorExists(ctx context.Context, doctorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctors WHERE id = $1)`, doctorID).Scan(&exists)
	return exists, err
}
