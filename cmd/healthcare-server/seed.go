package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shashavali-8524/health-care/internal/domain/accounts"
	"github.com/shashavali-8524/health-care/internal/domain/doctors"
	"github.com/shashavali-8524/health-care/internal/domain/mappings"
	"github.com/shashavali-8524/health-care/internal/domain/patients"
	"github.com/shashavali-8524/health-care/internal/platform/auth"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert synthetic demo data (users, patients, doctors, mappings)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := connect()
			if err != nil {
				return err
			}
			defer pool.Close()
			return runSeed(context.Background(),
				accounts.NewUserRepoPG(pool),
				patients.NewPatientRepoPG(pool),
				doctors.NewDoctorRepoPG(pool),
				mappings.NewMappingRepoPG(pool))
		},
	}
}

type seedUser struct {
	username, email, password string
}

type seedDoctor struct {
	name, specialization, phone, email string
	experienceYears                    int
	createdBy                          int // index into seed users
}

type seedPatient struct {
	name                           string
	age                            int
	gender, phone, address, history string
	createdBy                      int
}

var seedUsers = []seedUser{
	{"dr_admin", "admin@healthcare.com", "Admin@1234"},
	{"nurse_jane", "jane@healthcare.com", "Jane@1234"},
	{"receptionist_bob", "bob@healthcare.com", "Bob@12345"},
}

var seedDoctors = []seedDoctor{
	{"Rajesh Kumar", "Cardiology", "+91-9876543210", "rajesh.kumar@hospital.com", 15, 0},
	{"Priya Sharma", "Dermatology", "+91-9876543211", "priya.sharma@hospital.com", 10, 0},
	{"Amit Patel", "Orthopedics", "+91-9876543212", "amit.patel@hospital.com", 20, 1},
	{"Sneha Reddy", "Pediatrics", "+91-9876543213", "sneha.reddy@hospital.com", 8, 1},
	{"Vikram Singh", "Neurology", "+91-9876543214", "vikram.singh@hospital.com", 12, 0},
	{"Ananya Gupta", "Ophthalmology", "+91-9876543215", "ananya.gupta@hospital.com", 6, 2},
	{"Suresh Menon", "General Medicine", "+91-9876543216", "suresh.menon@hospital.com", 25, 0},
	{"Kavita Joshi", "Gynecology", "+91-9876543217", "kavita.joshi@hospital.com", 14, 1},
}

var seedPatients = []seedPatient{
	{"Arjun Verma", 45, "Male", "+91-9000000001", "12, MG Road, Bangalore, Karnataka",
		"Hypertension, Type 2 Diabetes. On Metformin 500mg and Amlodipine 5mg.", 0},
	{"Meera Nair", 32, "Female", "+91-9000000002", "45, Marine Drive, Mumbai, Maharashtra",
		"Asthma since childhood. Uses salbutamol inhaler as needed.", 0},
	{"Ravi Shankar", 58, "Male", "+91-9000000003", "78, Anna Salai, Chennai, Tamil Nadu",
		"Coronary artery disease. Had angioplasty in 2022. On aspirin and statins.", 0},
	{"Lakshmi Devi", 67, "Female", "+91-9000000004", "23, Jubilee Hills, Hyderabad, Telangana",
		"Osteoarthritis in both knees. Cataract surgery done in 2023.", 1},
	{"Sanjay Mishra", 29, "Male", "+91-9000000005", "56, Connaught Place, New Delhi",
		"No significant past history. Seasonal allergies.", 1},
	{"Deepa Iyer", 41, "Female", "+91-9000000006", "89, Koregaon Park, Pune, Maharashtra",
		"Migraine disorder. On Sumatriptan as needed. Family history of hypertension.", 0},
	{"Karthik Subramanian", 53, "Male", "+91-9000000007", "34, Race Course Road, Coimbatore, Tamil Nadu",
		"Type 1 Diabetes since age 15. On insulin pump therapy.", 2},
	{"Fatima Begum", 36, "Female", "+91-9000000008", "67, Hazratganj, Lucknow, Uttar Pradesh",
		"Hypothyroidism. On Levothyroxine 50mcg daily.", 2},
	{"Rohan Desai", 22, "Male", "+91-9000000009", "12, FC Road, Pune, Maharashtra",
		"Sports injury - ACL tear in right knee (2024). Post-surgery rehab ongoing.", 1},
	{"Anita Kulkarni", 48, "Female", "+91-9000000010", "90, Banjara Hills, Hyderabad, Telangana",
		"PCOS, iron deficiency anemia. On oral iron supplements.", 0},
}

// (patient index, doctor index) pairs reflecting each patient's conditions.
var seedMappings = [][2]int{
	{0, 0}, {0, 6},
	{1, 6},
	{2, 0},
	{3, 2}, {3, 5},
	{4, 1}, {4, 3},
	{5, 4},
	{6, 6}, {6, 0},
	{7, 6},
	{8, 2},
	{9, 7},
}

func runSeed(ctx context.Context, userRepo accounts.UserRepository,
	patientRepo patients.PatientRepository, doctorRepo doctors.DoctorRepository,
	mappingRepo mappings.MappingRepository) error {

	// Patients and doctors have no natural unique key, so the seed refuses
	// to run twice rather than duplicate rows.
	if _, err := userRepo.GetByUsername(ctx, seedUsers[0].username); err == nil {
		fmt.Println("Database already seeded; nothing to do.")
		return nil
	} else if !errors.Is(err, accounts.ErrNotFound) {
		return fmt.Errorf("check seed state: %w", err)
	}

	fmt.Println("Seeding database with synthetic data...")

	userIDs := make([]uuid.UUID, len(seedUsers))
	for i, su := range seedUsers {
		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		u := &accounts.User{Username: su.username, Email: su.email, PasswordHash: hash}
		if err := userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", su.username, err)
		}
		userIDs[i] = u.ID
		fmt.Printf("  Created user: %s\n", u.Username)
	}

	doctorIDs := make([]uuid.UUID, len(seedDoctors))
	for i, sd := range seedDoctors {
		phone, email := sd.phone, sd.email
		d := &doctors.Doctor{
			CreatedBy:       userIDs[sd.createdBy],
			Name:            sd.name,
			Specialization:  sd.specialization,
			Phone:           &phone,
			Email:           &email,
			ExperienceYears: sd.experienceYears,
		}
		if err := doctorRepo.Create(ctx, d); err != nil {
			return fmt.Errorf("create doctor %s: %w", sd.name, err)
		}
		doctorIDs[i] = d.ID
		fmt.Printf("  Created doctor: Dr. %s (%s)\n", d.Name, d.Specialization)
	}

	patientIDs := make([]uuid.UUID, len(seedPatients))
	for i, sp := range seedPatients {
		phone, address, history := sp.phone, sp.address, sp.history
		p := &patients.Patient{
			CreatedBy:      userIDs[sp.createdBy],
			Name:           sp.name,
			Age:            sp.age,
			Gender:         sp.gender,
			Phone:          &phone,
			Address:        &address,
			MedicalHistory: &history,
		}
		if err := patientRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("create patient %s: %w", sp.name, err)
		}
		patientIDs[i] = p.ID
		fmt.Printf("  Created patient: %s (Age %d)\n", p.Name, p.Age)
	}

	for _, sm := range seedMappings {
		m := &mappings.Mapping{PatientID: patientIDs[sm[0]], DoctorID: doctorIDs[sm[1]]}
		if err := mappingRepo.Create(ctx, m); err != nil {
			return fmt.Errorf("create mapping %s -> %s: %w",
				seedPatients[sm[0]].name, seedDoctors[sm[1]].name, err)
		}
		fmt.Printf("  Mapped: %s -> Dr. %s\n", seedPatients[sm[0]].name, seedDoctors[sm[1]].name)
	}

	fmt.Println("Seeding complete.")
	return nil
}
