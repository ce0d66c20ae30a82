package entity

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/ports"
)

// Registry bundles the typed collection for every entity kind plus the two
// singletons, all sharing one EntityStore.
type Registry struct {
	Users          *Collection[domain.User]
	Patients       *Collection[domain.Patient]
	Services       *Collection[domain.Service]
	Appointments   *Collection[domain.Appointment]
	Invoices       *Collection[domain.Invoice]
	InventoryItems *Collection[domain.InventoryItem]
	Settings       *Singleton[domain.AppSettings]
	Chat           *Singleton[domain.ChatLog]
}

func NewRegistry(store ports.EntityStore, log zerolog.Logger) *Registry {
	return &Registry{
		Users: NewCollection(store, Definition[domain.User]{
			Kind:    "user",
			Initial: func() domain.User { return domain.User{Role: domain.RolePatient} },
			ID:      func(u domain.User) string { return u.ID },
			SetID:   func(u *domain.User, id string) { u.ID = id },
			Seed:    seedUsers,
		}, log),
		Patients: NewCollection(store, Definition[domain.Patient]{
			Kind:    "patient",
			Initial: func() domain.Patient { return domain.Patient{Gender: "Other"} },
			ID:      func(p domain.Patient) string { return p.ID },
			SetID:   func(p *domain.Patient, id string) { p.ID = id },
			Seed:    seedPatients,
		}, log),
		Services: NewCollection(store, Definition[domain.Service]{
			Kind:    "service",
			Initial: func() domain.Service { return domain.Service{IsActive: true} },
			ID:      func(s domain.Service) string { return s.ID },
			SetID:   func(s *domain.Service, id string) { s.ID = id },
		}, log),
		Appointments: NewCollection(store, Definition[domain.Appointment]{
			Kind:    "appointment",
			Initial: func() domain.Appointment { return domain.Appointment{Status: domain.AppointmentScheduled} },
			ID:      func(a domain.Appointment) string { return a.ID },
			SetID:   func(a *domain.Appointment, id string) { a.ID = id },
		}, log),
		Invoices: NewCollection(store, Definition[domain.Invoice]{
			Kind:    "invoice",
			Initial: func() domain.Invoice { return domain.Invoice{Status: domain.InvoiceUnpaid, Items: []domain.InvoiceItem{}} },
			ID:      func(i domain.Invoice) string { return i.ID },
			SetID:   func(i *domain.Invoice, id string) { i.ID = id },
		}, log),
		InventoryItems: NewCollection(store, Definition[domain.InventoryItem]{
			Kind:    "inventoryItem",
			Initial: func() domain.InventoryItem { return domain.InventoryItem{} },
			ID:      func(i domain.InventoryItem) string { return i.ID },
			SetID:   func(i *domain.InventoryItem, id string) { i.ID = id },
		}, log),
		Settings: NewSingleton(store, "settings", domain.SettingsSingletonID, domain.DefaultSettings),
		Chat:     NewSingleton(store, "chat", domain.ChatSingletonID, func() domain.ChatLog { return domain.ChatLog{Messages: []domain.ChatMessage{}} }),
	}
}

// Seed runs the one-time seed for the kinds that ship data. Idempotent:
// already-populated kinds are left untouched.
func (r *Registry) Seed(ctx context.Context) error {
	if err := r.Users.EnsureSeed(ctx); err != nil {
		return err
	}
	return r.Patients.EnsureSeed(ctx)
}

func seedUsers() []domain.User {
	now := time.Now().UTC().Format(time.RFC3339)
	return []domain.User{
		{
			ID:           "1",
			Username:     "admin",
			Email:        "admin@dentalflow.com",
			PasswordHash: domain.PlaceholderHash("admin"),
			FullName:     "Dr. Admin",
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Username:     "doctor",
			Email:        "doctor@dentalflow.com",
			PasswordHash: domain.PlaceholderHash("doctor"),
			FullName:     "Dr. Smith",
			Role:         domain.RoleDoctor,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "3",
			Username:     "manager",
			Email:        "manager@dentalflow.com",
			PasswordHash: domain.PlaceholderHash("manager"),
			FullName:     "Jane Doe",
			Role:         domain.RoleManager,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "patient-user-1",
			Username:     "patient_asma",
			Email:        "asma@testmail.com",
			PasswordHash: domain.PlaceholderHash("patient_asma"),
			FullName:     "Asma Bibi",
			Role:         domain.RolePatient,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func seedPatients() []domain.Patient {
	now := time.Now().UTC().Format(time.RFC3339)
	return []domain.Patient{
		{
			ID:             "patient-1",
			UserID:         "patient-user-1",
			FullName:       "Asma Bibi",
			DOB:            "1992-05-12",
			Gender:         "Female",
			Phone:          "03001234567",
			Email:          "asma@testmail.com",
			MedicalHistory: "None",
			CreatedAt:      now,
		},
	}
}
