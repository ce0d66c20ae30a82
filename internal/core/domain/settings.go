package domain

// PermissionsMap maps a role to the UI module names it may access.
type PermissionsMap map[Role][]string

// AppSettings is the global settings singleton.
type AppSettings struct {
	ID          string         `json:"id"`
	Permissions PermissionsMap `json:"permissions"`
}

// SettingsSingletonID is the fixed id of the settings record.
const SettingsSingletonID = "global-settings"

// DefaultSettings returns the permissions shipped on first access.
func DefaultSettings() AppSettings {
	return AppSettings{
		ID: SettingsSingletonID,
		Permissions: PermissionsMap{
			RoleAdmin:       {"Dashboard", "Appointments", "Patients", "Staff", "Services", "Invoices", "Inventory", "Reports", "Settings"},
			RoleManager:     {"Dashboard", "Appointments", "Patients", "Services", "Invoices", "Inventory", "Reports", "Settings"},
			RoleDoctor:      {"Dashboard", "Appointments", "Patients", "Settings"},
			RoleAccountant:  {"Dashboard", "Invoices", "Reports", "Settings"},
			RoleStorekeeper: {"Dashboard", "Inventory", "Settings"},
			RolePatient:     {"Portal", "Settings"},
		},
	}
}
