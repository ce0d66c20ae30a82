package domain

// Role is one of the fixed user categories controlling module-level access.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleManager     Role = "Manager"
	RoleDoctor      Role = "Doctor"
	RoleAccountant  Role = "Accountant"
	RoleStorekeeper Role = "Storekeeper"
	RolePatient     Role = "Patient"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDoctor, RoleAccountant, RoleStorekeeper, RolePatient:
		return true
	}
	return false
}

// StaffRoles returns every role except Patient.
func StaffRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleDoctor, RoleAccountant, RoleStorekeeper}
}

// User models a staff member or patient portal account. Timestamps are
// RFC 3339 strings; field naming follows the established wire format
// (camelCase timestamps, snake_case everywhere else).
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`
	FullName     string `json:"full_name"`
	Role         Role   `json:"role"`
	Phone        string `json:"phone,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// PlaceholderHash derives the deterministic password-hash stand-in for a
// username. There is intentionally no real hashing in this system.
func PlaceholderHash(username string) string {
	return "hashed_password_for_" + username
}

// Sanitized returns a copy of the user with the password hash stripped,
// safe to send to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

func (u *User) StampCreated(ts string) {
	if u.CreatedAt == "" {
		u.CreatedAt = ts
	}
}

func (u *User) StampUpdated(ts string) { u.UpdatedAt = ts }
