package domain

// EmergencyContact is the person to reach when a patient cannot respond.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Patient is a clinic patient record. UserID links the record to a portal
// account when the patient has one; it is empty otherwise.
type Patient struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id,omitempty"`
	FullName         string            `json:"full_name"`
	DOB              string            `json:"dob"`
	Gender           string            `json:"gender"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
	MedicalHistory   string            `json:"medical_history,omitempty"`
	CreatedAt        string            `json:"createdAt"`
}

func (p *Patient) StampCreated(ts string) {
	if p.CreatedAt == "" {
		p.CreatedAt = ts
	}
}
