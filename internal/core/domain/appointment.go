package domain

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCheckedIn AppointmentStatus = "Checked-in"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentNoShow    AppointmentStatus = "No-show"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Appointment references a patient, the treating doctor's user account and
// a catalog service. Start and end are RFC 3339 strings.
type Appointment struct {
	ID           string            `json:"id"`
	PatientID    string            `json:"patient_id"`
	DoctorUserID string            `json:"doctor_user_id"`
	ServiceID    string            `json:"service_id"`
	StartTime    string            `json:"start_time"`
	EndTime      string            `json:"end_time"`
	Status       AppointmentStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
}
