package domain

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid          InvoiceStatus = "Paid"
	InvoiceUnpaid        InvoiceStatus = "Unpaid"
	InvoicePartiallyPaid InvoiceStatus = "Partially Paid"
)

// InvoiceItem is a single embedded line item.
type InvoiceItem struct {
	ID          string  `json:"id"`
	InvoiceID   string  `json:"invoice_id"`
	ServiceID   string  `json:"service_id,omitempty"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

// Invoice bills a patient for rendered services. Line items are embedded,
// not separately stored entities.
type Invoice struct {
	ID              string        `json:"id"`
	InvoiceNumber   string        `json:"invoice_number"`
	PatientID       string        `json:"patient_id"`
	CreatedByUserID string        `json:"created_by_user_id"`
	TotalAmount     float64       `json:"total_amount"`
	Tax             float64       `json:"tax"`
	Discount        float64       `json:"discount"`
	Status          InvoiceStatus `json:"status"`
	CreatedAt       string        `json:"createdAt"`
	Items           []InvoiceItem `json:"items"`
}

func (i *Invoice) StampCreated(ts string) {
	if i.CreatedAt == "" {
		i.CreatedAt = ts
	}
}
