package models

import "time"

// Client statuses. Status is stored as text; the service layer rejects
// anything outside this set before it reaches the database.
const (
	StatusPending      = "pending"
	StatusPaid         = "paid"
	StatusDisconnected = "disconnected"
)

// ValidStatus reports whether s is one of the allowed client statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid || s == StatusDisconnected
}

// Client represents one subscriber of the ISP.
// Amount and DueDate are opaque display strings; no arithmetic is done on them.
// Phone doubles as the device hardware identifier in notification emails.
type Client struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Amount    string    `json:"amount" db:"amount"`
	DueDate   string    `json:"dueDate" db:"due_date"`
	Wifi      string    `json:"wifi" db:"wifi"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ClientSnapshot is the partial client view embedded in notification emails.
// Every field is optional; the template engine substitutes a placeholder for
// anything left empty, so a zero value snapshot is always renderable.
type ClientSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Amount  string `json:"amount"`
	DueDate string `json:"dueDate"`
	Wifi    string `json:"wifi"`
}
