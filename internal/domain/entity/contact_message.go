package entity

import "time"

// ContactMessage represents a submission from the public contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
