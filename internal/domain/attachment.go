package domain

import "time"

// AttachmentType represents the kind of a booking attachment
type AttachmentType string

const (
	AttachmentCustomerReference AttachmentType = "CUSTOMER_REFERENCE"
	AttachmentSessionResult     AttachmentType = "SESSION_RESULT"
)

// Valid returns true if the attachment type is known
func (t AttachmentType) Valid() bool {
	return t == AttachmentCustomerReference || t == AttachmentSessionResult
}

// Attachment represents a file attached to a booking
// FileKey указывает на файл в локальном хранилище (pkg/filestore)
type Attachment struct {
	ID         int64
	BookingID  int64
	Type       AttachmentType
	Name       string
	FileKey    string
	UploadedAt time.Time
}
