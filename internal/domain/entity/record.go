package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordBase carries the columns shared by every record attached to a business.
type RecordBase struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Base exposes the shared columns to generic code.
func (b *RecordBase) Base() *RecordBase {
	return b
}

// Record is implemented by every entity stored through the resource registry.
type Record interface {
	Base() *RecordBase
}

// RecordPtr constrains generic code to pointers of record entities.
type RecordPtr[E any] interface {
	*E
	Record
}

// ActorStamped records carry the id of the user who authored them. The field is
// filled from the session when the client leaves it empty.
type ActorStamped interface {
	StampActor(userID uuid.UUID)
}

// Inspection is an officer's visit to a business.
type Inspection struct {
	RecordBase
	InspectorID uuid.UUID `json:"inspector_id" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Rating      int       `json:"rating" validate:"gte=0,lte=5"`
	Comments    string    `json:"comments"`
}

// StampActor sets the inspector when missing.
func (i *Inspection) StampActor(userID uuid.UUID) {
	if i.InspectorID == uuid.Nil {
		i.InspectorID = userID
	}
}

// HygieneRating is a published hygiene score.
type HygieneRating struct {
	RecordBase
	Rating int       `json:"rating" validate:"gte=0,lte=5"`
	Date   time.Time `json:"date" validate:"required"`
}

// LabReport is the outcome of a food sample test.
type LabReport struct {
	RecordBase
	ReportType string    `json:"report_type" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	Result     string    `json:"result" validate:"required"`
	FileURL    *string   `json:"file_url"`
}

// Certification is a certificate held by a business.
type Certification struct {
	RecordBase
	CertificationType string    `json:"certification_type" validate:"required"`
	IssueDate         time.Time `json:"issue_date" validate:"required"`
	ExpiryDate        time.Time `json:"expiry_date" validate:"required"`
	CertificateNumber string    `json:"certificate_number" validate:"required"`
}

// TeamMember is a person working at a business.
type TeamMember struct {
	RecordBase
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// FacilityPhoto is a picture of one area of the premises.
type FacilityPhoto struct {
	RecordBase
	AreaName string `json:"area_name" validate:"required"`
	PhotoURL string `json:"photo_url" validate:"required"`
}

// Review is a consumer's rating of a business.
type Review struct {
	RecordBase
	ReviewerID uuid.UUID `json:"reviewer_id" validate:"required"`
	Rating     int       `json:"rating" validate:"gte=1,lte=5"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date" validate:"required"`
}

// StampActor sets the reviewer when missing.
func (r *Review) StampActor(userID uuid.UUID) {
	if r.ReviewerID == uuid.Nil {
		r.ReviewerID = userID
	}
}
