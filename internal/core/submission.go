package core

import (
	"strings"

	"github.com/jo-hoe/visittrack/internal/common"
)

const (
	LocationRecordedYes = "yes"
	LocationRecordedNo  = "no"

	productSeparator = ", "
)

// SubmissionFields carries the client-supplied text fields of one form
// submission. Products keeps the raw multi-value form entries; they are
// collapsed into a single comma-joined cell before the row is built.
type SubmissionFields struct {
	SRName           string
	StoreName        string
	VisitType        string
	Category         string
	Phone            string
	LeadType         string
	FollowUpDate     string
	Products         []string
	OrderDetails     string
	LocationRecorded string
	Latitude         string
	Longitude        string
	LocationLink     string
	Remarks          string
}

// SubmissionRecord is one complete visit record. It is created once per
// submission, is immutable after creation, and maps 1:1 onto a sheet row.
type SubmissionRecord struct {
	Timestamp        string `json:"timestamp"`
	SRName           string `json:"srName"`
	StoreName        string `json:"storeName"`
	VisitType        string `json:"visitType"`
	Category         string `json:"category"`
	Phone            string `json:"phone"`
	LeadType         string `json:"leadType"`
	FollowUpDate     string `json:"followUpDate"`
	ImageURL         string `json:"imageUrl"`
	Products         string `json:"products"`
	OrderDetails     string `json:"orderDetails"`
	LocationRecorded string `json:"locationRecorded"`
	Latitude         string `json:"latitude"`
	Longitude        string `json:"longitude"`
	LocationLink     string `json:"locationLink"`
	Remarks          string `json:"remarks"`
}

// RowHeader lists the sheet column titles in row order.
var RowHeader = []string{
	"Timestamp",
	"SR Name",
	"Store Name",
	"Visit Type",
	"Category",
	"Phone",
	"Lead Type",
	"Follow Up Date",
	"Image URL",
	"Products",
	"Order Details",
	"Loc Yes/No",
	"Lat",
	"Long",
	"Loc Link",
	"Remarks",
}

// JoinProducts collapses the checked product values into a single cell
// value, preserving document order. No products selected yields an empty
// string. A single entry that is already comma-joined passes through
// unchanged.
func JoinProducts(values []string) string {
	return strings.Join(values, productSeparator)
}

// Validate enforces the field-level invariant of the data model: a
// submission declaring a recorded location must carry the coordinates and
// the derived maps link.
func (f *SubmissionFields) Validate() error {
	if f.LocationRecorded == LocationRecordedYes {
		if f.Latitude == "" || f.Longitude == "" {
			return common.NewValidationError("location marked as recorded but no coordinates were captured")
		}
		if f.LocationLink == "" {
			return common.NewValidationError("location marked as recorded but no location link was derived")
		}
	}
	return nil
}

// NewSubmissionRecord builds the canonical record from validated fields,
// the server-assigned timestamp, and the public URL of the stored
// photograph.
func NewSubmissionRecord(fields *SubmissionFields, timestamp, imageURL string) *SubmissionRecord {
	return &SubmissionRecord{
		Timestamp:        timestamp,
		SRName:           fields.SRName,
		StoreName:        fields.StoreName,
		VisitType:        fields.VisitType,
		Category:         fields.Category,
		Phone:            fields.Phone,
		LeadType:         fields.LeadType,
		FollowUpDate:     fields.FollowUpDate,
		ImageURL:         imageURL,
		Products:         JoinProducts(fields.Products),
		OrderDetails:     fields.OrderDetails,
		LocationRecorded: fields.LocationRecorded,
		Latitude:         fields.Latitude,
		Longitude:        fields.Longitude,
		LocationLink:     fields.LocationLink,
		Remarks:          fields.Remarks,
	}
}

// Row returns the record as sheet cells in the fixed 16-column order.
func (r *SubmissionRecord) Row() []any {
	return []any{
		r.Timestamp,
		r.SRName,
		r.StoreName,
		r.VisitType,
		r.Category,
		r.Phone,
		r.LeadType,
		r.FollowUpDate,
		r.ImageURL,
		r.Products,
		r.OrderDetails,
		r.LocationRecorded,
		r.Latitude,
		r.Longitude,
		r.LocationLink,
		r.Remarks,
	}
}
