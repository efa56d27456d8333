package visitor

import (
	"github.com/techexpo/console/internal/domain/exhibition"
	"github.com/techexpo/console/internal/domain/product"
)

// Visitor is a lead captured through the public registration form or the
// admin "Add Visitor" flow. Everything past CompanyName is optional
// profiling data collected by the richer public form.
type Visitor struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`

	Designation       string   `json:"designation,omitempty"`
	CityState         string   `json:"cityState,omitempty"`
	CompanyType       []string `json:"companyType,omitempty"`
	CompanyTypeOther  string   `json:"companyTypeOther,omitempty"`
	Industry          []string `json:"industry,omitempty"`
	IndustryOther     string   `json:"industryOther,omitempty"`
	CompanySize       []string `json:"companySize,omitempty"`
	InterestAreas     []string `json:"interestAreas,omitempty"`
	Solutions         []string `json:"solutions,omitempty"`
	SolutionsOther    string   `json:"solutionsOther,omitempty"`
	Timeline          []string `json:"timeline,omitempty"`
	Budget            []string `json:"budget,omitempty"`
	FollowUpMode      []string `json:"followUpMode,omitempty"`
	BestTimeToContact []string `json:"bestTimeToContact,omitempty"`
	AdditionalNotes   string   `json:"additionalNotes,omitempty"`
	Consent           bool     `json:"consent,omitempty"`

	ExhibitionID int64   `json:"exhibitionId"`
	ProductIDs   []int64 `json:"productIds"`

	Exhibition      *exhibition.Exhibition `json:"exhibition,omitempty"`
	VisitorProducts []VisitorProduct       `json:"visitorProducts,omitempty"`
}

// VisitorProduct links a visitor to one product of interest.
type VisitorProduct struct {
	ID      int64           `json:"id"`
	Product product.Product `json:"product"`
}

// CreateResponse is what the backend returns for a visitor create. The
// confirmation email is sent server-side; EmailSent=false with an error
// message is a non-fatal condition the UI surfaces as a warning.
type CreateResponse struct {
	Visitor    Visitor `json:"visitor"`
	EmailSent  bool    `json:"emailSent"`
	EmailError string  `json:"emailError,omitempty"`
}
