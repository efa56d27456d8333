package exhibition

type Exhibition struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Timing    string `json:"timing,omitempty"`
	Active    bool   `json:"active"`
}

// Payload is the create/update body sent to the backend. Timing is the
// joined "start - end" string the admin form builds from its two inputs.
type Payload struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Timing    string `json:"timing" binding:"omitempty"`
	Active    bool   `json:"active"`
}
