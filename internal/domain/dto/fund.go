package dto

// CreateAllocationRequest is the ministry "Allocate Funds" modal payload.
// Amount is in crore and arrives as a string the way the form submits it.
type CreateAllocationRequest struct {
	State      string   `json:"state" validate:"required"`
	Components []string `json:"components" validate:"required,min=1,dive,oneof='Adarsh Gram' GIA Hostel"`
	Amount     string   `json:"amount" validate:"required"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	OfficerID  string   `json:"officer_id" validate:"required"`
	Remarks    string   `json:"remarks"`
}

// CreateReleaseRequest is the state "Release New Funds" modal payload.
type CreateReleaseRequest struct {
	District   string   `json:"district" validate:"required"`
	Components []string `json:"components" validate:"required,min=1,dive,oneof='Adarsh Gram' GIA Hostel"`
	Amount     string   `json:"amount" validate:"required"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	OfficerID  string   `json:"officer_id" validate:"required"`
	Remarks    string   `json:"remarks"`
}

// FundRow is a table row as the panel renders it: DisplayAmount is the
// Indian-grouped rupee string ("₹50,00,000" for 0.5 crore).
type FundRow struct {
	ID            string   `json:"id"`
	RefNo         string   `json:"ref_no"`
	Target        string   `json:"target"`
	Components    []string `json:"components"`
	AmountCrore   string   `json:"amount_crore"`
	DisplayAmount string   `json:"display_amount"`
	Date          string   `json:"date"`
	OfficerID     string   `json:"officer_id"`
	Remarks       string   `json:"remarks,omitempty"`
}
