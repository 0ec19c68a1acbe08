package dto

type CreateProposalRequest struct {
	DistrictID    int64  `json:"district_id" validate:"required"`
	ProjectName   string `json:"project_name" validate:"required"`
	EstimatedCost string `json:"estimated_cost" validate:"required"`
}

type RejectProposalRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CreateCertificateRequest struct {
	DistrictID    int64  `json:"district_id" validate:"required"`
	FinancialYear string `json:"financial_year" validate:"required"`
	Released      string `json:"released" validate:"required"`
	Utilized      string `json:"utilized" validate:"required"`
	Remarks       string `json:"remarks"`
}

type RejectCertificateRequest struct {
	Remarks string `json:"remarks" validate:"required"`
}
