package models

// CaseContext groups the parameters that apply to every service of one
// calculation pass. Calculators only read it.
type CaseContext struct {
	Mode              Domain `json:"mode"`
	BasisCents        int64  `json:"basisCents"`
	AdditionalParties int    `json:"additionalParties"`
	VATExempt         bool   `json:"vatExempt"`
	// CourtType picks the fixed basis in criminal, detention and
	// administrative-penal matters.
	CourtType     CourtType     `json:"courtType,omitempty"`
	ProcedureType ProcedureType `json:"procedureType,omitempty"`
	// SuccessPercent is the domain-level success surcharge (0-50) of
	// criminal and administrative-penal matters.
	SuccessPercent      int   `json:"successPercent,omitempty"`
	CourtFeeEnabled     bool  `json:"courtFeeEnabled,omitempty"`
	CourtFeeManual      bool  `json:"courtFeeManual,omitempty"`
	CourtFeeManualCents int64 `json:"courtFeeManualCents,omitempty"`
}

// Matter is the input of one calculation pass
type Matter struct {
	Context  CaseContext
	Services []Service
}
