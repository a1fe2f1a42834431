package models

// Domain discriminates the four kinds of matter the engine can bill
type Domain string

const (
	DomainCivil      Domain = "civil"
	DomainCriminal   Domain = "criminal"
	DomainDetention  Domain = "detention"
	DomainAdminPenal Domain = "admin_penal"
)

// Domains lists every supported domain in a stable order
var Domains = []Domain{DomainCivil, DomainCriminal, DomainDetention, DomainAdminPenal}

// Valid reports whether d is one of the supported domains
func (d Domain) Valid() bool {
	for _, known := range Domains {
		if d == known {
			return true
		}
	}
	return false
}

// Service is one billable act. Each domain owns a disjoint shape; calculators
// switch on the concrete type and ignore shapes of other domains.
type Service interface {
	ServiceID() string
	ServiceDate() Date
	Domain() Domain
}

// CivilService is a billable act in a civil matter
type CivilService struct {
	ID                string     `json:"id"`
	Date              Date       `json:"date"`
	Post              TariffPost `json:"post"`
	DurationHalfHours int        `json:"durationHalfHours"`
	WaitingHalfHours  int        `json:"waitingHalfHours"`
	ESMultiplier      int        `json:"esMultiplier"`
	IncludeERV        bool       `json:"includeErvSurcharge"`
	FirstFiling       bool       `json:"firstFiling"`
	// CustomBasisCents overrides the case basis when positive.
	CustomBasisCents int64 `json:"customBasisCents,omitempty"`
	// CustomPartyCount overrides the case co-litigant count when set.
	CustomPartyCount     *int            `json:"customPartyCount,omitempty"`
	Joinder              JoinderCategory `json:"joinder,omitempty"`
	HalfFee              bool            `json:"halfFee,omitempty"`
	RequiresQualifiedRep bool            `json:"requiresQualifiedRep,omitempty"`
	Frustrated           bool            `json:"frustrated,omitempty"`
}

func (s CivilService) ServiceID() string { return s.ID }
func (s CivilService) ServiceDate() Date { return s.Date }
func (s CivilService) Domain() Domain    { return DomainCivil }

// CriminalServiceType is the kind of act in a criminal matter
type CriminalServiceType string

const (
	CriminalHearing     CriminalServiceType = "hearing"
	CriminalBrief       CriminalServiceType = "brief"
	CriminalAppeal      CriminalServiceType = "appeal"
	CriminalNullityPlea CriminalServiceType = "nullity_plea"
)

// CriminalService is a billable act in a criminal matter
type CriminalService struct {
	ID                string              `json:"id"`
	Date              Date                `json:"date"`
	Type              CriminalServiceType `json:"type"`
	DurationHalfHours int                 `json:"durationHalfHours"`
	WaitingHalfHours  int                 `json:"waitingHalfHours"`
	ESMultiplier      int                 `json:"esMultiplier"`
	IncludeERV        bool                `json:"includeErvSurcharge"`
	FirstFiling       bool                `json:"firstFiling"`
	Frustrated        bool                `json:"frustrated,omitempty"`
	// OnlyPenalty marks an appeal limited to the sentence.
	OnlyPenalty bool `json:"onlyPenalty,omitempty"`
}

func (s CriminalService) ServiceID() string { return s.ID }
func (s CriminalService) ServiceDate() Date { return s.Date }
func (s CriminalService) Domain() Domain    { return DomainCriminal }

// DetentionServiceType is the kind of act in a detention matter
type DetentionServiceType string

const (
	DetentionHearing   DetentionServiceType = "hearing"
	DetentionComplaint DetentionServiceType = "complaint"
	DetentionVisit     DetentionServiceType = "visit"
)

// DetentionService is a billable act in a detention matter
type DetentionService struct {
	ID                string               `json:"id"`
	Date              Date                 `json:"date"`
	Type              DetentionServiceType `json:"type"`
	DurationHalfHours int                  `json:"durationHalfHours"`
	WaitingHalfHours  int                  `json:"waitingHalfHours"`
	ESMultiplier      int                  `json:"esMultiplier"`
	IncludeERV        bool                 `json:"includeErvSurcharge"`
	FirstFiling       bool                 `json:"firstFiling"`
	Frustrated        bool                 `json:"frustrated,omitempty"`
}

func (s DetentionService) ServiceID() string { return s.ID }
func (s DetentionService) ServiceDate() Date { return s.Date }
func (s DetentionService) Domain() Domain    { return DomainDetention }

// AdminPenalServiceType is the kind of act in an administrative-penal matter
type AdminPenalServiceType string

const (
	AdminPenalHearing   AdminPenalServiceType = "hearing"
	AdminPenalStatement AdminPenalServiceType = "statement"
	AdminPenalComplaint AdminPenalServiceType = "complaint"
	AdminPenalRevision  AdminPenalServiceType = "revision"
)

// AdminPenalService is a billable act in an administrative-penal matter
type AdminPenalService struct {
	ID                string                `json:"id"`
	Date              Date                  `json:"date"`
	Type              AdminPenalServiceType `json:"type"`
	DurationHalfHours int                   `json:"durationHalfHours"`
	WaitingHalfHours  int                   `json:"waitingHalfHours"`
	ESMultiplier      int                   `json:"esMultiplier"`
	IncludeERV        bool                  `json:"includeErvSurcharge"`
	FirstFiling       bool                  `json:"firstFiling"`
	Frustrated        bool                  `json:"frustrated,omitempty"`
	OnlyPenalty       bool                  `json:"onlyPenalty,omitempty"`
}

func (s AdminPenalService) ServiceID() string { return s.ID }
func (s AdminPenalService) ServiceDate() Date { return s.Date }
func (s AdminPenalService) Domain() Domain    { return DomainAdminPenal }
