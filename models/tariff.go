package models

// TariffPost identifies a numbered category of the fee schedule. The set is
// closed; metadata for every post lives in the tariffs package.
type TariffPost string

// RATG posts used in civil matters
const (
	PostTP1  TariffPost = "TP1"
	PostTP2  TariffPost = "TP2"
	PostTP3A TariffPost = "TP3A"
	PostTP3B TariffPost = "TP3B"
	PostTP3C TariffPost = "TP3C"
	PostTP5  TariffPost = "TP5"
	PostTP6  TariffPost = "TP6"
	// PostTP7 is the generic Kommission post a civil service carries; the
	// calculator narrows it to TP7/1 or TP7/2.
	PostTP7  TariffPost = "TP7"
	PostTP71 TariffPost = "TP7/1"
	PostTP72 TariffPost = "TP7/2"
	PostTP8  TariffPost = "TP8"
	PostTP9  TariffPost = "TP9"
)

// Posts used by the criminal, detention and administrative-penal calculators
const (
	PostCriminalHearing  TariffPost = "TP4-HV"
	PostCriminalBrief    TariffPost = "TP4-SS"
	PostCriminalRemedy   TariffPost = "TP4-RM"
	PostDetentionHearing TariffPost = "HAFT-VH"
	PostDetentionAppeal  TariffPost = "HAFT-BS"
	PostDetentionVisit   TariffPost = "HAFT-BE"
	PostAdminHearing     TariffPost = "VS-VH"
	PostAdminStatement   TariffPost = "VS-SS"
	PostAdminComplaint   TariffPost = "VS-BS"
	PostAdminRevision    TariffPost = "VS-REV"
)

// CourtType selects the fixed basis of criminal, detention and
// administrative-penal matters.
type CourtType string

const (
	CourtDistrict     CourtType = "BG"   // Bezirksgericht
	CourtSingleJudge  CourtType = "ER"   // Einzelrichter am Landesgericht
	CourtLayJudges    CourtType = "SG"   // Schöffengericht
	CourtJury         CourtType = "GG"   // Geschworenengericht
	CourtAuthority    CourtType = "BEH"  // Verwaltungsstrafbehörde
	CourtAdminCourt   CourtType = "VWG"  // Verwaltungsgericht
	CourtSupremeAdmin CourtType = "VWGH" // Verwaltungsgerichtshof
)

// Valid reports whether c is a known court type. The empty value is valid
// and means the case basis applies.
func (c CourtType) Valid() bool {
	switch c {
	case "", CourtDistrict, CourtSingleJudge, CourtLayJudges, CourtJury,
		CourtAuthority, CourtAdminCourt, CourtSupremeAdmin:
		return true
	}
	return false
}

// ProcedureType is the civil procedure a matter runs in
type ProcedureType string

const (
	ProcedureLawsuit    ProcedureType = "lawsuit"
	ProcedureAppealOnly ProcedureType = "appeal_only" // mandate limited to the appellate instance
	ProcedureExecution  ProcedureType = "execution"
)

// Valid reports whether p is a known procedure; empty means a lawsuit.
func (p ProcedureType) Valid() bool {
	switch p {
	case "", ProcedureLawsuit, ProcedureAppealOnly, ProcedureExecution:
		return true
	}
	return false
}

// JoinderCategory selects the connection surcharge of a civil pleading
type JoinderCategory string

const (
	JoinderNone          JoinderCategory = ""
	JoinderPriorDecision JoinderCategory = "prior_decision"
	JoinderSameDomicile  JoinderCategory = "same_domicile"
	JoinderOther         JoinderCategory = "other"
)

// Valid reports whether j is a known joinder category
func (j JoinderCategory) Valid() bool {
	switch j {
	case JoinderNone, JoinderPriorDecision, JoinderSameDomicile, JoinderOther:
		return true
	}
	return false
}

// CourtFeePost is a tariff post of the court-fee (GGG) schedule
type CourtFeePost string

const (
	CourtFeeFirstInstance CourtFeePost = "GGG-TP1"
	CourtFeeAppeal        CourtFeePost = "GGG-TP2"
	CourtFeeRevision      CourtFeePost = "GGG-TP3"
	CourtFeeExecution     CourtFeePost = "GGG-TP4"
)

// Valid reports whether p is a known court-fee post
func (p CourtFeePost) Valid() bool {
	switch p {
	case CourtFeeFirstInstance, CourtFeeAppeal, CourtFeeRevision, CourtFeeExecution:
		return true
	}
	return false
}

// Section is the statutory citation of a court-fee line
func (p CourtFeePost) Section() string {
	switch p {
	case CourtFeeFirstInstance:
		return "TP 1 GGG"
	case CourtFeeAppeal:
		return "TP 2 GGG"
	case CourtFeeRevision:
		return "TP 3 GGG"
	case CourtFeeExecution:
		return "TP 4 GGG"
	default:
		return string(p)
	}
}
