package services

import (
	"kostennote/engine/models"
)

// Calculator prices the services of one domain. Services are processed in
// input order, which is also the order of the returned lines. Services of
// other domains are ignored.
type Calculator interface {
	Domain() models.Domain
	Calculate(services []models.Service, cc models.CaseContext) (models.TotalResult, error)
}

// Posts per domain. Civil services name a RATG post directly; the other
// domains name a service type that maps to an AHK post.
var (
	civilPosts = map[models.TariffPost]bool{
		models.PostTP1:  true,
		models.PostTP2:  true,
		models.PostTP3A: true,
		models.PostTP3B: true,
		models.PostTP3C: true,
		models.PostTP5:  true,
		models.PostTP6:  true,
		models.PostTP7:  true,
		models.PostTP71: true,
		models.PostTP72: true,
		models.PostTP8:  true,
		models.PostTP9:  true,
	}
	criminalPosts = map[models.CriminalServiceType]models.TariffPost{
		models.CriminalHearing:     models.PostCriminalHearing,
		models.CriminalBrief:       models.PostCriminalBrief,
		models.CriminalAppeal:      models.PostCriminalRemedy,
		models.CriminalNullityPlea: models.PostCriminalRemedy,
	}
	detentionPosts = map[models.DetentionServiceType]models.TariffPost{
		models.DetentionHearing:   models.PostDetentionHearing,
		models.DetentionComplaint: models.PostDetentionAppeal,
		models.DetentionVisit:     models.PostDetentionVisit,
	}
	adminPenalPosts = map[models.AdminPenalServiceType]models.TariffPost{
		models.AdminPenalHearing:   models.PostAdminHearing,
		models.AdminPenalStatement: models.PostAdminStatement,
		models.AdminPenalComplaint: models.PostAdminComplaint,
		models.AdminPenalRevision:  models.PostAdminRevision,
	}
)

// PostFor maps a service type of a domain to its tariff post. Civil
// services name their post directly.
func PostFor(domain models.Domain, serviceType string) (models.TariffPost, bool) {
	var (
		post models.TariffPost
		ok   bool
	)
	switch domain {
	case models.DomainCivil:
		post = models.TariffPost(serviceType)
		ok = civilPosts[post]
	case models.DomainCriminal:
		post, ok = criminalPosts[models.CriminalServiceType(serviceType)]
	case models.DomainDetention:
		post, ok = detentionPosts[models.DetentionServiceType(serviceType)]
	case models.DomainAdminPenal:
		post, ok = adminPenalPosts[models.AdminPenalServiceType(serviceType)]
	}
	return post, ok
}

// halvesOnPenalty reports whether an appeal limited to the sentence is
// billed at half the base fee.
func halvesOnPenalty(post models.TariffPost) bool {
	switch post {
	case models.PostCriminalRemedy, models.PostAdminComplaint, models.PostAdminRevision:
		return true
	}
	return false
}
