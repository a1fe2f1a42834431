package services

import (
	"github.com/google/uuid"

	"kostennote/engine/models"
	"kostennote/engine/surcharges"
	"kostennote/engine/tariffs"
)

// ServiceDefaults are the field values a new service starts with
type ServiceDefaults struct {
	Post              models.TariffPost `json:"post"`
	ESMultiplier      int               `json:"esMultiplier"`
	IncludeERV        bool              `json:"includeErvSurcharge"`
	FirstFiling       bool              `json:"firstFiling"`
	DurationHalfHours int               `json:"durationHalfHours"`
}

// fallbackDefaults apply to posts the domain does not know. A simple
// uniform rate is also what decoding assumes for a missing multiplier.
var fallbackDefaults = ServiceDefaults{ESMultiplier: 1}

// Defaults returns the creation defaults of a post in a domain:
//   - the simple uniform rate, or none where the post is excluded
//   - ERV for written filings; a lawsuit is the first filing of a case
//   - one half-hour for time-based posts
func Defaults(post models.TariffPost, domain models.Domain) ServiceDefaults {
	if !postInDomain(post, domain) {
		d := fallbackDefaults
		d.Post = post
		return d
	}

	lookup := post
	if post == models.PostTP7 {
		lookup = tariffs.KommissionPost(false)
	}
	info, _ := tariffs.Info(lookup)

	d := ServiceDefaults{
		Post:         post,
		ESMultiplier: min(1, info.ESClass.Cap()),
	}
	if info.Kind == tariffs.KindTime {
		d.DurationHalfHours = 1
		return d
	}
	d.IncludeERV = info.ESClass != surcharges.ClassExcluded
	d.FirstFiling = post == models.PostTP3A
	return d
}

func postInDomain(post models.TariffPost, domain models.Domain) bool {
	switch domain {
	case models.DomainCivil:
		return civilPosts[post]
	case models.DomainCriminal:
		return containsPost(criminalPosts, post)
	case models.DomainDetention:
		return containsPost(detentionPosts, post)
	case models.DomainAdminPenal:
		return containsPost(adminPenalPosts, post)
	}
	return false
}

func containsPost[K comparable](m map[K]models.TariffPost, post models.TariffPost) bool {
	for _, p := range m {
		if p == post {
			return true
		}
	}
	return false
}

// NewCivilService creates a civil service with a fresh id and the defaults
// of its post.
func NewCivilService(post models.TariffPost, date models.Date) models.CivilService {
	d := Defaults(post, models.DomainCivil)
	return models.CivilService{
		ID:                uuid.NewString(),
		Date:              date,
		Post:              post,
		DurationHalfHours: d.DurationHalfHours,
		ESMultiplier:      d.ESMultiplier,
		IncludeERV:        d.IncludeERV,
		FirstFiling:       d.FirstFiling,
	}
}

// NewCriminalService creates a criminal service with a fresh id
func NewCriminalService(serviceType models.CriminalServiceType, date models.Date) models.CriminalService {
	d := Defaults(criminalPosts[serviceType], models.DomainCriminal)
	return models.CriminalService{
		ID:                uuid.NewString(),
		Date:              date,
		Type:              serviceType,
		DurationHalfHours: d.DurationHalfHours,
		ESMultiplier:      d.ESMultiplier,
		IncludeERV:        d.IncludeERV,
		FirstFiling:       d.FirstFiling,
	}
}

// NewDetentionService creates a detention service with a fresh id
func NewDetentionService(serviceType models.DetentionServiceType, date models.Date) models.DetentionService {
	d := Defaults(detentionPosts[serviceType], models.DomainDetention)
	return models.DetentionService{
		ID:                uuid.NewString(),
		Date:              date,
		Type:              serviceType,
		DurationHalfHours: d.DurationHalfHours,
		ESMultiplier:      d.ESMultiplier,
		IncludeERV:        d.IncludeERV,
		FirstFiling:       d.FirstFiling,
	}
}

// NewAdminPenalService creates an administrative-penal service with a fresh id
func NewAdminPenalService(serviceType models.AdminPenalServiceType, date models.Date) models.AdminPenalService {
	d := Defaults(adminPenalPosts[serviceType], models.DomainAdminPenal)
	return models.AdminPenalService{
		ID:                uuid.NewString(),
		Date:              date,
		Type:              serviceType,
		DurationHalfHours: d.DurationHalfHours,
		ESMultiplier:      d.ESMultiplier,
		IncludeERV:        d.IncludeERV,
		FirstFiling:       d.FirstFiling,
	}
}
