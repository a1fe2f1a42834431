package handlers

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"kostennote/engine/models"
)

// MatterRequest is the wire form of a matter. Services are decoded once the
// mode is known because every domain has its own service shape.
type MatterRequest struct {
	Context  models.CaseContext `json:"context"`
	Services []json.RawMessage  `json:"services"`
}

// serviceHeader detects fields whose absence carries a default
type serviceHeader struct {
	ID           string `json:"id"`
	ESMultiplier *int   `json:"esMultiplier"`
}

// defaultESMultiplier applies when a stored service predates the field
const defaultESMultiplier = 1

// toMatter decodes the services of a request for its mode. Unknown fields
// are ignored, a missing esMultiplier becomes 1 and a missing id a fresh
// UUID.
func (req MatterRequest) toMatter() (models.Matter, error) {
	m := models.Matter{
		Context:  req.Context,
		Services: make([]models.Service, 0, len(req.Services)),
	}
	if !req.Context.Mode.Valid() {
		return m, fmt.Errorf("unknown mode %q", req.Context.Mode)
	}
	for i, raw := range req.Services {
		svc, err := decodeService(req.Context.Mode, raw)
		if err != nil {
			return m, fmt.Errorf("service %d: %w", i, err)
		}
		m.Services = append(m.Services, svc)
	}
	return m, nil
}

func decodeService(domain models.Domain, raw json.RawMessage) (models.Service, error) {
	var header serviceHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, err
	}

	switch domain {
	case models.DomainCivil:
		var s models.CivilService
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		applyDefaults(header, &s.ID, &s.ESMultiplier)
		return s, nil
	case models.DomainCriminal:
		var s models.CriminalService
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		applyDefaults(header, &s.ID, &s.ESMultiplier)
		return s, nil
	case models.DomainDetention:
		var s models.DetentionService
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		applyDefaults(header, &s.ID, &s.ESMultiplier)
		return s, nil
	case models.DomainAdminPenal:
		var s models.AdminPenalService
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		applyDefaults(header, &s.ID, &s.ESMultiplier)
		return s, nil
	}
	return nil, fmt.Errorf("unknown mode %q", domain)
}

func applyDefaults(header serviceHeader, id *string, multiplier *int) {
	if header.ID == "" {
		*id = uuid.NewString()
	}
	if header.ESMultiplier == nil {
		*multiplier = defaultESMultiplier
	}
}
