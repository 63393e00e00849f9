package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ProjectAPI = (*Client)(nil)

// addressPayload is the wire format for a property address.
type addressPayload struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country,omitempty"`
}

// budgetPayload is the wire format for a budget range.
type budgetPayload struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// requirementsPayload is the wire format for project requirements.
type requirementsPayload struct {
	Description         string         `json:"description"`
	Dimensions          string         `json:"dimensions,omitempty"`
	Materials           []string       `json:"materials,omitempty"`
	Timeline            string         `json:"timeline,omitempty"`
	Budget              *budgetPayload `json:"budget,omitempty"`
	SpecialRequirements []string       `json:"specialRequirements,omitempty"`
}

// assessmentPayload is the wire format for a property assessment.
type assessmentPayload struct {
	PropertyAge string `json:"propertyAge,omitempty"`
	Condition   string `json:"condition,omitempty"`
	AccessNotes string `json:"accessNotes,omitempty"`
}

// createProjectRequest is the POST /projects payload.
type createProjectRequest struct {
	PropertyAddress    addressPayload      `json:"propertyAddress"`
	ProjectType        string              `json:"projectType"`
	Requirements       requirementsPayload `json:"requirements"`
	PropertyAssessment *assessmentPayload  `json:"propertyAssessment,omitempty"`
}

// projectResponse is the wire format of a project.
type projectResponse struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	PropertyAddress addressPayload      `json:"propertyAddress"`
	ProjectType     string              `json:"projectType"`
	Requirements    requirementsPayload `json:"requirements"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// CreateProject creates a project from a completed intake.
func (c *Client) CreateProject(ctx context.Context, req driven.ProjectCreation) (*domain.Project, error) {
	payload := createProjectRequest{
		PropertyAddress: toAddressPayload(req.PropertyAddress),
		ProjectType:     req.ProjectType,
		Requirements:    toRequirementsPayload(req.Requirements),
	}
	if req.Assessment != nil {
		payload.PropertyAssessment = &assessmentPayload{
			PropertyAge: req.Assessment.PropertyAge,
			Condition:   req.Assessment.Condition,
			AccessNotes: req.Assessment.AccessNotes,
		}
	}

	var resp projectResponse
	if err := c.do(ctx, http.MethodPost, "/projects", payload, &resp); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return resp.toDomain(), nil
}

func toAddressPayload(a domain.PropertyAddress) addressPayload {
	return addressPayload{
		Line1:    a.Line1,
		Line2:    a.Line2,
		City:     a.City,
		Postcode: a.Postcode,
		Country:  a.Country,
	}
}

func toRequirementsPayload(r domain.ProjectRequirements) requirementsPayload {
	payload := requirementsPayload{
		Description:         r.Description,
		Dimensions:          r.Dimensions,
		Materials:           r.Materials,
		Timeline:            r.Timeline,
		SpecialRequirements: r.SpecialRequirements,
	}
	if r.Budget != nil {
		payload.Budget = &budgetPayload{Min: r.Budget.Min, Max: r.Budget.Max}
	}
	return payload
}

func (p *projectResponse) toDomain() *domain.Project {
	project := &domain.Project{
		ID:     p.ID,
		Status: p.Status,
		PropertyAddress: domain.PropertyAddress{
			Line1:    p.PropertyAddress.Line1,
			Line2:    p.PropertyAddress.Line2,
			City:     p.PropertyAddress.City,
			Postcode: p.PropertyAddress.Postcode,
			Country:  p.PropertyAddress.Country,
		},
		ProjectType: p.ProjectType,
		Requirements: domain.ProjectRequirements{
			Description:         p.Requirements.Description,
			Dimensions:          p.Requirements.Dimensions,
			Materials:           p.Requirements.Materials,
			Timeline:            p.Requirements.Timeline,
			SpecialRequirements: p.Requirements.SpecialRequirements,
		},
		CreatedAt: p.CreatedAt,
	}
	if p.Requirements.Budget != nil {
		project.Requirements.Budget = &domain.BudgetRange{
			Min: p.Requirements.Budget.Min,
			Max: p.Requirements.Budget.Max,
		}
	}
	return project
}
