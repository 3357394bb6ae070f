package converter

import (
	"github.com/samber/lo"

	apiv1 "github.com/dimasmith/printtables/internal/api/v1"
	"github.com/dimasmith/printtables/internal/model"
)

func PartToHTTP(p *model.Part) apiv1.PartResponse {
	return apiv1.PartResponse{
		ID:   p.ID.String(),
		Name: p.Name.String(),
	}
}

func ProjectViewToHTTP(v *model.ProjectView) apiv1.ProjectResponse {
	return apiv1.ProjectResponse{
		ID:   v.ID.String(),
		Name: v.Name,
		Parts: lo.Map(v.Parts, func(pp model.ProjectPartView, _ int) apiv1.ProjectPartResponse {
			return apiv1.ProjectPartResponse{
				PartID:   pp.PartID.String(),
				Name:     pp.Name,
				Quantity: pp.Quantity,
			}
		}),
	}
}

func ValidationErrorsToHTTP(errs model.ValidationErrors) apiv1.ValidationErrorsResponse {
	return apiv1.ValidationErrorsResponse{
		Errors: lo.Map(errs, func(e model.ValidationError, _ int) apiv1.ValidationErrorResponse {
			return apiv1.ValidationErrorResponse{
				Attribute: e.Attribute,
				Code:      e.Code,
				Message:   e.Message,
			}
		}),
	}
}
