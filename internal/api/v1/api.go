// Package apiv1 holds the wire types of the v1 REST API and of the events
// the service publishes.
package apiv1

type CreatePartRequest struct {
	Name string `json:"name"`
}

type CreatePartResponse struct {
	ID string `json:"id"`
}

type PartResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

type CreateProjectResponse struct {
	ID string `json:"id"`
}

type ProjectResponse struct {
	ID    string                `json:"id"`
	Name  string                `json:"name"`
	Parts []ProjectPartResponse `json:"parts"`
}

type ProjectPartResponse struct {
	PartID   string `json:"part_id"`
	Name     string `json:"name"`
	Quantity uint32 `json:"quantity"`
}

type SetBOMRequest struct {
	Parts []BOMItem `json:"parts"`
}

// BOMItem quantity is decoded as int64 so out-of-range values reach the
// validator instead of failing JSON decoding. Part is parsed by the handler
// so any uuid spelling uuid.Parse accepts is allowed.
type BOMItem struct {
	Part     string `json:"part" validate:"required"`
	Quantity *int64 `json:"quantity" validate:"required,min=0,max=4294967295"`
}

type ValidationErrorsResponse struct {
	Errors []ValidationErrorResponse `json:"errors"`
}

type ValidationErrorResponse struct {
	Attribute string `json:"attribute"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
