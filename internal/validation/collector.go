package validation

import "github.com/dimasmith/printtables/internal/model"

// Collector accumulates validation failures while a request is parsed
// so every invalid field is reported at once.
//
// A Collector is not safe for concurrent use.
type Collector struct {
	errs model.ValidationErrors
}

func NewCollector() *Collector { return &Collector{} }

// Parse runs parse on raw. On failure the error is recorded and the zero
// value of T is returned; the caller keeps going and checks HasErrors at the end.
func Parse[T any](c *Collector, raw string, parse func(string) (T, error)) T {
	v, err := parse(raw)
	if err != nil {
		c.Add(err)
		var zero T
		return zero
	}
	return v
}

// Add records err. Errors other than *model.ValidationError are kept
// under the attribute "request".
func (c *Collector) Add(err error) {
	switch e := err.(type) {
	case nil:
		return
	case *model.ValidationError:
		c.errs = append(c.errs, *e)
	case model.ValidationErrors:
		c.errs = append(c.errs, e...)
	default:
		c.errs = append(c.errs, model.ValidationError{
			Attribute: "request",
			Code:      "request.invalid",
			Message:   err.Error(),
		})
	}
}

func (c *Collector) AddError(attribute, code, message string) {
	c.errs = append(c.errs, model.ValidationError{
		Attribute: attribute,
		Code:      code,
		Message:   message,
	})
}

func (c *Collector) HasErrors() bool { return len(c.errs) > 0 }

// Errors returns the collected failures in the order they were found
// and resets the collector.
func (c *Collector) Errors() model.ValidationErrors {
	errs := c.errs
	c.errs = nil
	return errs
}
