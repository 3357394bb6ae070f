package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")  // 400
	ErrPartNotFound    = errors.New("part not found")    // 404
	ErrProjectNotFound = errors.New("project not found") // 404
	ErrGeneral         = errors.New("general error")     // 500
)
