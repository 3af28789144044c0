package codegen

import "errors"

var (
	// Input validation errors
	ErrInvalidName      = errors.New("model name must be PascalCase (non-empty, uppercase first letter, letters and digits only)")
	ErrUnknownExtension = errors.New("unknown extensions value")
)
