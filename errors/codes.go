package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Setup errors
const (
	// ErrCodeConfiguration indicates a missing or invalid endpoint configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeValidation indicates a configuration value failed validation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Entity errors
const (
	// ErrCodeEntity indicates invalid entity input or an invalid entity declaration.
	ErrCodeEntity ErrorCode = "ENTITY_ERROR"
	// ErrCodeUndeclared indicates access to an attribute the schema never declared.
	ErrCodeUndeclared ErrorCode = "UNDECLARED_ATTRIBUTE"
)

var entityCodes = map[ErrorCode]bool{
	ErrCodeEntity:     true,
	ErrCodeUndeclared: true,
}

var configurationCodes = map[ErrorCode]bool{
	ErrCodeConfiguration: true,
	ErrCodeValidation:    true,
}
