package config

// ConfigurationError represents a failure to resolve configuration or
// credentials: a missing secret, a missing config section, an unsupported
// embedding provider, an unknown LLM provider, or a missing model name.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message == "" {
		return "configuration error"
	}
	return e.Message
}

// Is implements errors.Is support for ConfigurationError.
// This allows errors.Is(err, &ConfigurationError{}) to work with wrapped errors.
func (e *ConfigurationError) Is(target error) bool {
	_, ok := target.(*ConfigurationError)
	return ok
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}
