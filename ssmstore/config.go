package ssmstore

// Config holds configuration for an Adapter.
type Config struct {
	// Region overrides the ambient AWS region.
	// Default: "" (use AWS_REGION / shared config)
	Region string

	// Profile selects a shared config profile.
	// Default: "" (use AWS_PROFILE / default profile)
	Profile string

	// WithDecryption decrypts SecureString parameters.
	// Default: true
	WithDecryption bool
}

// DefaultConfig returns the configuration used by most callers.
func DefaultConfig() Config {
	return Config{
		WithDecryption: true,
	}
}
