package dynamostore

// Config holds configuration for the Store.
type Config struct {
	// TableName is the DynamoDB table holding parameters.
	// Default: "paramconf_parameters"
	TableName string

	// KeyAttr is the partition key attribute holding the parameter key.
	// Default: "name"
	KeyAttr string

	// ValueAttr is the string attribute holding the parameter value.
	// Default: "value"
	ValueAttr string
}

// DefaultConfig returns the default table layout.
func DefaultConfig() Config {
	return Config{
		TableName: "paramconf_parameters",
		KeyAttr:   "name",
		ValueAttr: "value",
	}
}

// validate fills in defaults for empty fields.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = "paramconf_parameters"
	}
	if c.KeyAttr == "" {
		c.KeyAttr = "name"
	}
	if c.ValueAttr == "" {
		c.ValueAttr = "value"
	}
}
