package cloudlog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultResourceType is used when no resource type is configured. It is the
// backend's catch-all monitored-resource type.
const DefaultResourceType = "global"

// Config describes one logger: the log stream it writes to, the resource it
// reports as, and the default labels attached to every entry. A Config is
// copied into the Logger at construction and never mutated afterwards;
// per-call labels are merged into a fresh map, not into Labels.
type Config struct {
	// Name is the log stream name on the backend.
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	// ProjectID selects the backend project. Empty means the ambient
	// default credentials/project.
	ProjectID string `yaml:"project_id" mapstructure:"project_id"`
	// ResourceType and ResourceLabels form the monitored-resource
	// descriptor stamped on every entry.
	ResourceType   string            `yaml:"resource_type" mapstructure:"resource_type"`
	ResourceLabels map[string]string `yaml:"resource_labels" mapstructure:"resource_labels"`
	// Labels are default key/value pairs attached to every entry unless
	// overridden per call.
	Labels map[string]string `yaml:"labels" mapstructure:"labels"`
	// Echo mirrors each entry to standard output before dispatch.
	Echo bool `yaml:"echo" mapstructure:"echo"`
}

// ApplyDefaults fills missing fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "default"
	}
	if c.ResourceType == "" {
		c.ResourceType = DefaultResourceType
	}
}

var validate = validator.New()

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("cloudlog config: field %s failed %q validation", errs[0].Field(), errs[0].Tag())
		}
		return fmt.Errorf("cloudlog config: %w", err)
	}
	return nil
}
