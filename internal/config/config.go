package config

import (
	"github.com/andyrewlee/mkbranch/internal/validation"
)

// Choice is one entry of an enumerated prompt.
type Choice struct {
	Value       string `yaml:"value" mapstructure:"value"`
	Description string `yaml:"description,omitempty" mapstructure:"description"`
}

// Config holds the choice sets and the branch-naming rules. Every prompt
// the wizard shows is driven by these fields.
type Config struct {
	Prefixes     []Choice `yaml:"prefixes" mapstructure:"prefixes"`
	Usernames    []Choice `yaml:"usernames" mapstructure:"usernames"`
	Environments []Choice `yaml:"environments" mapstructure:"environments"`
	// EnvironmentPrefixes pick their detail from Environments instead of free text.
	EnvironmentPrefixes []string `yaml:"environment_prefixes" mapstructure:"environment_prefixes"`
	Separators          []Choice `yaml:"separators" mapstructure:"separators"`

	HashLength  int    `yaml:"hash_length" mapstructure:"hash_length"`
	Checkout    bool   `yaml:"checkout" mapstructure:"checkout"`
	ManualLabel string `yaml:"manual_label" mapstructure:"manual_label"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`

	// Sources lists the files merged over the defaults, in order.
	Sources []string `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns the built-in choice sets.
func DefaultConfig() *Config {
	return &Config{
		Prefixes: []Choice{
			{Value: "dev", Description: "development"},
			{Value: "feature", Description: "feature work"},
			{Value: "release", Description: "integration testing"},
			{Value: "hotfix", Description: "bug fix"},
			{Value: "refactor", Description: "restructuring"},
		},
		Usernames: []Choice{
			{Value: "my"}, {Value: "wy"}, {Value: "xxl"},
			{Value: "qxq"}, {Value: "zl"}, {Value: "cyl"},
		},
		Environments: []Choice{
			{Value: "master"},
			{Value: "ent_sbux"},
			{Value: "ent_yum"},
			{Value: "ent_sgp"},
			{Value: "ent_shangqi"},
			{Value: "saas_chanel"},
		},
		EnvironmentPrefixes: []string{"release"},
		Separators: []Choice{
			{Value: "/", Description: "slash"},
			{Value: "_", Description: "underscore"},
		},
		HashLength:  8,
		Checkout:    true,
		ManualLabel: "Enter manually",
		LogLevel:    "info",
	}
}

// DetailChoices returns the enumerated details for prefix, or nil when the
// detail is free text.
func (c *Config) DetailChoices(prefix string) []Choice {
	for _, p := range c.EnvironmentPrefixes {
		if p == prefix {
			return c.Environments
		}
	}
	return nil
}

// Validate rejects configurations the wizard cannot prompt with.
func (c *Config) Validate() error {
	lists := []struct {
		field   string
		choices []Choice
	}{
		{"prefixes", c.Prefixes},
		{"usernames", c.Usernames},
		{"separators", c.Separators},
	}
	for _, l := range lists {
		if len(l.choices) == 0 {
			return &validation.ValidationError{Field: l.field, Message: "at least one choice is required"}
		}
		for _, ch := range l.choices {
			if err := validation.ValidateField(l.field, ch.Value); err != nil {
				return err
			}
		}
	}
	if len(c.EnvironmentPrefixes) > 0 && len(c.Environments) == 0 {
		return &validation.ValidationError{Field: "environments", Message: "required when environment_prefixes is set"}
	}
	for _, sep := range c.Separators {
		if err := validation.ValidateSeparator(sep.Value); err != nil {
			return err
		}
	}
	return validation.ValidateHashLength(c.HashLength)
}
