package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ConfigModule interface {
	// Declare a config value. Declaring a key twice is a programmer error.
	Declare(opts ConfigDeclaration)
	// Same as `TryGet()`. Panics if it fails.
	Get(key string) string
	// Fails if the `key` was not declared or not initialized.
	TryGet(key string) (string, error)
	// Same as `TrySet()`. Panics if it fails.
	Set(key string, value string)
	// Fails if the key has not been declared or the validation rejects the value.
	TrySet(key string, value string) error
	// Load ENVs for declared configs.
	LoadEnvs() error
	// Export all configs in a format for .env files
	AsEnvs() string
	// Check all values are initialized and valid.
	Validate() error
}

type ConfigDeclaration struct {
	// (required) Key of the config value, also the primary ENV variable
	Key string
	// (optional) Initial value
	DefaultValue *string
	// (optional) Human readable description
	Description *string
	// (optional) Alternative ENV variables, looked up in order after Key
	Envs []string
	// (optional) Validation to check if user provided values are valid
	Validate func(value string) error
}

// OneOf builds a validation accepting exactly the given values.
func OneOf(values ...string) func(value string) error {
	tag := "oneof=" + strings.Join(values, " ")
	return func(value string) error {
		err := validate.Var(value, tag)
		if err != nil {
			return fmt.Errorf("'%s' needs to be one of %v", value, values)
		}
		return nil
	}
}

// Tag builds a validation from a go-playground/validator tag like "omitempty,dirpath".
func Tag(tag string) func(value string) error {
	return func(value string) error {
		err := validate.Var(value, tag)
		if err != nil {
			return fmt.Errorf("'%s' does not satisfy '%s': %w", value, tag, err)
		}
		return nil
	}
}
