package config

import (
	"errors"
	"fmt"
	"os"
	"simassert/src/assert"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type Config struct {
	entries     map[string]*entry
	entriesLock sync.RWMutex
}

type entry struct {
	value       *string
	declaration ConfigDeclaration
}

func NewConfig() *Config {
	return &Config{
		entries:     map[string]*entry{},
		entriesLock: sync.RWMutex{},
	}
}

func (c *Config) Declare(opts ConfigDeclaration) {
	assert.Assert(opts.Key != "", fmt.Errorf("'Key' in 'ConfigDeclaration' cant be '\"\"': %#v", opts))
	assert.Assert(!strings.ContainsAny(opts.Key, "\r\n="), fmt.Errorf("'Key' in 'ConfigDeclaration' may not contain newlines or '=': %#v", opts))
	if opts.Description != nil {
		assert.Assert(!strings.ContainsAny(*opts.Description, "\r\n"), fmt.Errorf("'Description' of '%s' may not contain newlines", opts.Key))
	}
	for _, env := range opts.Envs {
		assert.Assert(env != "" && !strings.ContainsAny(env, "\r\n="), fmt.Errorf("'Envs' of '%s' contain an invalid name: %q", opts.Key, env))
	}

	c.entriesLock.Lock()
	defer c.entriesLock.Unlock()

	_, ok := c.entries[opts.Key]
	assert.Assert(!ok, fmt.Errorf("a declaration with key '%s' already exists", opts.Key))

	c.entries[opts.Key] = &entry{
		value:       opts.DefaultValue,
		declaration: opts,
	}
}

// Same as TryGet. Panics if it fails.
func (c *Config) Get(key string) string {
	value, err := c.TryGet(key)
	if err != nil {
		panic(err)
	}
	return value
}

func (c *Config) TryGet(key string) (string, error) {
	c.entriesLock.RLock()
	defer c.entriesLock.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return "", fmt.Errorf("undeclared config value '%s' cant be accessed", key)
	}
	if e.value == nil {
		return "", fmt.Errorf("uninitialized config value '%s' cant be accessed", key)
	}
	return *e.value, nil
}

// Same as TrySet. Panics if it fails.
func (c *Config) Set(key string, value string) {
	err := c.TrySet(key, value)
	if err != nil {
		panic(err)
	}
}

func (c *Config) TrySet(key string, value string) error {
	c.entriesLock.Lock()
	defer c.entriesLock.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("key '%s' has to be declared before a value can be set", key)
	}
	err := e.check(value)
	if err != nil {
		return err
	}
	e.value = &value
	return nil
}

// LoadEnvs reads declared keys, then their aliases, from the environment. The first variable
// found wins. Values failing their validation are skipped and reported in the returned error.
func (c *Config) LoadEnvs() error {
	c.entriesLock.Lock()
	defer c.entriesLock.Unlock()

	errs := []error{}
	for _, key := range c.sortedKeys() {
		e := c.entries[key]
		for _, env := range append([]string{key}, e.declaration.Envs...) {
			value, ok := os.LookupEnv(env)
			if !ok {
				continue
			}
			err := e.check(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("env '%s': %w", env, err))
				break
			}
			e.value = &value
			break
		}
	}

	return errors.Join(errs...)
}

// Validate checks that every declared value is initialized and passes its validation.
func (c *Config) Validate() error {
	c.entriesLock.RLock()
	defer c.entriesLock.RUnlock()

	errs := []error{}
	for _, key := range c.sortedKeys() {
		e := c.entries[key]
		if e.value == nil {
			errs = append(errs, fmt.Errorf("value for key '%s' is not initialized", key))
			continue
		}
		err := e.check(*e.value)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// AsEnvs exports all declarations in .env format, sorted by key.
func (c *Config) AsEnvs() string {
	c.entriesLock.RLock()
	defer c.entriesLock.RUnlock()

	blocks := []string{}
	for _, key := range c.sortedKeys() {
		e := c.entries[key]
		lines := []string{"## Key: " + key}
		if e.declaration.Description != nil {
			lines = append(lines, "## Description: "+*e.declaration.Description)
		}
		if e.declaration.DefaultValue != nil {
			defaultValue := escapeEnvValue(*e.declaration.DefaultValue)
			if defaultValue == "" {
				defaultValue = `""`
			}
			lines = append(lines, "## Default: "+defaultValue)
		}
		lines = append(lines, "## Has Validation: "+strconv.FormatBool(e.declaration.Validate != nil))
		lines = append(lines, fmt.Sprintf("## Envs: %#v", append([]string{}, e.declaration.Envs...)))

		value := ""
		if e.value != nil {
			value = *e.value
		}
		lines = append(lines, key+"="+escapeEnvValue(value))
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func (c *Config) sortedKeys() []string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (e *entry) check(value string) error {
	if e.declaration.Validate == nil {
		return nil
	}
	err := e.declaration.Validate(value)
	if err != nil {
		return fmt.Errorf("validation for key '%s' failed: %w", e.declaration.Key, err)
	}
	return nil
}

func escapeEnvValue(value string) string {
	return strings.ReplaceAll(value, "\n", "\\n")
}
