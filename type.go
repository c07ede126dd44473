// File: lixenwraith/ini/type.go
package ini

import (
	"fmt"
	"strconv"
	"time"
)

// lookup resolves address to its raw string, failing when it is absent.
func (c *Config) lookup(address string) (section, key, value string, err error) {
	section, key, err = SplitAddress(address)
	if err != nil {
		return "", "", "", err
	}
	value, ok := c.doc.Get(section, key)
	if !ok {
		return "", "", "", fmt.Errorf("%w: %s", ErrKeyNotFound, address)
	}
	return section, key, value, nil
}

// String retrieves the value at address.
// Unlike Get, an absent key is an error.
func (c *Config) String(address string) (string, error) {
	_, _, value, err := c.lookup(address)
	return value, err
}

// Int64 retrieves the value at address as a base-10 int64.
// Leading zeros are decimal padding, not an octal prefix.
func (c *Config) Int64(address string) (int64, error) {
	section, key, value, err := c.lookup(address)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &BindingError{Section: section, Key: key, Type: "int64", Value: value, Err: err}
	}
	return i, nil
}

// Bool retrieves the value at address as a bool using strconv.ParseBool rules.
func (c *Config) Bool(address string) (bool, error) {
	section, key, value, err := c.lookup(address)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, &BindingError{Section: section, Key: key, Type: "bool", Value: value, Err: err}
	}
	return b, nil
}

// Float64 retrieves the value at address as a float64.
func (c *Config) Float64(address string) (float64, error) {
	section, key, value, err := c.lookup(address)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &BindingError{Section: section, Key: key, Type: "float64", Value: value, Err: err}
	}
	return f, nil
}

// Duration retrieves the value at address as a time.Duration ("30s", "1h5m").
func (c *Config) Duration(address string) (time.Duration, error) {
	section, key, value, err := c.lookup(address)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, &BindingError{Section: section, Key: key, Type: "time.Duration", Value: value, Err: err}
	}
	return d, nil
}
