// FILE: lixenwraith/ini/error.go
package ini

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the base of every structural parse failure.
	ErrParse = errors.New("ini parse error")
	// ErrMissingSectionHeader is returned when a key-value line precedes any section header.
	ErrMissingSectionHeader = fmt.Errorf("%w: missing section header", ErrParse)
	// ErrInvalidSectionHeader is returned for an empty or malformed section header.
	ErrInvalidSectionHeader = fmt.Errorf("%w: invalid section header format", ErrParse)
	// ErrInvalidKeyValuePair is returned for a line without '=' or with an empty key.
	ErrInvalidKeyValuePair = fmt.Errorf("%w: invalid key-value pair format", ErrParse)

	// ErrAddressFormat is returned when a composite address is not "Section:Key".
	ErrAddressFormat = errors.New("invalid address format")
	// ErrInvalidEntry is returned when a section, key or value would not read
	// back unchanged after being written, e.g. a key containing '='.
	ErrInvalidEntry = errors.New("entry cannot be written as INI")

	// ErrBinding is the base of section binding and value conversion failures.
	ErrBinding = errors.New("binding failed")
	// ErrSectionNotFound is wrapped by a BindingError when the requested section is absent.
	ErrSectionNotFound = errors.New("section not found")
	// ErrKeyNotFound is returned by the typed getters when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidTarget is returned when a bind target is not a non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("invalid bind target")
	// ErrValidation is wrapped by a BindingError when a bound field fails its validate tag.
	ErrValidation = errors.New("validation failed")

	// ErrStorage is the base of read/write failures against the backing location.
	ErrStorage = errors.New("storage failure")
	// ErrConfigNotFound is matched by a StorageError when the source file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)

// ParseError reports a structural violation in the INI source.
type ParseError struct {
	Line int    // 1-based, counting blank and comment lines
	Kind error  // one of ErrMissingSectionHeader, ErrInvalidSectionHeader, ErrInvalidKeyValuePair
	Text string // offending line, trimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Kind, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// AddressFormatError reports a composite address that does not split into
// exactly two non-empty segments.
type AddressFormatError struct {
	Address string
}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("%v: key must be in the format 'Section%cKey' and neither section nor key may be empty, got %q",
		ErrAddressFormat, KeySeparator, e.Address)
}

func (e *AddressFormatError) Unwrap() error { return ErrAddressFormat }

// BindingError reports a value that could not be converted into a target field.
// Key is empty when the failure concerns the section as a whole.
type BindingError struct {
	Section string
	Key     string
	Type    string
	Value   string
	Err     error
}

func (e *BindingError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%v: section %q into %s: %v", ErrBinding, e.Section, e.Type, e.Err)
	}
	return fmt.Sprintf("%v: failed to convert value %q in section %q for key %q of type %s: %v",
		ErrBinding, e.Value, e.Section, e.Key, e.Type, e.Err)
}

func (e *BindingError) Unwrap() error { return e.Err }

// Is makes every BindingError match ErrBinding.
func (e *BindingError) Is(target error) bool { return target == ErrBinding }

// StorageError reports an I/O failure against the backing location.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%v: %s '%s': %v", ErrStorage, e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes every StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }
