// FILE: lixenwraith/ini/register.go
package ini

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SetSection writes the exported fields of a struct (or struct pointer) into
// the named section, using the same key names Scan reads. Nil pointer and
// slice fields are skipped. The section is created if needed and the
// configuration is marked dirty. Nothing is written when any field cannot be
// encoded or would not read back unchanged.
func (c *Config) SetSection(name string, source any) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: section name cannot be empty", ErrAddressFormat)
	}

	v := reflect.ValueOf(source)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("%w: SetSection requires a non-nil struct pointer or value", ErrInvalidTarget)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: SetSection requires a struct or struct pointer, got %T", ErrInvalidTarget, source)
	}

	if err := c.parser.checkSection(name); err != nil {
		return err
	}

	staged, err := encodeFields(v)
	if err != nil {
		return fmt.Errorf("section %q: %w", name, err)
	}
	for _, kv := range staged {
		if err := c.parser.checkEntry(name, kv[0], kv[1]); err != nil {
			return err
		}
	}

	s := c.doc.Ensure(name)
	for _, kv := range staged {
		s.Set(kv[0], kv[1])
	}
	c.dirty = true
	return nil
}

// encodeFields renders each exported field as a key/value pair in field order.
func encodeFields(v reflect.Value) ([][2]string, error) {
	t := v.Type()
	var pairs [][2]string
	var errors []string

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key := fieldKey(field)
		if key == "-" {
			continue
		}

		fieldValue := v.Field(i)
		switch fieldValue.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			if fieldValue.IsNil() {
				continue
			}
		}

		str, err := formatValue(fieldValue)
		if err != nil {
			errors = append(errors, fmt.Sprintf("field %s (key %s): %v", field.Name, key, err))
			continue
		}
		pairs = append(pairs, [2]string{key, str})
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("failed to encode %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return pairs, nil
}

// formatValue renders a field in the form decodeValue reads back.
func formatValue(v reflect.Value) (string, error) {
	switch val := v.Interface().(type) {
	case time.Time:
		return val.Format(time.RFC3339), nil
	case *time.Time:
		return val.Format(time.RFC3339), nil
	case net.IPNet:
		return (&val).String(), nil
	case url.URL:
		return (&val).String(), nil
	case fmt.Stringer:
		return val.String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	case reflect.Ptr:
		return formatValue(v.Elem())
	default:
		return "", fmt.Errorf("unsupported type %s", v.Type())
	}
}
