// FILE: lixenwraith/ini/decode.go
package ini

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/multierr"
)

// TagName overrides the key a struct field binds to; "-" skips the field.
const TagName = "ini"

var validate = validator.New()

// Bind decodes the named section into a new value of type T.
// T must be a struct type.
func Bind[T any](c *Config, section string) (T, error) {
	var out T
	if err := c.Scan(section, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Scan decodes the named section into target, which must be a non-nil pointer
// to a struct. Each exported field binds to the key with exactly the same name
// (or its `ini` tag). Fields without a matching key keep their current value.
// Fields carrying `validate` tags are checked after decoding.
//
// A missing section fails with a BindingError wrapping ErrSectionNotFound.
// Every field that cannot be converted yields its own BindingError; they are
// returned together. On any error target is left unchanged.
func (c *Config) Scan(section string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: must be a non-nil pointer to a struct, got %T", ErrInvalidTarget, target)
	}
	structType := rv.Elem().Type()

	s, ok := c.doc.Section(section)
	if !ok {
		return &BindingError{Section: section, Type: structType.String(), Err: ErrSectionNotFound}
	}

	// Decode into a copy so a failure leaves target untouched
	staged := reflect.New(structType)
	staged.Elem().Set(rv.Elem())

	var errs error
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		key := fieldKey(field)
		if key == "-" {
			continue
		}
		value, ok := s.Get(key)
		if !ok {
			continue
		}

		// The staged copy shares pointers with target, so decode into a fresh value
		fresh := reflect.New(field.Type)
		if err := decodeValue(value, fresh.Interface()); err != nil {
			errs = multierr.Append(errs, &BindingError{
				Section: section,
				Key:     key,
				Type:    field.Type.String(),
				Value:   value,
				Err:     err,
			})
			continue
		}
		staged.Elem().Field(i).Set(fresh.Elem())
	}
	if errs != nil {
		return errs
	}

	if err := validate.Struct(staged.Interface()); err != nil {
		return validationBindingErrors(section, err)
	}

	rv.Elem().Set(staged.Elem())
	return nil
}

// fieldKey returns the section key a struct field binds to.
func fieldKey(field reflect.StructField) string {
	tag := field.Tag.Get(TagName)
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// decodeValue converts one raw string into the value out points to.
func decodeValue(value string, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	return decoder.Decode(value)
}

// validationBindingErrors maps validator failures onto per-field BindingErrors.
func validationBindingErrors(section string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &BindingError{Section: section, Err: fmt.Errorf("%w: %w", ErrValidation, err)}
	}

	var errs error
	for _, fe := range verrs {
		errs = multierr.Append(errs, &BindingError{
			Section: section,
			Key:     fe.StructField(),
			Type:    fe.Type().String(),
			Value:   fmt.Sprint(fe.Value()),
			Err:     fmt.Errorf("%w: failed on the '%s' tag", ErrValidation, fe.Tag()),
		})
	}
	return errs
}

// getDecodeHook returns the composite decode hook for string conversions
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToNetIPHookFunc(),
		stringToNetIPNetHookFunc(),
		stringToURLHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		stringToDecimalHookFunc(),
	)
}

// stringToDecimalHookFunc parses integer kinds in base 10, so zero-padded
// values such as "030" are not read as octal
func stringToDecimalHookFunc() mapstructure.DecodeHookFunc {
	durationType := reflect.TypeOf(time.Duration(0))
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t == durationType {
			return data, nil
		}

		str := strings.TrimSpace(reflect.ValueOf(data).String())
		if str == "" {
			return data, nil
		}

		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(str, 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(str, 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		default:
			return data, nil
		}
	}
}

// stringToNetIPHookFunc handles net.IP conversion
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(net.IP{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 45 { // Max IPv6 length
			return nil, fmt.Errorf("invalid IP length: %d", len(str))
		}
		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}
		return ip, nil
	}
}

// stringToNetIPNetHookFunc handles net.IPNet conversion
func stringToNetIPNetHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(net.IPNet{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 49 { // Max IPv6 CIDR length
			return nil, fmt.Errorf("invalid CIDR length: %d", len(str))
		}
		_, ipnet, err := net.ParseCIDR(str)
		if err != nil {
			return nil, fmt.Errorf("invalid CIDR: %w", err)
		}
		if isPtr {
			return ipnet, nil
		}
		return *ipnet, nil
	}
}

// stringToURLHookFunc handles url.URL conversion
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 2048 {
			return nil, fmt.Errorf("URL too long: %d bytes", len(str))
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}
