package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":         Trim,
		"lower":        ToLower,
		"upper":        ToUpper,
		"title":        ToTitle,
		"trim_lower":   TrimToLower,
		"kebab":        ToKebabCase,
		"snake":        ToSnakeCase,
		"single_line":  SingleLine,
		"no_spaces":    RemoveExtraWhitespace,
		"no_control":   RemoveControlChars,
		"alphanum":     KeepAlphanumeric,
		"digits":       KeepDigits,
		"slug":         ToSlug,
		"slug_symbols": ToSlugWithSymbols,

		"username": func(s string) string {
			return KeepAlphanumeric(ToLower(Trim(s)))
		},
		"text": func(s string) string {
			return RemoveExtraWhitespace(Trim(s))
		},
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct applies sanitization to struct fields based on their tags
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	return sanitizeStructRecursive(rv)
}

func sanitizeStructRecursive(rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("sanitize")

		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag == "" {
				continue
			}
			sanitized, err := applySanitizers(field.String(), tag)
			if err != nil {
				return fmt.Errorf("sanitizer: field %s: %w", structField.Name, err)
			}
			field.SetString(sanitized)

		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch elem.Kind() {
			case reflect.String:
				if tag == "" {
					continue
				}
				sanitized, err := applySanitizers(elem.String(), tag)
				if err != nil {
					return fmt.Errorf("sanitizer: field %s: %w", structField.Name, err)
				}
				elem.SetString(sanitized)
			case reflect.Struct:
				if err := sanitizeStructRecursive(elem); err != nil {
					return err
				}
			}

		case reflect.Struct:
			if err := sanitizeStructRecursive(field); err != nil {
				return err
			}

		case reflect.Slice:
			if tag == "" || field.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := 0; j < field.Len(); j++ {
				elem := field.Index(j)
				sanitized, err := applySanitizers(elem.String(), tag)
				if err != nil {
					return fmt.Errorf("sanitizer: field %s[%d]: %w", structField.Name, j, err)
				}
				elem.SetString(sanitized)
			}
		}
	}

	return nil
}

// applySanitizers runs the comma-separated sanitizers in tag. Two take a
// parameter after a colon: "max:100" limits runes and "slug:_" slugifies
// with the given separator.
func applySanitizers(value string, tag string) (string, error) {
	result := value

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if param, ok := strings.CutPrefix(name, "max:"); ok {
			maxLen, err := strconv.Atoi(param)
			if err != nil {
				return "", fmt.Errorf("invalid max length %q: %w", param, err)
			}
			if maxLen > 0 {
				result = MaxLength(result, maxLen)
			}
			continue
		}

		if sep, ok := strings.CutPrefix(name, "slug:"); ok {
			s, err := slug.Slugify(result, slug.Separator(sep))
			if err != nil {
				return "", err
			}
			result = s
			continue
		}

		if fn, ok := registry[name]; ok {
			result = fn(result)
		}
	}

	return result, nil
}
