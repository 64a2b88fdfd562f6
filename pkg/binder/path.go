package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Path creates a binder for chi URL parameters. Only string fields are
// supported; untagged fields use the lowercased field name.
func Path() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: %w", ErrFailedToParsePath, ErrInvalidTarget)
		}
		rv = rv.Elem()
		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}
			name, skip := pathParamName(rt.Field(i))
			if skip {
				continue
			}
			value := chi.URLParam(r, name)
			if value == "" {
				continue
			}
			if field.Kind() != reflect.String {
				return fmt.Errorf("%w: field %s: unsupported type %s", ErrFailedToParsePath, rt.Field(i).Name, field.Kind())
			}
			field.SetString(value)
		}
		return nil
	}
}

func pathParamName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("path")
	switch tag {
	case "":
		return strings.ToLower(f.Name), false
	case "-":
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}
