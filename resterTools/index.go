package resterTools

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

func NewPtr[T any](v T) *T {
	return &v
}

// CopyMap returns a shallow copy, nil stays nil.
func CopyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	res := make(map[K]V, len(m))
	for k, v := range m {
		res[k] = v
	}

	return res
}

// MergeMaps returns the flat union of ms, later maps win on key collision.
func MergeMaps[K comparable, V any](ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}

	res := make(map[K]V, size)
	for _, m := range ms {
		for k, v := range m {
			res[k] = v
		}
	}

	return res
}

// SetViperDefaultsFromObj registers every `mapstructure` tag of obj as a key,
// so that AutomaticEnv picks the values up on Unmarshal. Non-zero fields of
// obj become the defaults.
func SetViperDefaultsFromObj(v *viper.Viper, obj any) {
	rv := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(rv.Type())

	var fieldTag string
	var tagName string

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("mapstructure")
		if fieldTag == "" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]

		v.SetDefault(tagName, rv.FieldByIndex(field.Index).Interface())
	}
}
