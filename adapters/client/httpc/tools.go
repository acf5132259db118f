package httpc

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// Object2UrlValues builds query values from the `form` tags of a struct.
// Nil pointers are skipped, slices repeat the key.
func Object2UrlValues(obj any) url.Values {
	result := url.Values{}

	if obj == nil {
		return result
	}

	v := reflect.Indirect(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return result
	}

	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string
	var fValue reflect.Value
	var fType reflect.Type

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("form")
		if fieldTag == "" || fieldTag == "-" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]
		fValue = v.FieldByIndex(field.Index)
		fType = field.Type

		if fType.Kind() == reflect.Pointer {
			if fValue.IsNil() {
				continue
			}

			fValue = fValue.Elem()
			fType = fType.Elem()
		}

		switch fType.Kind() {
		case reflect.Slice, reflect.Array:
			strSlice := make([]string, fValue.Len())
			for i := 0; i < len(strSlice); i++ {
				strSlice[i] = fmt.Sprintf("%v", fValue.Index(i).Interface())
			}
			result[tagName] = strSlice
		default:
			result.Set(tagName, fmt.Sprintf("%v", fValue.Interface()))
		}
	}

	return result
}

// MergeHeaders copies srcs into dst in order, later sources replace earlier keys.
func MergeHeaders(dst http.Header, srcs ...http.Header) {
	for _, src := range srcs {
		for k, v := range src {
			dst[http.CanonicalHeaderKey(k)] = v
		}
	}
}

// MergeValues returns the union of vs, later values replace earlier keys.
func MergeValues(vs ...url.Values) url.Values {
	result := url.Values{}

	for _, v := range vs {
		for k, x := range v {
			result[k] = x
		}
	}

	return result
}
