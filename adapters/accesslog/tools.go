package accesslog

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sort"

	"github.com/rendau/rester/resterErrs"
)

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type multiSt []Strategy

// Multi writes every record to all strategies, errors are joined.
func Multi(strategies ...Strategy) Strategy {
	res := make(multiSt, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			res = append(res, s)
		}
	}
	return res
}

func (m multiSt) Log(ctx context.Context, rec Record) error {
	var errs []error

	for _, s := range m {
		if err := s.Log(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SortedKeys returns the record keys in ascending order.
func (r Record) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copy returns a shallow copy of the record.
func (r Record) Copy() Record {
	res := make(Record, len(r))
	for k, v := range r {
		res[k] = v
	}
	return res
}

// ValidateIdentifier guards table and column names built into SQL text.
func ValidateIdentifier(v string) error {
	if !identifierRegexp.MatchString(v) {
		return resterErrs.ErrWithDesc{Err: resterErrs.BadIdentifier, Desc: v}
	}
	return nil
}

// ScalarValue keeps values a SQL driver can bind and JSON-encodes the rest.
func ScalarValue(v any) (any, error) {
	switch x := v.(type) {
	case nil, string, []byte, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x, nil
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, resterErrs.ErrWithDesc{Err: resterErrs.BadJson, Desc: err.Error()}
		}
		return string(raw), nil
	}
}
