package rester

import (
	"bytes"
	"encoding/json"
	"sort"
)

type Field struct {
	Name  string
	Value any
}

// Payload is an ordered mapping. Order is kept on the wire for json and
// multipart bodies.
type Payload []Field

func PayloadFromMap(m map[string]any) Payload {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make(Payload, 0, len(keys))
	for _, k := range keys {
		res = append(res, Field{Name: k, Value: m[k]})
	}

	return res
}

func (p Payload) Get(name string) (any, bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set returns a copy with name replaced in place, or appended when absent.
func (p Payload) Set(name string, v any) Payload {
	res := p.Clone()

	for i := range res {
		if res[i].Name == name {
			res[i].Value = v
			return res
		}
	}

	return append(res, Field{Name: name, Value: v})
}

// Merge returns the flat union of p and over. Values of over win, keys keep
// the position of their first appearance.
func (p Payload) Merge(over Payload) Payload {
	res := make(Payload, 0, len(p)+len(over))
	idx := make(map[string]int, len(p)+len(over))

	for _, src := range []Payload{p, over} {
		for _, f := range src {
			if i, ok := idx[f.Name]; ok {
				res[i].Value = f.Value
				continue
			}
			idx[f.Name] = len(res)
			res = append(res, f)
		}
	}

	return res
}

func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}

	res := make(Payload, len(p))
	copy(res, p)

	return res
}

func (p Payload) Map() map[string]any {
	res := make(map[string]any, len(p))
	for _, f := range p {
		if _, ok := res[f.Name]; !ok {
			res[f.Name] = f.Value
		}
	}
	return res
}

func (p Payload) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')

	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
