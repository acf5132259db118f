package rester

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"reflect"
	"strings"

	"github.com/rendau/rester/adapters/client/httpc"
	"github.com/rendau/rester/resterErrs"
)

// buildBody encodes payload for ct. It returns the body and the content-type
// header value, both empty when there is nothing to send.
func buildBody(ct ContentType, payload Payload, rawBody []byte) ([]byte, string, error) {
	switch ct {
	case ContentTypeJson:
		if len(payload) == 0 {
			return nil, "", nil
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, "", resterErrs.NewApiErr(resterErrs.BadJson, err.Error())
		}
		return body, httpc.MimeJson, nil
	case ContentTypeFormParams:
		if len(payload) == 0 {
			return nil, "", nil
		}
		return []byte(formValues(payload).Encode()), httpc.MimeForm, nil
	case ContentTypeMultipart:
		if len(payload) == 0 {
			return nil, "", nil
		}
		return encodeMultipart(BuildMultipartParts(payload))
	case ContentTypeRawBody:
		if rawBody != nil {
			return rawBody, "", nil
		}
		if len(payload) == 0 {
			return nil, "", nil
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, "", resterErrs.NewApiErr(resterErrs.BadJson, err.Error())
		}
		return body, "", nil
	default:
		return nil, "", resterErrs.NewApiErr(resterErrs.BadContentType, "Unknown content type "+string(ct))
	}
}

// BuildMultipartParts turns every payload entry into a part, keeping order.
// PartSt values are passed through, an empty part name defaults to the key.
func BuildMultipartParts(payload Payload) []PartSt {
	res := make([]PartSt, 0, len(payload))

	for _, f := range payload {
		switch v := f.Value.(type) {
		case PartSt:
			if v.Name == "" {
				v.Name = f.Name
			}
			res = append(res, v)
		case *PartSt:
			part := *v
			if part.Name == "" {
				part.Name = f.Name
			}
			res = append(res, part)
		default:
			res = append(res, PartSt{Name: f.Name, Contents: f.Value})
		}
	}

	return res
}

func encodeMultipart(parts []PartSt) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, part := range parts {
		h := textproto.MIMEHeader{}

		disposition := `form-data; name="` + escapeQuotes(part.Name) + `"`
		if part.Filename != "" {
			disposition += `; filename="` + escapeQuotes(part.Filename) + `"`
			h.Set(httpc.HeaderContentType, "application/octet-stream")
		}
		h.Set("Content-Disposition", disposition)

		for k, v := range part.Headers {
			h.Set(k, v)
		}

		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}

		if err = writeContents(pw, part.Contents); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeContents(w io.Writer, contents any) error {
	var err error

	switch v := contents.(type) {
	case nil:
	case string:
		_, err = io.WriteString(w, v)
	case []byte:
		_, err = w.Write(v)
	case io.Reader:
		_, err = io.Copy(w, v)
	case func() io.Reader:
		if r := v(); r != nil {
			_, err = io.Copy(w, r)
		}
	default:
		_, err = io.WriteString(w, fmt.Sprint(v))
	}

	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func formValues(payload Payload) url.Values {
	res := url.Values{}

	for _, f := range payload {
		rv := reflect.ValueOf(f.Value)

		switch {
		case f.Value == nil:
			res.Add(f.Name, "")
		case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8,
			rv.Kind() == reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				res.Add(f.Name, fmt.Sprint(rv.Index(i).Interface()))
			}
		default:
			if b, ok := f.Value.([]byte); ok {
				res.Add(f.Name, string(b))
			} else {
				res.Add(f.Name, fmt.Sprint(f.Value))
			}
		}
	}

	return res
}
