package resterErrs

import (
	"net/http"
	"strconv"
)

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ApiErr is returned by a model when a request can not be dispatched at all.
// HTTP-level failures are never reported through it.

type ApiErr struct {
	Err        Err
	Message    string
	StatusCode int
	Body       []byte
}

func NewApiErr(err Err, msg string) *ApiErr {
	return &ApiErr{
		Err:        err,
		Message:    msg,
		StatusCode: http.StatusInternalServerError,
	}
}

func (e *ApiErr) Error() string {
	res := e.Err.Error()
	if e.Message != "" {
		res += ": " + e.Message
	}
	return res + " (status " + strconv.Itoa(e.HttpStatusCode()) + ")"
}

func (e *ApiErr) Unwrap() error {
	return e.Err
}

func (e *ApiErr) HttpStatusCode() int {
	if e.StatusCode == 0 {
		return http.StatusInternalServerError
	}
	return e.StatusCode
}

func (e *ApiErr) ResponseBody() []byte {
	return e.Body
}

// ErrWithDesc

type ErrWithDesc struct {
	Err  Err
	Desc string
}

func (e ErrWithDesc) Error() string {
	return e.Err.Error() + ", desc:" + e.Desc
}

func (e ErrWithDesc) Unwrap() error {
	return e.Err
}

// errors

const (
	EndpointNotSet = Err("endpoint_not_set")
	BadMethod      = Err("bad_method")
	BadContentType = Err("bad_content_type")
	BadJson        = Err("bad_json")
	BadIdentifier  = Err("bad_identifier")
	BadJwt         = Err("bad_jwt")
)
