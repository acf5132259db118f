package httpc

import (
	"net/http"
	"net/url"
	"time"
)

type OptionsSt struct {
	Client        *http.Client
	BaseHeaders   http.Header
	BaseLogPrefix string

	LogFlags      int
	LogPrefix     string
	Timeout       time.Duration
	RetryCount    int
	RetryInterval time.Duration
}

type RequestSt struct {
	Method  string
	Uri     string
	Params  url.Values
	Headers http.Header
	Body    []byte

	// per-request overrides of the client options
	Opts OptionsSt
}

type ResponseSt struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

func (o OptionsSt) GetMergedWith(v OptionsSt) OptionsSt {
	res := o

	if v.Client != nil {
		res.Client = v.Client
	}
	if v.BaseHeaders != nil {
		res.BaseHeaders = v.BaseHeaders
	}
	if v.BaseLogPrefix != "" {
		if v.BaseLogPrefix == "-" {
			res.BaseLogPrefix = ""
		} else {
			res.BaseLogPrefix = v.BaseLogPrefix
		}
	}
	if v.LogFlags != 0 {
		if v.LogFlags < 0 {
			res.LogFlags = 0
		} else {
			res.LogFlags = v.LogFlags
		}
	}
	if v.LogPrefix != "" {
		if v.LogPrefix == "-" {
			res.LogPrefix = ""
		} else {
			res.LogPrefix = v.LogPrefix
		}
	}
	if v.Timeout != 0 {
		if v.Timeout < 0 {
			res.Timeout = 0
		} else {
			res.Timeout = v.Timeout
		}
	}
	if v.RetryCount != 0 {
		if v.RetryCount < 0 {
			res.RetryCount = 0
		} else {
			res.RetryCount = v.RetryCount
		}
	}
	if v.RetryInterval != 0 {
		if v.RetryInterval < 0 {
			res.RetryInterval = 0
		} else {
			res.RetryInterval = v.RetryInterval
		}
	}

	return res
}
