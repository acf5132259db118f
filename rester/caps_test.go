package rester

import (
	"context"
	"net/http"
	"testing"

	"github.com/rendau/rester/adapters/accesslog"
)

type fullDef struct{}

func (fullDef) FinalEndpoint() string                             { return "final" }
func (fullDef) BaseUrl() string                                   { return "base" }
func (fullDef) ApiRoute() string                                  { return "route" }
func (fullDef) DefaultRequestHeaders() map[string]string          { return map[string]string{"A": "1"} }
func (fullDef) DefaultPayload() Payload                           { return Payload{{"a", 1}} }
func (fullDef) InterceptResponseContent(c string) string          { return c }
func (fullDef) InterceptPayload(p Payload) Payload                { return p }
func (fullDef) InterceptResponseHeader(h http.Header) http.Header { return h }
func (fullDef) InterceptAccessLog() accesslog.Record              { return nil }
func (fullDef) InterceptRequestHeader(h map[string]string) map[string]string {
	return h
}
func (fullDef) LogStrategy() accesslog.Strategy {
	return accesslog.StrategyFunc(func(context.Context, accesslog.Record) error { return nil })
}

func TestDetectCaps(t *testing.T) {
	if h := detectCaps(nil); h.FinalEndpoint != nil || h.DefaultPayload != nil {
		t.Errorf("detectCaps(nil) found capabilities")
	}

	if h := detectCaps(struct{}{}); h.BaseUrl != nil || h.InterceptAccessLog != nil {
		t.Errorf("detectCaps(struct{}{}) found capabilities")
	}

	h := detectCaps(fullDef{})

	checks := map[string]bool{
		"FinalEndpoint":            h.FinalEndpoint != nil,
		"BaseUrl":                  h.BaseUrl != nil,
		"ApiRoute":                 h.ApiRoute != nil,
		"DefaultRequestHeaders":    h.DefaultRequestHeaders != nil,
		"DefaultPayload":           h.DefaultPayload != nil,
		"LogStrategy":              h.LogStrategy != nil,
		"InterceptRequestHeader":   h.InterceptRequestHeader != nil,
		"InterceptPayload":         h.InterceptPayload != nil,
		"InterceptResponseContent": h.InterceptResponseContent != nil,
		"InterceptResponseHeader":  h.InterceptResponseHeader != nil,
		"InterceptAccessLog":       h.InterceptAccessLog != nil,
	}
	for name, ok := range checks {
		if !ok {
			t.Errorf("detectCaps() missed %s", name)
		}
	}

	if got := h.FinalEndpoint(); got != "final" {
		t.Errorf("FinalEndpoint() = %q, want final", got)
	}
}

func TestHooksGetMergedWith(t *testing.T) {
	h := detectCaps(fullDef{})

	if got := h.GetMergedWith(nil); got.BaseUrl() != "base" {
		t.Errorf("GetMergedWith(nil) changed BaseUrl")
	}

	got := h.GetMergedWith(&HooksSt{
		BaseUrl: func() string { return "other" },
	})

	if v := got.BaseUrl(); v != "other" {
		t.Errorf("BaseUrl() = %q, want other", v)
	}
	if v := got.ApiRoute(); v != "route" {
		t.Errorf("ApiRoute() = %q, want route", v)
	}
	if v := got.FinalEndpoint(); v != "final" {
		t.Errorf("FinalEndpoint() = %q, want final", v)
	}
}
