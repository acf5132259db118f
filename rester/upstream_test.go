package rester

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rendau/rester/adapters/client/httpc"
	"github.com/rendau/rester/adapters/client/httpc/httpclient"
	"github.com/rendau/rester/adapters/jwt"
	"github.com/rendau/rester/adapters/jwt/jwts"
	"github.com/rendau/rester/adapters/logger/zap"
)

type upstreamRepSt struct {
	Method      string            `json:"method"`
	ContentType string            `json:"content_type"`
	Auth        string            `json:"auth"`
	Body        string            `json:"body"`
	Form        map[string]string `json:"form"`
	Files       map[string]string `json:"files"`
}

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Any("/v1/echo", func(c *gin.Context) {
		rep := upstreamRepSt{
			Method:      c.Request.Method,
			ContentType: c.ContentType(),
			Auth:        c.GetHeader(jwt.HeaderAuthorization),
			Form:        map[string]string{},
			Files:       map[string]string{},
		}

		switch c.ContentType() {
		case httpc.MimeMultipart:
			form, err := c.MultipartForm()
			if err != nil {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			for k, v := range form.Value {
				rep.Form[k] = strings.Join(v, ",")
			}
			for k, v := range form.File {
				f, _ := v[0].Open()
				data, _ := io.ReadAll(f)
				_ = f.Close()
				rep.Files[k] = v[0].Filename + ":" + string(data)
			}
		case httpc.MimeForm:
			_ = c.Request.ParseForm()
			for k, v := range c.Request.PostForm {
				rep.Form[k] = strings.Join(v, ",")
			}
		default:
			body, _ := io.ReadAll(c.Request.Body)
			rep.Body = string(body)
		}

		c.JSON(http.StatusOK, rep)
	})
	r.GET("/v1/fail", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "bad_input"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

type echoDef struct {
	base string
}

func (d echoDef) BaseUrl() string { return d.base }
func (echoDef) ApiRoute() string  { return "/v1" }

func newUpstreamModel(srv *httptest.Server, opts OptionsSt) *Model {
	lg := zap.NewNop()

	opts.Lg = lg
	opts.HttpC = httpclient.New(lg, httpc.OptionsSt{Client: srv.Client()})
	opts.EndpointJoin = JoinNormalize

	return New(echoDef{base: srv.URL + "/"}, opts)
}

func TestUpstreamJson(t *testing.T) {
	srv := newUpstream(t)

	m := newUpstreamModel(srv, OptionsSt{})

	_, err := m.AppendEndpoint("echo").
		WithMethod(MethodPut).
		AddPayload(Payload{{"z", 1}, {"a", "x"}}).
		Send(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	rep := upstreamRepSt{}
	if err = m.JsonTo(&rep); err != nil {
		t.Fatal(err)
	}

	if rep.Method != http.MethodPut || rep.ContentType != httpc.MimeJson || rep.Body != `{"z":1,"a":"x"}` {
		t.Errorf("upstream saw %+v", rep)
	}
}

func TestUpstreamForm(t *testing.T) {
	srv := newUpstream(t)

	m := newUpstreamModel(srv, OptionsSt{})

	_, err := m.AppendEndpoint("/echo").
		AsFormParams().
		AddPayload(Payload{{"name", "bob"}, {"tags", []string{"a", "b"}}}).
		Send(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	rep := upstreamRepSt{}
	if err = m.JsonTo(&rep); err != nil {
		t.Fatal(err)
	}

	if rep.Form["name"] != "bob" || rep.Form["tags"] != "a,b" {
		t.Errorf("upstream form = %v", rep.Form)
	}
}

func TestUpstreamMultipart(t *testing.T) {
	srv := newUpstream(t)

	m := newUpstreamModel(srv, OptionsSt{})

	_, err := m.AppendEndpoint("echo").
		AsMultipart().
		AddPayload(Payload{
			{"title", "report"},
			{"doc", PartSt{Contents: []byte("pdf-bytes"), Filename: "r.pdf"}},
		}).
		Send(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	rep := upstreamRepSt{}
	if err = m.JsonTo(&rep); err != nil {
		t.Fatal(err)
	}

	if rep.Form["title"] != "report" || rep.Files["doc"] != "r.pdf:pdf-bytes" {
		t.Errorf("upstream saw %+v", rep)
	}
}

func TestUpstreamBadStatus(t *testing.T) {
	srv := newUpstream(t)

	m := newUpstreamModel(srv, OptionsSt{})

	rep, err := m.AppendEndpoint("fail").WithMethod(MethodGet).Send(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if rep.StatusCode != http.StatusUnprocessableEntity || rep.Content != `{"error":"bad_input"}` {
		t.Errorf("Send() = %v", rep)
	}
}

func TestUpstreamBearer(t *testing.T) {
	srv := newUpstream(t)

	signer := jwts.New([]byte("shared"), nil)

	m := newUpstreamModel(srv, OptionsSt{
		Hooks: &HooksSt{
			InterceptRequestHeader: jwt.HeaderInterceptor(zap.NewNop(), signer, "billing", 60, nil),
		},
	})

	if _, err := m.AppendEndpoint("echo").Send(context.Background()); err != nil {
		t.Fatal(err)
	}

	rep := upstreamRepSt{}
	if err := m.JsonTo(&rep); err != nil {
		t.Fatal(err)
	}

	claims, err := signer.Parse(strings.TrimPrefix(rep.Auth, jwt.BearerPrefix))
	if err != nil {
		t.Fatalf("upstream got %q: %v", rep.Auth, err)
	}
	if claims["sub"] != "billing" {
		t.Errorf("sub = %v, want billing", claims["sub"])
	}

	if _, ok := m.Snapshot().RequestHeaders[jwt.HeaderAuthorization]; ok {
		t.Errorf("Snapshot() holds the intercepted Authorization header")
	}
}
