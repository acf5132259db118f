package mock

import (
	"encoding/base64"
	"encoding/json"
	"sync"

	"github.com/rendau/rester/adapters/logger"
)

// St issues unsigned tokens. The claims part is real base64 json, so
// jwt.ParsePayload can read it back.
type St struct {
	lg  logger.WarnAndError
	err error

	issued []string
	mu     sync.Mutex
}

func New(lg logger.WarnAndError) *St {
	return &St{lg: lg}
}

// SetErr makes every following Create fail with err.
func (p *St) SetErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.err = err
}

func (p *St) Create(sub string, expSeconds int64, payload map[string]any) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return "", p.err
	}

	claims := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	if sub != "" {
		claims["sub"] = sub
	}
	if expSeconds != 0 {
		claims["exp_seconds"] = expSeconds
	}

	payloadRaw, err := json.Marshal(claims)
	if err != nil {
		p.lg.Errorw("Fail to marshal data", err)
		return "", err
	}

	token := "XXX." + base64.RawURLEncoding.EncodeToString(payloadRaw) + ".YYY"

	p.issued = append(p.issued, token)

	return token, nil
}

func (p *St) PullAll() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := p.issued
	p.issued = nil

	return res
}
