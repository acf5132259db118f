package jwts

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rendau/rester/resterErrs"
)

// St signs HS256 tokens with a shared secret.
type St struct {
	secret []byte
	now    func() time.Time
}

func New(secret []byte, now func() time.Time) *St {
	if now == nil {
		now = time.Now
	}

	return &St{
		secret: secret,
		now:    now,
	}
}

func (p *St) Create(sub string, expSeconds int64, payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}

	for k, v := range payload {
		claims[k] = v
	}

	now := p.now()

	claims["iat"] = now.Unix()

	if sub != "" {
		claims["sub"] = sub
	}

	if expSeconds != 0 {
		claims["exp"] = now.Add(time.Duration(expSeconds) * time.Second).Unix()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Parse verifies the signature of token and returns its claims.
func (p *St) Parse(token string) (map[string]any, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, resterErrs.BadJwt
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, resterErrs.ErrWithDesc{Err: resterErrs.BadJwt, Desc: err.Error()}
	}

	return claims, nil
}
