package jwt

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/rendau/rester/adapters/logger"
	"github.com/rendau/rester/resterErrs"
)

const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// ParsePayload decodes the claims part of token into dst without checking the signature.
func ParsePayload(token string, dst any) error {
	token = strings.TrimPrefix(token, BearerPrefix)

	tokenParts := strings.Split(token, ".")
	if len(tokenParts) == 3 {
		if claimsRaw, err := base64.RawURLEncoding.DecodeString(tokenParts[1]); err == nil {
			if json.Unmarshal(claimsRaw, dst) == nil {
				return nil
			}
		}
	}

	return resterErrs.BadJwt
}

// HeaderInterceptor returns a request-header interceptor which puts a fresh
// bearer token into the Authorization header on every call.
// A failed token is logged and the headers are left as they are.
func HeaderInterceptor(lg logger.WarnAndError, j Jwt, sub string, expSeconds int64, payload map[string]any) func(map[string]string) map[string]string {
	return func(headers map[string]string) map[string]string {
		token, err := j.Create(sub, expSeconds, payload)
		if err != nil {
			lg.Errorw("Fail to create jwt", err, "sub", sub)
			return headers
		}

		if headers == nil {
			headers = map[string]string{}
		}

		headers[HeaderAuthorization] = BearerPrefix + token

		return headers
	}
}
