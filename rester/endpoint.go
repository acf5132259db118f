package rester

import (
	"strings"
)

func resolveEndpoint(caps HooksSt, cfg configSt, mode JoinMode) string {
	if cfg.endpointOverwritten {
		return cfg.endpoint
	}

	if caps.FinalEndpoint != nil {
		return joinEndpoint(mode, caps.FinalEndpoint(), cfg.appendEndpoint)
	}

	base := cfg.baseUrl
	if caps.BaseUrl != nil {
		base = caps.BaseUrl()
	}

	route := cfg.apiRoute
	if caps.ApiRoute != nil {
		route = caps.ApiRoute()
	}

	return joinEndpoint(mode, base, route, cfg.appendEndpoint)
}

func joinEndpoint(mode JoinMode, parts ...string) string {
	if mode != JoinNormalize {
		return strings.Join(parts, "")
	}

	res := ""

	for _, p := range parts {
		switch {
		case p == "":
		case res == "":
			res = p
		case p[0] == '?' || p[0] == '#':
			res += p
		default:
			res = strings.TrimRight(res, "/") + "/" + strings.TrimLeft(p, "/")
		}
	}

	return res
}
