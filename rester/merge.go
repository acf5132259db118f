package rester

import (
	"net/http"
	"sort"

	"github.com/rendau/rester/resterTools"
)

// mergeHeaders puts the caller headers over the defaults. Keys are
// canonicalized so that "x-key" and "X-Key" collide.
func mergeHeaders(defaults, caller map[string]string) map[string]string {
	res := make(map[string]string, len(defaults)+len(caller))

	for _, src := range []map[string]string{defaults, caller} {
		putHeaders(res, src)
	}

	return res
}

// putHeaders copies src into dst under canonical keys. Within src a
// non-canonical spelling wins over the canonical one, and several
// non-canonical spellings are applied in sorted order.
func putHeaders(dst, src map[string]string) {
	var others []string

	for k, v := range src {
		if ck := http.CanonicalHeaderKey(k); ck == k {
			dst[ck] = v
		} else {
			others = append(others, k)
		}
	}

	sort.Strings(others)

	for _, k := range others {
		dst[http.CanonicalHeaderKey(k)] = src[k]
	}
}

func mergeRequestData(caps HooksSt, cfg configSt) (map[string]string, Payload) {
	headers := cfg.headers
	if caps.DefaultRequestHeaders != nil {
		headers = mergeHeaders(caps.DefaultRequestHeaders(), headers)
	} else {
		headers = mergeHeaders(nil, headers)
	}

	payload := cfg.payload
	if caps.DefaultPayload != nil {
		payload = caps.DefaultPayload().Merge(payload)
	}

	return headers, payload
}

func interceptRequestData(caps HooksSt, headers map[string]string, payload Payload) (map[string]string, Payload, SnapshotSt) {
	snap := SnapshotSt{
		RequestHeaders: resterTools.CopyMap(headers),
		Payload:        payload.Clone(),
	}

	if caps.InterceptRequestHeader != nil {
		headers = mergeHeaders(nil, caps.InterceptRequestHeader(resterTools.CopyMap(headers)))
	}

	if caps.InterceptPayload != nil {
		payload = caps.InterceptPayload(payload.Clone())
	}

	return headers, payload, snap
}
