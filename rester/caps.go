package rester

// detectCaps binds the capability methods of def into a function table.
func detectCaps(def any) HooksSt {
	res := HooksSt{}

	if def == nil {
		return res
	}

	if v, ok := def.(HasFinalEndpoint); ok {
		res.FinalEndpoint = v.FinalEndpoint
	}
	if v, ok := def.(WithBaseUrl); ok {
		res.BaseUrl = v.BaseUrl
	}
	if v, ok := def.(WithApiRoute); ok {
		res.ApiRoute = v.ApiRoute
	}
	if v, ok := def.(WithRequestHeaders); ok {
		res.DefaultRequestHeaders = v.DefaultRequestHeaders
	}
	if v, ok := def.(WithDefaultPayload); ok {
		res.DefaultPayload = v.DefaultPayload
	}
	if v, ok := def.(WithLogStrategy); ok {
		res.LogStrategy = v.LogStrategy
	}
	if v, ok := def.(RequestHeaderInterceptor); ok {
		res.InterceptRequestHeader = v.InterceptRequestHeader
	}
	if v, ok := def.(PayloadInterceptor); ok {
		res.InterceptPayload = v.InterceptPayload
	}
	if v, ok := def.(ResponseContentInterceptor); ok {
		res.InterceptResponseContent = v.InterceptResponseContent
	}
	if v, ok := def.(ResponseHeaderInterceptor); ok {
		res.InterceptResponseHeader = v.InterceptResponseHeader
	}
	if v, ok := def.(AccessLogInterceptor); ok {
		res.InterceptAccessLog = v.InterceptAccessLog
	}

	return res
}

// GetMergedWith overlays the non-nil functions of v.
func (h HooksSt) GetMergedWith(v *HooksSt) HooksSt {
	if v == nil {
		return h
	}

	if v.FinalEndpoint != nil {
		h.FinalEndpoint = v.FinalEndpoint
	}
	if v.BaseUrl != nil {
		h.BaseUrl = v.BaseUrl
	}
	if v.ApiRoute != nil {
		h.ApiRoute = v.ApiRoute
	}
	if v.DefaultRequestHeaders != nil {
		h.DefaultRequestHeaders = v.DefaultRequestHeaders
	}
	if v.DefaultPayload != nil {
		h.DefaultPayload = v.DefaultPayload
	}
	if v.LogStrategy != nil {
		h.LogStrategy = v.LogStrategy
	}
	if v.InterceptRequestHeader != nil {
		h.InterceptRequestHeader = v.InterceptRequestHeader
	}
	if v.InterceptPayload != nil {
		h.InterceptPayload = v.InterceptPayload
	}
	if v.InterceptResponseContent != nil {
		h.InterceptResponseContent = v.InterceptResponseContent
	}
	if v.InterceptResponseHeader != nil {
		h.InterceptResponseHeader = v.InterceptResponseHeader
	}
	if v.InterceptAccessLog != nil {
		h.InterceptAccessLog = v.InterceptAccessLog
	}

	return h
}
