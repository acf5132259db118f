package httpc

import (
	"net/http"
	"reflect"
	"strconv"
	"testing"
	"time"
)

func TestOptionsSt_GetMergedWith(t *testing.T) {
	client := &http.Client{}

	base := OptionsSt{
		Client:        http.DefaultClient,
		BaseHeaders:   http.Header{"X-Base": {"1"}},
		BaseLogPrefix: "svc: ",
		LogFlags:      LogRequest,
		LogPrefix:     "op: ",
		Timeout:       time.Second,
		RetryCount:    2,
		RetryInterval: time.Millisecond,
	}

	tests := []struct {
		v    OptionsSt
		want OptionsSt
	}{
		{
			v:    OptionsSt{},
			want: base,
		},
		{
			v: OptionsSt{
				Client:     client,
				LogPrefix:  "-",
				LogFlags:   -1,
				Timeout:    -1,
				RetryCount: -1,
			},
			want: OptionsSt{
				Client:        client,
				BaseHeaders:   base.BaseHeaders,
				BaseLogPrefix: "svc: ",
				RetryInterval: time.Millisecond,
			},
		},
		{
			v: OptionsSt{
				BaseLogPrefix: "other: ",
				LogFlags:      LogResponse,
				RetryCount:    5,
				RetryInterval: -1,
			},
			want: OptionsSt{
				Client:        http.DefaultClient,
				BaseHeaders:   base.BaseHeaders,
				BaseLogPrefix: "other: ",
				LogFlags:      LogResponse,
				LogPrefix:     "op: ",
				Timeout:       time.Second,
				RetryCount:    5,
			},
		},
	}
	for ttI, tt := range tests {
		t.Run(strconv.Itoa(ttI+1), func(t *testing.T) {
			if got := base.GetMergedWith(tt.v); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetMergedWith() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
