package rester

import (
	"reflect"
	"testing"
)

func TestMergeHeaders(t *testing.T) {
	tests := []struct {
		name     string
		defaults map[string]string
		caller   map[string]string
		want     map[string]string
	}{
		{
			name:     "caller wins across spellings",
			defaults: map[string]string{"X-Key": "abc", "Y": "1"},
			caller:   map[string]string{"x-key": "override"},
			want:     map[string]string{"X-Key": "override", "Y": "1"},
		},
		{
			name:   "non-canonical spelling wins within one map",
			caller: map[string]string{"X-Key": "abc", "x-key": "low"},
			want:   map[string]string{"X-Key": "low"},
		},
		{
			name:   "several spellings apply in sorted order",
			caller: map[string]string{"x-KEY": "b", "x-key": "c", "X-KEY": "a"},
			want:   map[string]string{"X-Key": "c"},
		},
		{
			name: "empty",
			want: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				if got := mergeHeaders(tt.defaults, tt.caller); !reflect.DeepEqual(got, tt.want) {
					t.Fatalf("mergeHeaders() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
