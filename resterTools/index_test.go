package resterTools

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestCopyMap(t *testing.T) {
	if got := CopyMap[string, int](nil); got != nil {
		t.Errorf("CopyMap(nil) = %v, want nil", got)
	}

	src := map[string]int{"a": 1}
	cp := CopyMap(src)
	cp["a"] = 2

	if src["a"] != 1 {
		t.Errorf("CopyMap() shares storage with the source")
	}
}

func TestMergeMaps(t *testing.T) {
	tests := []struct {
		name string
		ms   []map[string]string
		want map[string]string
	}{
		{
			name: "empty",
			want: map[string]string{},
		},
		{
			name: "later wins",
			ms: []map[string]string{
				{"X-Key": "abc"},
				{"X-Key": "override", "Y": "1"},
			},
			want: map[string]string{"X-Key": "override", "Y": "1"},
		},
		{
			name: "nil inside",
			ms:   []map[string]string{nil, {"a": "1"}},
			want: map[string]string{"a": "1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeMaps(tt.ms...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeMaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetViperDefaultsFromObj(t *testing.T) {
	v := viper.New()

	SetViperDefaultsFromObj(v, struct {
		LogLevel string `mapstructure:"LOG_LEVEL"`
		Debug    bool   `mapstructure:"DEBUG"`
		Skipped  string
	}{
		LogLevel: "info",
	})

	if got := v.GetString("LOG_LEVEL"); got != "info" {
		t.Errorf("LOG_LEVEL = %q, want info", got)
	}
	if !v.IsSet("DEBUG") {
		t.Errorf("DEBUG is not registered")
	}
	if v.IsSet("Skipped") {
		t.Errorf("untagged field registered")
	}
}
