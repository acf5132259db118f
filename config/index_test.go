package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("", nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if *conf != defaults() {
		t.Errorf("Load() = %+v, want %+v", *conf, defaults())
	}
}

func TestLoadPriority(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), "conf.yml")

	err := os.WriteFile(confPath, []byte("LOG_LEVEL: warn\nAPP_PATH: /from/file\nLOG_FILE_PATH: file.log\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("RESTER_APP_PATH", "/from/env")
	t.Setenv("RESTER_DEBUG", "true")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("app-path", "", "")
	fs.String("log-level", "", "")

	if err = fs.Parse([]string{"--app-path=/from/flag"}); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(confPath, fs, map[string]string{
		"APP_PATH":  "app-path",
		"LOG_LEVEL": "log-level",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := Conf{
		LogLevel:    "warn",
		Debug:       true,
		AppPath:     "/from/flag",
		LogFilePath: "file.log",
	}
	if *conf != want {
		t.Errorf("Load() = %+v, want %+v", *conf, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yml"), nil, nil); err == nil {
		t.Errorf("Load() error = nil, want error for a missing file")
	}
}
