package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no environment overrides", t, func() {
		os.Unsetenv("SWAGGERAPI_CONFIG")
		os.Unsetenv("SWAGGERAPI_ADDR")
		os.Unsetenv("SWAGGERAPI_LOG_LEVEL")

		Convey("When loading the configuration", func() {
			cfg, err := Load(context.Background())

			Convey("Then defaults should be returned", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8000")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.DefaultPageLimit, ShouldEqual, 10)
				So(cfg.MaxPageLimit, ShouldEqual, 100)
				So(cfg.RequestLog, ShouldBeTrue)
			})
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("SWAGGERAPI_ADDR", ":9000")
		t.Setenv("SWAGGERAPI_LOG_LEVEL", "debug")
		t.Setenv("SWAGGERAPI_MAX_PAGE_LIMIT", "50")

		Convey("When loading the configuration", func() {
			cfg, err := Load(context.Background())

			Convey("Then env values should win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9000")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.MaxPageLimit, ShouldEqual, 50)
				// Untouched fields keep defaults.
				So(cfg.DefaultPageLimit, ShouldEqual, 10)
			})
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte("addr: \":7070\"\nlog_level: warn\ndefault_page_limit: 5\n")
		So(os.WriteFile(path, content, 0o600), ShouldBeNil)
		t.Setenv("SWAGGERAPI_CONFIG", path)

		Convey("When loading the configuration", func() {
			cfg, err := Load(context.Background())

			Convey("Then file values should be applied", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "warn")
				So(cfg.DefaultPageLimit, ShouldEqual, 5)
			})
		})

		Convey("When env overrides the same key", func() {
			t.Setenv("SWAGGERAPI_ADDR", ":7071")
			cfg, err := Load(context.Background())

			Convey("Then env should take precedence over the file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7071")
			})
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given invalid configuration values", t, func() {
		Convey("When addr is emptied", func() {
			t.Setenv("SWAGGERAPI_ADDR", "")
			_, err := Load(context.Background())

			Convey("Then loading should fail with ErrInvalidConfig", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "invalid config")
			})
		})

		Convey("When the page limits are inconsistent", func() {
			t.Setenv("SWAGGERAPI_DEFAULT_PAGE_LIMIT", "200")
			t.Setenv("SWAGGERAPI_MAX_PAGE_LIMIT", "100")
			_, err := Load(context.Background())

			Convey("Then loading should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the config file path does not exist", func() {
			t.Setenv("SWAGGERAPI_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			_, err := Load(context.Background())

			Convey("Then loading should fail with ErrLoadConfig", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "load config failed")
			})
		})
	})
}
