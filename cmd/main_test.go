package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/adapters/http/api"
	"github.com/elijahokolo60-dotcom/swagger-api/internal/adapters/http/swagger"
	app "github.com/elijahokolo60-dotcom/swagger-api/internal/app"
	"github.com/elijahokolo60-dotcom/swagger-api/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("SWAGGERAPI_ADDR", ":8080")
			_ = os.Setenv("SWAGGERAPI_LOG_LEVEL", "debug")
			defer func() {
				_ = os.Unsetenv("SWAGGERAPI_ADDR")
				_ = os.Unsetenv("SWAGGERAPI_LOG_LEVEL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When wiring the full route table", func() {
			ctx := context.Background()
			svc := app.New()
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			swagger.Register(ctx, mux)
			apiServer := api.NewServer(svc, svc, 10, 100)
			apiServer.Register(ctx, mux)
			handler := api.WithRequestID(mux)

			convey.Convey("Then the health route should serve through the middleware stack", func() {
				req := httptest.NewRequest("GET", "/", http.NoBody)
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("X-Request-Id"), convey.ShouldNotBeEmpty)

				var body map[string]any
				convey.So(json.Unmarshal(w.Body.Bytes(), &body), convey.ShouldBeNil)
				convey.So(body["status"], convey.ShouldEqual, "healthy")
			})

			convey.Convey("And the docs route should be registered alongside the API", func() {
				req := httptest.NewRequest("GET", "/docs", http.NoBody)
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When updating once", func() {
			updateSystemMetrics()

			convey.Convey("Then it should not panic", func() {
				convey.So(true, convey.ShouldBeTrue)
			})
		})
	})
}
