package smoketest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/adapters/http/api"
	"github.com/elijahokolo60-dotcom/swagger-api/internal/adapters/http/swagger"
	app "github.com/elijahokolo60-dotcom/swagger-api/internal/app"
	"github.com/elijahokolo60-dotcom/swagger-api/internal/smoketest"
	"github.com/elijahokolo60-dotcom/swagger-api/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestSmokeChecksAgainstLiveService(t *testing.T) {
	Convey("Given a fully wired service behind a test server", t, func() {
		ctx := context.Background()
		svc := app.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		mux := http.NewServeMux()
		swagger.Register(ctx, mux)
		apiServer := api.NewServer(svc, svc, 10, 100)
		apiServer.Register(ctx, mux)

		ts := httptest.NewServer(api.WithRequestID(mux))
		defer ts.Close()

		Convey("When running the full smoke-check suite", func() {
			config := &smoketest.Config{
				BaseURL: ts.URL,
				Timeout: 5 * time.Second,
				Verbose: false,
			}
			err := smoketest.Run(ctx, config)

			Convey("Then every check should pass", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When running against a dead endpoint", func() {
			config := &smoketest.Config{
				BaseURL: "http://127.0.0.1:1",
				Timeout: 500 * time.Millisecond,
			}
			err := smoketest.Run(ctx, config)

			Convey("Then the run should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
