package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/adapters/repository"
	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func strptr(s string) *string { return &s }

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := New()
		ctx := context.Background()

		Convey("When starting it", func() {
			err := svc.Start(ctx)

			Convey("Then start should succeed and stats should reflect it", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["users"], ShouldEqual, 1)
				So(stats["products"], ShouldEqual, 2)
				So(stats, ShouldContainKey, "uptime_sec")
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stopping should clear the started flag", func() {
				svc.Stop()
				So(svc.GetStats()["started"], ShouldBeFalse)
			})
		})
	})
}

func TestServiceUsers(t *testing.T) {
	Convey("Given a started service with a fixed clock", t, func() {
		frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := New(
			WithClock(func() time.Time { return frozen }),
			WithCatalog(repository.NewFixtureCatalog(repository.WithClock(func() time.Time { return frozen }))),
		)
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When listing users with arbitrary paging", func() {
			users, err := svc.ListUsers(ctx, 25, 3)

			Convey("Then the single fixture user should be returned regardless", func() {
				So(err, ShouldBeNil)
				So(users, ShouldHaveLength, 1)
				So(users[0].ID, ShouldEqual, 1)
				So(users[0].Email, ShouldEqual, "john@example.com")
			})
		})

		Convey("When fetching user 1", func() {
			u, err := svc.GetUser(ctx, 1)

			Convey("Then the fixture record should be returned", func() {
				So(err, ShouldBeNil)
				So(u.IsActive, ShouldBeTrue)
				So(u.CreatedAt.Equal(frozen), ShouldBeTrue)
			})
		})

		Convey("When fetching any other id", func() {
			_, err := svc.GetUser(ctx, 7)

			Convey("Then the not-found error should surface", func() {
				So(errors.Is(err, repository.ErrUserNotFound), ShouldBeTrue)
			})
		})

		Convey("When creating a user", func() {
			created, err := svc.CreateUser(ctx, model.NewUser{
				Profile:  model.Profile{Email: "a@b.com", FullName: strptr("Alice B")},
				Password: "password1",
			})

			Convey("Then the record should carry the fixed created id", func() {
				So(err, ShouldBeNil)
				So(created.ID, ShouldEqual, 2)
				So(created.Email, ShouldEqual, "a@b.com")
				So(created.IsActive, ShouldBeTrue)
				So(created.CreatedAt.Equal(frozen), ShouldBeTrue)
			})
		})

		Convey("When updating an arbitrary user id", func() {
			updated, err := svc.UpdateUser(ctx, 5, model.Profile{Email: "x@y.com"})

			Convey("Then the id and profile should be echoed back", func() {
				So(err, ShouldBeNil)
				So(updated.ID, ShouldEqual, 5)
				So(updated.Email, ShouldEqual, "x@y.com")
				So(updated.IsActive, ShouldBeTrue)
			})
		})

		Convey("When deleting an arbitrary user id", func() {
			Convey("Then the call should always succeed", func() {
				So(svc.DeleteUser(ctx, 5), ShouldBeNil)
			})
		})
	})
}

func TestServiceProducts(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := New()
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When listing products without a filter", func() {
			products, err := svc.ListProducts(ctx, "")

			Convey("Then both catalog items should be returned", func() {
				So(err, ShouldBeNil)
				So(products, ShouldHaveLength, 2)
			})
		})

		Convey("When filtering by category", func() {
			products, err := svc.ListProducts(ctx, "Electronics")

			Convey("Then only the matching item should be returned", func() {
				So(err, ShouldBeNil)
				So(products, ShouldHaveLength, 1)
				So(products[0].Name, ShouldEqual, "Laptop")
			})
		})
	})
}

func TestServiceHealth(t *testing.T) {
	Convey("Given a service with a fixed clock", t, func() {
		frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := New(WithClock(func() time.Time { return frozen }))

		Convey("When asking for health", func() {
			status, ts := svc.Health(context.Background())

			Convey("Then it should report healthy with the current time", func() {
				So(status, ShouldEqual, "healthy")
				So(ts.Equal(frozen), ShouldBeTrue)
			})
		})
	})
}
