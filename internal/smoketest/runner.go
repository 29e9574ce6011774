package smoketest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/elijahokolo60-dotcom/swagger-api/pkg/logger"
)

// check is a single named contract verification.
type check struct {
	name string
	fn   func(ctx context.Context, c *client, baseURL string) error
}

// checks lists every contract verified against a running instance.
var checks = []check{
	{"health", checkHealth},
	{"list users", checkListUsers},
	{"get known user", checkGetKnownUser},
	{"get unknown user", checkGetUnknownUser},
	{"reject non-positive user id", checkRejectBadUserID},
	{"create user", checkCreateUser},
	{"reject short password", checkRejectShortPassword},
	{"update user", checkUpdateUser},
	{"delete user", checkDeleteUser},
	{"list products", checkListProducts},
	{"filter products", checkFilterProducts},
	{"filter products empty", checkFilterProductsEmpty},
	{"openapi document", checkOpenAPI},
}

// Run executes every contract check against config.BaseURL.
// It returns an error if any check fails.
func Run(ctx context.Context, config *Config) error {
	log := logger.Get()
	log.Info(ctx, "starting smoke checks",
		logger.String("baseURL", config.BaseURL),
		logger.Duration("timeout", config.Timeout),
		logger.Bool("verbose", config.Verbose))

	c := newClient(config.Timeout)

	failed := 0
	for _, chk := range checks {
		if err := chk.fn(ctx, c, config.BaseURL); err != nil {
			failed++
			log.Error(ctx, "check failed", logger.String("check", chk.name), logger.Error(err))
			continue
		}
		if config.Verbose {
			log.Info(ctx, "check passed", logger.String("check", chk.name))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	log.Info(ctx, "all checks passed", logger.Int("checks", len(checks)))
	return nil
}

// expectStatus returns an error when got differs from want.
func expectStatus(want, got int) error {
	if got != want {
		return fmt.Errorf("expected status %d, got %d", want, got)
	}
	return nil
}

// userRecord mirrors the user response shape on the wire.
type userRecord struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

// productRecord mirrors the product response shape on the wire.
type productRecord struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category *string `json:"category"`
}

func checkHealth(ctx context.Context, c *client, baseURL string) error {
	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	status, err := c.getJSON(ctx, baseURL+"/", &body)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	if body.Status != "healthy" {
		return fmt.Errorf("expected status \"healthy\", got %q", body.Status)
	}
	if body.Timestamp == "" {
		return fmt.Errorf("missing timestamp")
	}
	return nil
}

func checkListUsers(ctx context.Context, c *client, baseURL string) error {
	var users []userRecord
	status, err := c.getJSON(ctx, baseURL+"/users?skip=40&limit=3", &users)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	if len(users) == 0 {
		return fmt.Errorf("expected a non-empty user list")
	}
	first := users[0]
	if first.ID != 1 || first.Email != "john@example.com" || !first.IsActive {
		return fmt.Errorf("unexpected first user: %+v", first)
	}
	return nil
}

func checkGetKnownUser(ctx context.Context, c *client, baseURL string) error {
	var u userRecord
	status, err := c.getJSON(ctx, baseURL+"/users/1", &u)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	if u.ID != 1 || u.Email != "john@example.com" {
		return fmt.Errorf("unexpected user record: %+v", u)
	}
	return nil
}

func checkGetUnknownUser(ctx context.Context, c *client, baseURL string) error {
	status, _, err := c.do(ctx, http.MethodGet, baseURL+"/users/2", nil)
	if err != nil {
		return err
	}
	return expectStatus(http.StatusNotFound, status)
}

func checkRejectBadUserID(ctx context.Context, c *client, baseURL string) error {
	status, _, err := c.do(ctx, http.MethodGet, baseURL+"/users/0", nil)
	if err != nil {
		return err
	}
	return expectStatus(http.StatusUnprocessableEntity, status)
}

func checkCreateUser(ctx context.Context, c *client, baseURL string) error {
	payload := map[string]string{"email": "a@b.com", "password": "password1"}
	status, data, err := c.do(ctx, http.MethodPost, baseURL+"/users", payload)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusCreated, status); err != nil {
		return err
	}
	if string(data) == "" {
		return fmt.Errorf("empty create response")
	}
	return nil
}

func checkRejectShortPassword(ctx context.Context, c *client, baseURL string) error {
	payload := map[string]string{"email": "a@b.com", "password": "short"}
	status, _, err := c.do(ctx, http.MethodPost, baseURL+"/users", payload)
	if err != nil {
		return err
	}
	return expectStatus(http.StatusUnprocessableEntity, status)
}

func checkUpdateUser(ctx context.Context, c *client, baseURL string) error {
	payload := map[string]string{"email": "x@y.com"}
	status, _, err := c.do(ctx, http.MethodPut, baseURL+"/users/5", payload)
	if err != nil {
		return err
	}
	return expectStatus(http.StatusOK, status)
}

func checkDeleteUser(ctx context.Context, c *client, baseURL string) error {
	status, data, err := c.do(ctx, http.MethodDelete, baseURL+"/users/5", nil)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	want := "User 5 deleted successfully"
	if !containsString(data, want) {
		return fmt.Errorf("expected message %q in %s", want, data)
	}
	return nil
}

func checkListProducts(ctx context.Context, c *client, baseURL string) error {
	var products []productRecord
	status, err := c.getJSON(ctx, baseURL+"/products", &products)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	if len(products) != 2 {
		return fmt.Errorf("expected 2 products, got %d", len(products))
	}
	return nil
}

func checkFilterProducts(ctx context.Context, c *client, baseURL string) error {
	var products []productRecord
	status, err := c.getJSON(ctx, baseURL+"/products?category=Books", &products)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	if len(products) != 1 || products[0].Category == nil || *products[0].Category != "Books" {
		return fmt.Errorf("unexpected filtered products: %+v", products)
	}
	return nil
}

func checkFilterProductsEmpty(ctx context.Context, c *client, baseURL string) error {
	var products []productRecord
	status, err := c.getJSON(ctx, baseURL+"/products?category=Unknown", &products)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	if len(products) != 0 {
		return fmt.Errorf("expected an empty list, got %d items", len(products))
	}
	return nil
}

func checkOpenAPI(ctx context.Context, c *client, baseURL string) error {
	status, data, err := c.do(ctx, http.MethodGet, baseURL+"/openapi.yaml", nil)
	if err != nil {
		return err
	}
	if err := expectStatus(http.StatusOK, status); err != nil {
		return err
	}
	if !containsString(data, "My API") {
		return fmt.Errorf("openapi document missing expected title")
	}
	return nil
}

func containsString(data []byte, s string) bool {
	return strings.Contains(string(data), s)
}
