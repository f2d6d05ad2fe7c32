package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"logistics-requests/config"
	"logistics-requests/constants"
	"logistics-requests/controllers/analytics"
	"logistics-requests/controllers/auth"
	"logistics-requests/controllers/public"
	"logistics-requests/controllers/server"
	"logistics-requests/controllers/shipment"
	"logistics-requests/controllers/user"
	"logistics-requests/errs"
	"logistics-requests/logger"
	logModel "logistics-requests/models/log"
	shipmentModel "logistics-requests/models/shipment"
	userModel "logistics-requests/models/user"
	"logistics-requests/services/access"
	analyticsService "logistics-requests/services/analytics"
	authService "logistics-requests/services/auth"
	"logistics-requests/services/numbering"
	shipmentService "logistics-requests/services/shipment"
	userService "logistics-requests/services/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memUsers struct {
	userService.Repository
	mu   sync.Mutex
	rows map[uint]*userModel.User
}

func (m *memUsers) Create(_ context.Context, u *userModel.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = uint(len(m.rows) + 1)
	m.rows[u.ID] = u
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*userModel.User, error) {
	for _, u := range m.rows {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errs.NotFound("user")
}

func (m *memUsers) FindByID(_ context.Context, id uint) (*userModel.User, error) {
	if u, ok := m.rows[id]; ok {
		return u, nil
	}
	return nil, errs.NotFound("user")
}

func (m *memUsers) FindActiveByPhone(_ context.Context, phone string) (*userModel.User, error) {
	for _, u := range m.rows {
		if u.Phone == phone && u.CanLogin() {
			return u, nil
		}
	}
	return nil, errs.NotFound("user")
}

func (m *memUsers) List(_ context.Context, _, _ int) ([]userModel.User, int64, error) {
	var out []userModel.User
	for _, u := range m.rows {
		if !u.IsSystem {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memUsers) Save(_ context.Context, u *userModel.User) error {
	m.rows[u.ID] = u
	return nil
}

type memShipments struct {
	shipmentService.Repository
	mu     sync.Mutex
	rows   map[uint]*shipmentModel.ShipmentRequest
	events []shipmentModel.StatusEvent
	failOn string
}

func (m *memShipments) Insert(_ context.Context, _ *gorm.DB, r *shipmentModel.ShipmentRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uint(len(m.rows) + 1)
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *memShipments) Save(_ context.Context, _ *gorm.DB, r *shipmentModel.ShipmentRequest) error {
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *memShipments) Delete(_ context.Context, id uint) error {
	delete(m.rows, id)
	return nil
}

func (m *memShipments) FindByID(_ context.Context, id uint) (*shipmentModel.ShipmentRequest, error) {
	if r, ok := m.rows[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, errs.NotFound("shipment request")
}

func (m *memShipments) Lock(ctx context.Context, _ *gorm.DB, id uint) (*shipmentModel.ShipmentRequest, error) {
	return m.FindByID(ctx, id)
}

func (m *memShipments) FindByNumber(_ context.Context, number string) (*shipmentModel.ShipmentRequest, error) {
	for _, r := range m.rows {
		if r.RequestNumber == strings.ToUpper(number) {
			return r, nil
		}
	}
	return nil, errs.NotFound("shipment request")
}

func (m *memShipments) FindByPhone(_ context.Context, phone string, _ int) ([]shipmentModel.ShipmentRequest, error) {
	var out []shipmentModel.ShipmentRequest
	for _, r := range m.rows {
		if r.ClientPhone == phone || r.RecipientPhone == phone {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memShipments) visible(actor access.Actor) []shipmentModel.ShipmentRequest {
	var out []shipmentModel.ShipmentRequest
	for _, r := range m.rows {
		if actor.IsManager() || r.IsOwnedBy(actor.UserID) {
			out = append(out, *r)
		}
	}
	return out
}

func (m *memShipments) List(_ context.Context, actor access.Actor, _ shipmentService.Filter) ([]shipmentModel.ShipmentRequest, int64, error) {
	if m.failOn == "list" {
		return nil, 0, errors.New("pq: relation \"shipment_requests\" does not exist")
	}
	out := m.visible(actor)
	return out, int64(len(out)), nil
}

func (m *memShipments) ListForStats(_ context.Context, actor access.Actor, _ shipmentService.Filter) ([]shipmentModel.ShipmentRequest, error) {
	return m.visible(actor), nil
}

func (m *memShipments) AddEvent(_ context.Context, _ *gorm.DB, ev *shipmentModel.StatusEvent) error {
	m.events = append(m.events, *ev)
	return nil
}

func (m *memShipments) History(_ context.Context, id uint) ([]shipmentModel.StatusEvent, error) {
	var out []shipmentModel.StatusEvent
	for _, ev := range m.events {
		if ev.ShipmentRequestID == id {
			out = append(out, ev)
		}
	}
	return out, nil
}

type memCounters struct {
	mu   sync.Mutex
	last map[string]int
}

func (c *memCounters) Increment(_ context.Context, _ *gorm.DB, prefix string, year int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := fmt.Sprintf("%s-%d", prefix, year)
	c.last[key]++
	return c.last[key], nil
}

func (c *memCounters) Advance(context.Context, string, int, int) error { return nil }

type passthroughTx struct{}

func (passthroughTx) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type testEnv struct {
	app       *fiber.App
	tokens    *authService.TokenManager
	users     *memUsers
	shipments *memShipments
	pingErr   error
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithAudit(t, nil)
}

func newTestEnvWithAudit(t *testing.T, auditLog *logger.AsyncLogger) *testEnv {
	t.Helper()
	hash, err := authService.HashPassword("correct-horse")
	require.NoError(t, err)

	env := &testEnv{
		users: &memUsers{rows: map[uint]*userModel.User{
			1: {ID: 1, Username: "boss", PasswordHash: hash, Role: constants.RoleManager, IsActive: true},
			2: {ID: 2, Username: "ivan", PasswordHash: hash, Role: constants.RoleEmployee, IsActive: true, Phone: "+77017770000"},
			3: {ID: 3, Username: "oleg", PasswordHash: hash, Role: constants.RoleEmployee, IsActive: true},
			4: {ID: 4, Username: "system", PasswordHash: hash, Role: constants.RoleEmployee, IsActive: true, IsSystem: true},
		}},
		shipments: &memShipments{rows: map[uint]*shipmentModel.ShipmentRequest{}},
		tokens:    authService.NewTokenManager("test-secret-that-is-long-enough-123", time.Hour),
	}

	users := userService.NewService(env.users, "system")
	shipments := shipmentService.NewService(shipmentService.Deps{
		Repo:    env.shipments,
		Tx:      passthroughTx{},
		Numbers: numbering.NewAllocatorWith(&memCounters{last: map[string]int{}}, passthroughTx{}),
		Owners:  users,
	})

	h := &Handlers{
		Tokens:    env.tokens,
		Sessions:  env.users,
		AuditLog:  auditLog,
		Auth:      auth.NewAuthController(authService.NewService(env.users, env.tokens), false),
		Shipments: shipment.NewShipmentController(shipments),
		Public:    public.NewPublicController(shipments),
		Users:     user.NewUserController(users),
		Analytics: analytics.NewAnalyticsController(analyticsService.NewService(env.shipments)),
		Server:    server.NewServerController(func(context.Context) error { return env.pingErr }),
	}
	env.app = NewApp(&config.Config{FrontendURL: "*", AppEnv: "test"})
	SetupRoutes(env.app, h)
	return env
}

func (e *testEnv) token(t *testing.T, id uint) string {
	t.Helper()
	tok, _, err := e.tokens.Issue(e.users.rows[id])
	require.NoError(t, err)
	return tok
}

func (e *testEnv) tokenFor(t *testing.T, u *userModel.User) string {
	t.Helper()
	tok, _, err := e.tokens.Issue(u)
	require.NoError(t, err)
	return tok
}

type envelope struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		TotalPages int   `json:"total_pages"`
	} `json:"meta"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func newRequestBody() map[string]any {
	return map[string]any{
		"category":         "astana",
		"client_name":      "Aigerim",
		"client_phone":     "8 701 123 45 67",
		"pickup_address":   "Kabanbay batyr 1",
		"delivery_address": "Mangilik El 20",
		"cargo_name":       "Furniture",
	}
}

func TestLoginDoesNotRevealWhichPartWasWrong(t *testing.T) {
	env := newTestEnv(t)

	status, ok := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ivan", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, ok.Token)

	_, wrongPass := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ivan", "password": "nope-nope"})
	status, unknown := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ghost", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, wrongPass.Message, unknown.Message)

	status, _ = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "system", "password": "correct-horse"})
	assert.Equal(t, http.StatusUnauthorized, status, "the system owner cannot log in")
}

func TestRegisterAndMe(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "dana", "password": "long-enough-pw", "phone": "+7 702 000 11 22",
	})
	require.Equal(t, http.StatusCreated, status, res.Message)
	assert.NotContains(t, string(res.Data), "password")

	status, res = env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{"username": "dana", "password": "long-enough-pw"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "username is already taken", res.Message)

	status, _ = env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, res = env.do(t, http.MethodGet, "/api/auth/me", env.token(t, 2), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(res.Data), `"username":"ivan"`)

	env.users.rows[2].IsActive = false
	status, _ = env.do(t, http.MethodGet, "/api/auth/me", env.token(t, 2), nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestShipmentLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	ivan, oleg, boss := env.token(t, 2), env.token(t, 3), env.token(t, 1)

	status, res := env.do(t, http.MethodPost, "/api/shipment-requests", ivan, newRequestBody())
	require.Equal(t, http.StatusCreated, status, res.Message)
	var created struct {
		ID            uint   `json:"id"`
		RequestNumber string `json:"request_number"`
		StatusLabel   string `json:"status_label"`
		ClientPhone   string `json:"client_phone"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Regexp(t, `^AST-\d{4}-001$`, created.RequestNumber)
	assert.Equal(t, "Новая", created.StatusLabel)
	assert.Equal(t, "+77011234567", created.ClientPhone)
	path := fmt.Sprintf("/api/shipment-requests/%d", created.ID)

	status, _ = env.do(t, http.MethodGet, path, oleg, nil)
	assert.Equal(t, http.StatusForbidden, status, "employees only see their own requests")

	status, res = env.do(t, http.MethodPatch, path, ivan, map[string]any{"price_kzt": "15000"})
	assert.Equal(t, http.StatusForbidden, status, res.Message)

	status, res = env.do(t, http.MethodPatch, path, boss, map[string]any{"status": "delivered", "price_kzt": "15000"})
	require.Equal(t, http.StatusOK, status, res.Message)

	status, res = env.do(t, http.MethodPut, path, boss, map[string]any{"status": "new"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Message, "delivered")

	status, res = env.do(t, http.MethodGet, path+"/history", ivan, nil)
	require.Equal(t, http.StatusOK, status)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(res.Data, &history))
	assert.Len(t, history, 2)

	status, res = env.do(t, http.MethodGet, "/api/shipment-requests/stats", boss, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(res.Data), `"avg_order_value":"15000"`)

	status, _ = env.do(t, http.MethodDelete, path, ivan, nil)
	assert.Equal(t, http.StatusForbidden, status, "owners cannot delete")
	status, _ = env.do(t, http.MethodDelete, path, boss, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.do(t, http.MethodGet, path, boss, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListIsScopedAndPaginated(t *testing.T) {
	env := newTestEnv(t)
	ivan, oleg, boss := env.token(t, 2), env.token(t, 3), env.token(t, 1)

	for _, tok := range []string{ivan, ivan, oleg} {
		status, res := env.do(t, http.MethodPost, "/api/shipment-requests", tok, newRequestBody())
		require.Equal(t, http.StatusCreated, status, res.Message)
	}

	status, res := env.do(t, http.MethodGet, "/api/shipment-requests?limit=1", ivan, nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, res.Meta)
	assert.Equal(t, int64(2), res.Meta.Total)
	assert.Equal(t, 2, res.Meta.TotalPages)

	_, res = env.do(t, http.MethodGet, "/api/shipment-requests", boss, nil)
	assert.Equal(t, int64(3), res.Meta.Total)

	status, _ = env.do(t, http.MethodGet, "/api/shipment-requests?status=lost", boss, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHugePageIsClamped(t *testing.T) {
	env := newTestEnv(t)
	boss := env.token(t, 1)

	for _, path := range []string{
		"/api/shipment-requests?page=9223372036854775807&limit=100",
		"/api/users?page=9223372036854775807&limit=100",
	} {
		status, res := env.do(t, http.MethodGet, path, boss, nil)
		require.Equal(t, http.StatusOK, status, path+": "+res.Message)
		require.NotNil(t, res.Meta, path)
		assert.Equal(t, shipmentService.MaxPage, res.Meta.Page, path)
	}
}

func TestTokenRightsFollowTheStoredAccount(t *testing.T) {
	env := newTestEnv(t)
	boss, ivan := env.token(t, 1), env.token(t, 2)

	status, res := env.do(t, http.MethodPost, "/api/shipment-requests", ivan, newRequestBody())
	require.Equal(t, http.StatusCreated, status, res.Message)

	env.users.rows[1].Role = constants.RoleEmployee
	status, _ = env.do(t, http.MethodGet, "/api/users", boss, nil)
	assert.Equal(t, http.StatusForbidden, status, "demoted manager keeps no manager rights")
	status, _ = env.do(t, http.MethodDelete, "/api/shipment-requests/1", boss, nil)
	assert.Equal(t, http.StatusForbidden, status)

	env.users.rows[2].IsActive = false
	status, _ = env.do(t, http.MethodPost, "/api/shipment-requests", ivan, newRequestBody())
	assert.Equal(t, http.StatusUnauthorized, status, "deactivated account is locked out")
	status, _ = env.do(t, http.MethodGet, "/api/auth/me", ivan, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	delete(env.users.rows, 3)
	status, _ = env.do(t, http.MethodGet, "/api/shipment-requests", env.tokenFor(t, &userModel.User{ID: 3, Username: "oleg", Role: constants.RoleEmployee, IsActive: true}), nil)
	assert.Equal(t, http.StatusUnauthorized, status, "deleted account is locked out")
}

func TestPublicIntakeAndTracking(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodPost, "/api/public/shipment-requests", "", newRequestBody())
	require.Equal(t, http.StatusCreated, status, res.Message)
	assert.Equal(t, "Shipment request accepted", res.Message)
	assert.NotContains(t, string(res.Data), "+7701")
	assert.Equal(t, uint(4), *env.shipments.rows[1].UserID, "unknown phone goes to the system owner")

	body := newRequestBody()
	body["client_phone"] = "+77017770000"
	status, _ = env.do(t, http.MethodPost, "/api/public/shipment-requests", "", body)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, uint(2), *env.shipments.rows[2].UserID, "phone matches ivan")

	number := env.shipments.rows[1].RequestNumber
	status, res = env.do(t, http.MethodGet, "/api/shipment-requests/public/"+strings.ToLower(number), "", nil)
	require.Equal(t, http.StatusOK, status, res.Message)
	for _, leaked := range []string{"client_phone", "pickup_address", "price_kzt", "user_id"} {
		assert.NotContains(t, string(res.Data), leaked)
	}

	status, res = env.do(t, http.MethodPost, "/api/track-request", "", map[string]string{"phone": "87011234567"})
	require.Equal(t, http.StatusOK, status, res.Message)
	var views []map[string]any
	require.NoError(t, json.Unmarshal(res.Data, &views))
	assert.Len(t, views, 1)

	status, _ = env.do(t, http.MethodPost, "/api/track-request", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = env.do(t, http.MethodGet, "/api/shipment-requests/public/AST-1999-001", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	body["client_phone"] = "not a phone"
	status, res = env.do(t, http.MethodPost, "/api/public/shipment-requests", "", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Message, "client_phone")
}

func TestManagerOnlyRoutes(t *testing.T) {
	env := newTestEnv(t)
	ivan, boss := env.token(t, 2), env.token(t, 1)

	for _, path := range []string{"/api/users", "/api/analytics", "/api/reports"} {
		status, _ := env.do(t, http.MethodGet, path, ivan, nil)
		assert.Equal(t, http.StatusForbidden, status, path)
		status, res := env.do(t, http.MethodGet, path, boss, nil)
		assert.Equal(t, http.StatusOK, status, path+": "+res.Message)
	}

	status, res := env.do(t, http.MethodPut, "/api/users/2/role", boss, map[string]any{"role": "manager"})
	require.Equal(t, http.StatusOK, status, res.Message)
	assert.Equal(t, constants.RoleManager, env.users.rows[2].Role)

	status, _ = env.do(t, http.MethodPut, "/api/users/2/role", boss, map[string]any{"role": "admin"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestReportsExportXLSX(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/reports?format=xlsx&period=all", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, 1))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func TestErrorEnvelope(t *testing.T) {
	env := newTestEnv(t)

	status, res := env.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, http.StatusNotFound, res.Status)

	status, res = env.do(t, http.MethodDelete, "/api/track-request", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, http.StatusMethodNotAllowed, res.Status)

	env.shipments.failOn = "list"
	status, res = env.do(t, http.MethodGet, "/api/shipment-requests", env.token(t, 1), nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, errs.GenericMessage, res.Message)

	status, _ = env.do(t, http.MethodGet, "/api/shipment-requests", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = env.do(t, http.MethodGet, "/api/shipment-requests/abc", env.token(t, 1), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)

	env.pingErr = errors.New("dial tcp: connection refused")
	status, res := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, string(res.Data), `"database":"down"`)
}

func TestAuditLogMasksCredentials(t *testing.T) {
	var (
		mu      sync.Mutex
		entries []logModel.Log
	)
	auditLog := logger.NewAsyncLoggerWithSink(func(l *logModel.Log) error {
		mu.Lock()
		defer mu.Unlock()
		entries = append(entries, *l)
		return nil
	})
	go auditLog.ProcessLog()
	env := newTestEnvWithAudit(t, auditLog)

	env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ivan", "password": "correct-horse"})
	env.do(t, http.MethodGet, "/api/shipment-requests", env.token(t, 2), nil)
	auditLog.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, entries, 2)

	login := entries[0]
	assert.Equal(t, "/api/auth/login", login.URL)
	assert.Equal(t, http.StatusOK, login.StatusCode)
	assert.NotContains(t, login.RequestBody, "correct-horse")
	assert.Contains(t, login.RequestBody, "[MASKED]")
	assert.Nil(t, login.UserID)
	assert.NotEmpty(t, login.RequestID)

	list := entries[1]
	require.NotNil(t, list.UserID)
	assert.Equal(t, uint(2), *list.UserID)
}
