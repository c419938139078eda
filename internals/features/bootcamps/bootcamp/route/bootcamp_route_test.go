package route

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devcamper_backend/internals/configs"
	"devcamper_backend/internals/constants"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
	"devcamper_backend/internals/helpers/storage"
	authMiddleware "devcamper_backend/internals/middlewares/auth"
)

const secret = "bootcamp-secret"

type principals map[uuid.UUID]*helperAuth.Principal

func (p principals) FindPrincipal(_ context.Context, id uuid.UUID) (*helperAuth.Principal, error) {
	if u, ok := p[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newApp(t *testing.T, users principals) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	store, err := storage.NewLocal(t.TempDir(), "http://localhost:5000/uploads")
	require.NoError(t, err)

	cfg := configs.Config{MaxFileUpload: 1000000, MaxImageDimension: 1600}
	protect := authMiddleware.Protect(authMiddleware.ProtectConfig{Secret: secret, Users: users})

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	BootcampRoutes(app.Group("/api/v1"), db, protect, store, cfg)
	return app, mock
}

func tokenFor(t *testing.T, p *helperAuth.Principal) string {
	t.Helper()
	tok, err := helperAuth.IssueToken(secret, p.ID, p.Role, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, app *fiber.App, method, target, body, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestBootcampRoutes_RequiresToken(t *testing.T) {
	app, _ := newApp(t, principals{})

	status, body := do(t, app, "POST", "/api/v1/bootcamps", `{}`, "")
	assert.Equal(t, 401, status)
	assert.Equal(t, helper.MsgNotAuthorized, body["error"])

	status, _ = do(t, app, "PUT", "/api/v1/bootcamps/"+uuid.NewString(), `{}`, "garbage")
	assert.Equal(t, 401, status)

	ghost := &helperAuth.Principal{ID: uuid.New(), Role: constants.RolePublisher}
	status, _ = do(t, app, "DELETE", "/api/v1/bootcamps/"+uuid.NewString(), "", tokenFor(t, ghost))
	assert.Equal(t, 401, status)
}

func TestBootcampRoutes_RoleGate(t *testing.T) {
	user := &helperAuth.Principal{ID: uuid.New(), Role: constants.RoleUser}
	app, _ := newApp(t, principals{user.ID: user})

	status, body := do(t, app, "POST", "/api/v1/bootcamps", `{}`, tokenFor(t, user))
	assert.Equal(t, 403, status)
	assert.Equal(t, "User role user is not authorized to access this route", body["error"])
}

func TestBootcampRoutes_UpdateByNonOwner(t *testing.T) {
	owner := uuid.New()
	other := &helperAuth.Principal{ID: uuid.New(), Role: constants.RolePublisher}
	app, mock := newApp(t, principals{other.ID: other})
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "bootcamps" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).AddRow(id.String(), "Devworks", owner.String()))

	status, _ := do(t, app, "PUT", "/api/v1/bootcamps/"+id.String(), `{"housing":true}`, tokenFor(t, other))
	assert.Equal(t, 403, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootcampRoutes_SecondBootcamp(t *testing.T) {
	pub := &helperAuth.Principal{ID: uuid.New(), Role: constants.RolePublisher}
	app, mock := newApp(t, principals{pub.ID: pub})

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs(pub.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bootcamps" WHERE user_id = \$1`).
		WithArgs(pub.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	body := `{"name":"Second","description":"d","email":"a@b.io","address":"x","careers":["Business"]}`
	status, out := do(t, app, "POST", "/api/v1/bootcamps", body, tokenFor(t, pub))
	assert.Equal(t, 400, status)
	assert.Contains(t, out["error"], "has already published a bootcamp")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootcampRoutes_ListSecondPage(t *testing.T) {
	app, mock := newApp(t, principals{})
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bootcamps"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT \* FROM "bootcamps" ORDER BY "created_at","id" LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "careers"}).
			AddRow(ids[0].String(), "third", "{Business}").
			AddRow(ids[1].String(), "fourth", "{Other}"))
	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE "courses"."bootcamp_id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bootcamp_id", "title"}).
			AddRow(uuid.NewString(), ids[0].String(), "Front End"))

	status, body := do(t, app, "GET", "/api/v1/bootcamps?limit=2&page=2", "", "")
	require.Equal(t, 200, status)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, float64(5), body["total"])

	data := body["data"].([]any)
	assert.Equal(t, "third", data[0].(map[string]any)["name"])
	assert.Len(t, data[0].(map[string]any)["courses"], 1)
	assert.Equal(t, "fourth", data[1].(map[string]any)["name"])

	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, map[string]any{"page": float64(3), "limit": float64(2)}, pagination["next"])
	assert.Equal(t, map[string]any{"page": float64(1), "limit": float64(2)}, pagination["prev"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
