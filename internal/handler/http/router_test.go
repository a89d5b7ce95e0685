package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-gateway-go/internal/pkg/database"
	"github.com/attendly/attendance-gateway-go/internal/pkg/jwt"
	"github.com/attendly/attendance-gateway-go/internal/pkg/upstream"
	"github.com/attendly/attendance-gateway-go/internal/repository/sqlite"
	authSvc "github.com/attendly/attendance-gateway-go/internal/service/auth"
	historySvc "github.com/attendly/attendance-gateway-go/internal/service/history"
	leaveSvc "github.com/attendly/attendance-gateway-go/internal/service/leave"
	noteSvc "github.com/attendly/attendance-gateway-go/internal/service/note"
	profileSvc "github.com/attendly/attendance-gateway-go/internal/service/profile"
	punchSvc "github.com/attendly/attendance-gateway-go/internal/service/punch"
	reportSvc "github.com/attendly/attendance-gateway-go/internal/service/report"
	settingsSvc "github.com/attendly/attendance-gateway-go/internal/service/settings"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// fakeBackend serves the endpoints the gateway proxies to.
func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/login_pin", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var body struct {
			PIN string `json:"pin"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.PIN != "1234" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"msg":"Invalid PIN"}`))
			return
		}
		w.Write([]byte(`{"success":true,"employee":{"id":"42","name":"Asha","emp_code":"E042"}}`))
	})

	mux.HandleFunc("/mobile/history/42", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{
			"attendance": [
				{"date":"2024-03-01","time_in":"09:00","time_out":"17:30"},
				{"date":"2024-03-04","time_in":"09:15","time_out":"18:00"}
			],
			"leaves": [
				{"date":"2024-03-05","reason":"Sick","leave_type":"Full Day"}
			]
		}`))
	})

	mux.HandleFunc("/mobile/punch", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"success":true,"msg":"Clocked in at 09:02 AM"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	backend := newFakeBackend(t)
	client := upstream.NewClient(backend.URL, 2*time.Second)

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "gateway.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")

	historyService := historySvc.NewHistoryService(client)
	noteService := noteSvc.NewNoteService(sqlite.NewNoteRepository(db))

	h := Handlers{
		Auth:     NewAuthHandler(authSvc.NewAuthService(client, sqlite.NewRegisteredUserRepository(db), jwtService), jwtService),
		Punch:    NewPunchHandler(punchSvc.NewPunchService(client)),
		History:  NewHistoryHandler(historyService),
		Leave:    NewLeaveHandler(leaveSvc.NewLeaveService(client)),
		Profile:  NewProfileHandler(profileSvc.NewProfileService(client)),
		Note:     NewNoteHandler(noteService),
		Settings: NewSettingsHandler(settingsSvc.NewSettingsService(sqlite.NewSettingsRepository(db))),
		Report:   NewReportHandler(reportSvc.NewReportService(historyService)),
	}

	return NewRouter(jwtService, "test", h)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"pin": "1234"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid pin", func(t *testing.T) {
		token := login(t, router)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong pin surfaces the backend message", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"pin": "9999"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid PIN")
	})

	t.Run("malformed pin is rejected before the backend", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"pin": "12"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestAuthGuard(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/history/42/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHistoryEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	t.Run("timeline merges attendance and leaves", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/history/42/", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Records []struct {
					Date    string `json:"date"`
					IsLeave bool   `json:"is_leave"`
				} `json:"records"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Records, 3)
	})

	t.Run("month view", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/history/42/month?year=2024&month=3", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				MonthName string `json:"month_name"`
				Stats     struct {
					TotalDays   int `json:"total_days"`
					PresentDays int `json:"present_days"`
					LeaveDays   int `json:"leave_days"`
				} `json:"stats"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "March", resp.Data.MonthName)
		assert.Equal(t, 3, resp.Data.Stats.TotalDays)
		assert.Equal(t, 2, resp.Data.Stats.PresentDays)
		assert.Equal(t, 1, resp.Data.Stats.LeaveDays)
	})

	t.Run("single day", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/history/42/day/2024-03-05", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sick")
	})

	t.Run("missing day", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/history/42/day/2024-03-20", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPunchEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/punch", token, map[string]string{
		"pin":  "1234",
		"type": "in",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Clocked in at 09:02 AM")
}

func TestNoteEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/notes", token, map[string]string{
		"date": "2024-03-01",
		"text": "Dentist at 5",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/notes/2024-03-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dentist at 5")

	rec = doJSON(t, router, http.MethodGet, "/api/v1/notes/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/notes/2024-03-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/notes/2024-03-01", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestThemeEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/settings/theme", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dark":false`)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/settings/theme", token, map[string]bool{"dark": true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/settings/theme", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dark":true`)
}

func TestReportEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports/42/monthly.pdf?year=2024&month=3&name=Asha", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestLogout(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Token works before logout.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/history/42/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The revoked token keeps failing authentication everywhere.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/history/42/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A fresh login is unaffected.
	fresh := login(t, router)
	rec = doJSON(t, router, http.MethodGet, "/api/v1/history/42/", fresh, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
