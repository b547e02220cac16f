package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudoswall/kudos-wall-backend/internal/application"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/infrastructure/memory"
	"github.com/kudoswall/kudos-wall-backend/internal/interface/middleware"
	"github.com/kudoswall/kudos-wall-backend/pkg/helpers"
)

// testServer wires the full handler stack against in-memory adapters,
// mirroring the production route table minus rate limiting.
type testServer struct {
	router *gin.Engine
	emails *memory.EmailCapture
	kudos  *memory.KudosRepository
	tokens *helpers.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	roles := memory.NewRoleRepository()
	users := memory.NewUserRepository(roles)
	kudos := memory.NewKudosRepository()
	categories := memory.NewCategoryRepository(
		entity.ReconstituteCategory(1, "Teamwork"),
		entity.ReconstituteCategory(2, "Innovation"),
	)
	emails := memory.NewEmailCapture()
	tokens := helpers.NewTokenManager(30 * time.Minute)
	logger := logrus.New()

	authSvc := application.NewAuthService(users, roles, emails, tokens, logger)
	kudosSvc := application.NewKudosService(kudos, users, categories, logger)
	categorySvc := application.NewCategoryService(categories)
	userSvc := application.NewUserService(users)
	testSvc := application.NewTestSupportService(users, kudos)

	authHandler := NewAuthHandler(authSvc, logger)
	kudosHandler := NewKudosHandler(kudosSvc, logger)
	categoryHandler := NewCategoryHandler(categorySvc, logger)
	userHandler := NewUserHandler(userSvc, logger)
	testHandler := NewTestSupportHandler(testSvc, emails, logger)
	system := NewSystemHandler("kudos-wall-backend")

	r := gin.New()
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	auth := r.Group("/", middleware.Auth(tokens))
	auth.GET("/categories", categoryHandler.List)
	auth.GET("/users/recipients", userHandler.Recipients)
	auth.POST("/kudos", kudosHandler.Create)

	r.POST("/test-support/users", testHandler.CreateUser)
	r.POST("/test-support/cleanup", testHandler.Cleanup)
	r.GET("/test-support/email-verification", testHandler.VerifyEmailSent)

	r.GET("/health", system.Health)
	r.GET("/", system.Root)
	r.NoRoute(system.NotFound)

	return &testServer{router: r, emails: emails, kudos: kudos, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *testServer) register(t *testing.T, name, email, password string, roleID int) map[string]any {
	t.Helper()
	w := s.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "password": password, "roleId": roleID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func TestRegisterEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := s.register(t, "Alice", "alice@example.com", "Str0ngPass!", 2)

	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "alice@example.com", data["email"])

	assert.True(t, s.emails.WasSentTo("alice@example.com"))
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Alice", "alice@example.com", "Str0ngPass!", 2)

	w := s.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Alice Again", "email": "alice@example.com", "password": "Str0ngPass!", "roleId": 2,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User with this email already exists", body["message"])
}

func TestRegisterEndpointValidation(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name    string
		payload gin.H
		message string
	}{
		{"missing name", gin.H{"email": "a@b.co", "password": "Str0ngPass!", "roleId": 2}, "Name is required."},
		{"bad email", gin.H{"name": "A", "email": "nope", "password": "Str0ngPass!", "roleId": 2}, "Invalid email format"},
		{"weak password", gin.H{"name": "A", "email": "a@b.co", "password": "short", "roleId": 2}, "Password must be at least 8 characters long"},
		{"missing role", gin.H{"name": "A", "email": "a@b.co", "password": "Str0ngPass!"}, "Role Id is required"},
		{"unknown role", gin.H{"name": "A", "email": "a@b.co", "password": "Str0ngPass!", "roleId": 9}, "Role does not exist."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/auth/register", "", tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decode(t, w)["message"])
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Lena", "lead@example.com", "Str0ngPass!", 1)

	w := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "lead@example.com", "password": "Str0ngPass!"})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "Lena", user["name"])
	assert.Equal(t, true, user["isTeamLead"])
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Alice", "alice@example.com", "Str0ngPass!", 2)

	unknown := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "ghost@example.com", "password": "Str0ngPass!"})
	wrongPass := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "alice@example.com", "password": "WrongPass1!"})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, decode(t, unknown)["message"], decode(t, wrongPass)["message"])
	assert.Equal(t, "Invalid email or password", decode(t, unknown)["message"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/categories"},
		{http.MethodGet, "/users/recipients"},
		{http.MethodPost, "/kudos"},
	} {
		w := s.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.path)
		assert.Equal(t, "authToken in headers is required", decode(t, w)["message"], tc.path)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Alice", "alice@example.com", "Str0ngPass!", 2)
	token := s.login(t, "alice@example.com", "Str0ngPass!")

	w := s.do(t, http.MethodGet, "/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Teamwork", first["name"])
}

func TestRecipientsEndpointEmptyRosterKeepsDataField(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Alice", "alice@example.com", "Str0ngPass!", 2)
	token := s.login(t, "alice@example.com", "Str0ngPass!")

	w := s.do(t, http.MethodGet, "/users/recipients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	data, ok := body["data"]
	require.True(t, ok, "data key must be present even for an empty roster")
	assert.Equal(t, []any{}, data)
}

func TestRecipientsEndpointExcludesCaller(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Alice", "alice@example.com", "Str0ngPass!", 2)
	s.register(t, "Bob", "bob@example.com", "Str0ngPass!", 2)
	token := s.login(t, "alice@example.com", "Str0ngPass!")

	w := s.do(t, http.MethodGet, "/users/recipients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Bob", data[0].(map[string]any)["name"])
}

func TestCreateKudosEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Lena Lead", "lead@example.com", "Str0ngPass!", 1)
	bob := s.register(t, "Bob", "bob@example.com", "Str0ngPass!", 2)
	bobID := bob["data"].(map[string]any)["id"].(string)
	token := s.login(t, "lead@example.com", "Str0ngPass!")

	w := s.do(t, http.MethodPost, "/kudos", token, gin.H{
		"recipientId": bobID,
		"categoryId":  1,
		"message":     "Thanks for the thorough code reviews this week!",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "Lena Lead", data["senderName"])
	assert.Equal(t, "Bob", data["receiverName"])
	assert.Equal(t, "Teamwork", data["categoryName"])

	require.Len(t, s.kudos.All(), 1)
}

func TestCreateKudosEndpointBusinessErrors(t *testing.T) {
	s := newTestServer(t)
	lead := s.register(t, "Lena Lead", "lead@example.com", "Str0ngPass!", 1)
	leadID := lead["data"].(map[string]any)["id"].(string)
	bob := s.register(t, "Bob", "bob@example.com", "Str0ngPass!", 2)
	bobID := bob["data"].(map[string]any)["id"].(string)

	leadToken := s.login(t, "lead@example.com", "Str0ngPass!")
	bobToken := s.login(t, "bob@example.com", "Str0ngPass!")

	longEnough := strings.Repeat("x", 30)

	cases := []struct {
		name    string
		token   string
		payload gin.H
		message string
	}{
		{"member sender", bobToken, gin.H{"recipientId": leadID, "categoryId": 1, "message": longEnough}, "Sender is not a team lead"},
		{"unknown category", leadToken, gin.H{"recipientId": bobID, "categoryId": 42, "message": longEnough}, "Invalid category"},
		{"unknown recipient", leadToken, gin.H{"recipientId": "ghost", "categoryId": 1, "message": longEnough}, "Invalid recipient"},
		{"short message", leadToken, gin.H{"recipientId": bobID, "categoryId": 1, "message": "too short"}, "Message must be at least 20 characters long"},
		{"long message", leadToken, gin.H{"recipientId": bobID, "categoryId": 1, "message": strings.Repeat("x", 201)}, "Message cannot exceed 200 characters"},
		{"self kudos", leadToken, gin.H{"recipientId": leadID, "categoryId": 1, "message": longEnough}, "Cannot create kudos for yourself"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/kudos", tc.token, tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decode(t, w)["message"])
		})
	}
	assert.Empty(t, s.kudos.All())
}

func TestTestSupportEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/test-support/users", "", gin.H{
		"name": "Fixture Lead", "email": "teamlead@test.com", "password": "Password123!", "roleId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Fixture users bypass the confirmation flow entirely
	v := s.do(t, http.MethodGet, "/test-support/email-verification?email=teamlead@test.com", "", nil)
	require.Equal(t, http.StatusOK, v.Code)
	assert.Equal(t, false, decode(t, v)["data"].(map[string]any)["sent"])

	s.register(t, "Alice", "alice@example.com", "Str0ngPass!", 2)
	v = s.do(t, http.MethodGet, "/test-support/email-verification?email=alice@example.com", "", nil)
	assert.Equal(t, true, decode(t, v)["data"].(map[string]any)["sent"])

	c := s.do(t, http.MethodPost, "/test-support/cleanup", "", nil)
	require.Equal(t, http.StatusOK, c.Code)

	// Capture is reset and users are gone
	v = s.do(t, http.MethodGet, "/test-support/email-verification?email=alice@example.com", "", nil)
	assert.Equal(t, false, decode(t, v)["data"].(map[string]any)["sent"])
	login := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "alice@example.com", "password": "Str0ngPass!"})
	assert.Equal(t, http.StatusUnauthorized, login.Code)
}

func TestTestSupportCreateUserValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/test-support/users", "", gin.H{
		"name": "Weak", "email": "weak@test.com", "password": "weak", "roleId": 2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password must be at least 8 characters long", decode(t, w)["message"])
}

func TestSystemEndpoints(t *testing.T) {
	s := newTestServer(t)

	h := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, h.Code)
	health := decode(t, h)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "kudos-wall-backend", health["service"])
	assert.Equal(t, "1.0.0", health["version"])

	root := s.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, root.Code)
	assert.Contains(t, root.Body.String(), "/auth/register")

	nf := s.do(t, http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, nf.Code)
	body := decode(t, nf)
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "Route /nope not found", body["message"])
}
