package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/pkg/apperror"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.CredentialsRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.CredentialsRequest) (*dto.TokenPairResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.TokenPairResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AccessTokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AccessTokenResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Authenticate(ctx context.Context, accessToken string) (uint, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(uint), args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context, userID uint) (*dto.MeResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.MeResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) UpgradeToPro(ctx context.Context, userID uint) (*dto.UpgradeResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.UpgradeResponse)
	return resp, args.Error(1)
}

type mockNewsService struct {
	mock.Mock
}

func (m *mockNewsService) FetchRaw(ctx context.Context, country, language string) ([]dto.RawArticle, error) {
	args := m.Called(ctx, country, language)
	resp, _ := args.Get(0).([]dto.RawArticle)
	return resp, args.Error(1)
}

func (m *mockNewsService) IngestWithSentiment(ctx context.Context, country string) (*dto.SentimentNewsResponse, error) {
	args := m.Called(ctx, country)
	resp, _ := args.Get(0).(*dto.SentimentNewsResponse)
	return resp, args.Error(1)
}

func (m *mockNewsService) ListStored(ctx context.Context, country, language string) (*dto.StoredNewsResponse, error) {
	args := m.Called(ctx, country, language)
	resp, _ := args.Get(0).(*dto.StoredNewsResponse)
	return resp, args.Error(1)
}

type mockMoodLogService struct {
	mock.Mock
}

func (m *mockMoodLogService) Append(ctx context.Context, userID uint, req *dto.CreateSentimentLogRequest) (*dto.SentimentLogResponse, error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*dto.SentimentLogResponse)
	return resp, args.Error(1)
}

func (m *mockMoodLogService) ListByUser(ctx context.Context, userID uint) ([]*dto.SentimentLogResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).([]*dto.SentimentLogResponse)
	return resp, args.Error(1)
}

type testServer struct {
	echo    *echo.Echo
	auth    *mockAuthService
	news    *mockNewsService
	moodLog *mockMoodLogService
}

// newTestServer wires the handlers the same way the API binary does.
func newTestServer() *testServer {
	s := &testServer{
		echo:    echo.New(),
		auth:    new(mockAuthService),
		news:    new(mockNewsService),
		moodLog: new(mockMoodLogService),
	}
	log := logger.NewNop()

	requireAuth := BearerAuth(s.auth, log)
	api := s.echo.Group("/api")
	NewAuthHandler(s.auth, log).RegisterRoutes(api.Group("/auth"), requireAuth)
	NewNewsHandler(s.news, log).RegisterRoutes(api)
	NewMoodLogHandler(s.moodLog, log).RegisterRoutes(api.Group("/moodlog", requireAuth))
	return s
}

func (s *testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewsHandler_GetNewsWithoutParams(t *testing.T) {
	s := newTestServer()
	s.news.On("FetchRaw", mock.Anything, "", "").
		Return(nil, apperror.InvalidRequest("Country or language code is required"))

	rec := s.do(http.MethodGet, "/api/news", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "Country or language code is required"}, decodeMap(t, rec))
}

func TestNewsHandler_GetNews(t *testing.T) {
	s := newTestServer()
	s.news.On("FetchRaw", mock.Anything, "th", "").Return([]dto.RawArticle{
		{Title: "One", URL: "https://n.example/1", PublishedAt: "2024-05-01 10:00:00"},
	}, nil)

	rec := s.do(http.MethodGet, "/api/news?country=th", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "One", body[0]["title"])
	assert.Equal(t, "2024-05-01 10:00:00", body[0]["publishedAt"])
	assert.Contains(t, body[0], "imageUrl")
	assert.Nil(t, body[0]["description"])
}

func TestNewsHandler_GetSentimentNews(t *testing.T) {
	s := newTestServer()
	s.news.On("IngestWithSentiment", mock.Anything, "").
		Return(nil, apperror.InvalidRequest("Country parameter is required")).Once()
	s.news.On("IngestWithSentiment", mock.Anything, "us").Return(&dto.SentimentNewsResponse{
		Status:       "success",
		TotalResults: 1,
		Results:      []dto.EnrichedArticle{{Title: "One", URL: "https://n.example/1", Sentiment: "positive"}},
	}, nil)

	rec := s.do(http.MethodGet, "/api/sentiment", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Country parameter is required", decodeMap(t, rec)["error"])

	rec = s.do(http.MethodGet, "/api/sentiment?country=us", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 1, body["totalResults"])
	results := body["results"].([]interface{})
	assert.Equal(t, "positive", results[0].(map[string]interface{})["sentiment"])
}

func TestNewsHandler_ProviderErrors(t *testing.T) {
	s := newTestServer()
	s.news.On("IngestWithSentiment", mock.Anything, "us").
		Return(nil, apperror.Provider(401, "NewsData API request failed: API key invalid")).Once()
	s.news.On("IngestWithSentiment", mock.Anything, "jp").
		Return(nil, apperror.Transport(assert.AnError)).Once()

	rec := s.do(http.MethodGet, "/api/sentiment?country=us", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NewsData API request failed: API key invalid", decodeMap(t, rec)["error"])

	rec = s.do(http.MethodGet, "/api/sentiment?country=jp", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeMap(t, rec), "error")
}

func TestNewsHandler_GetStoredNews(t *testing.T) {
	s := newTestServer()
	s.news.On("ListStored", mock.Anything, "us", "en").
		Return(&dto.StoredNewsResponse{Results: []dto.EnrichedArticle{}}, nil)

	rec := s.do(http.MethodGet, "/api/stored?country=us&language=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestBearerAuth(t *testing.T) {
	s := newTestServer()
	s.auth.On("Authenticate", mock.Anything, "bad-token").
		Return(uint(0), apperror.Auth("Given token not valid"))

	rec := s.do(http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]interface{}{"detail": "Authentication credentials were not provided."}, decodeMap(t, rec))

	rec = s.do(http.MethodGet, "/api/auth/me", "", "bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Given token not valid", decodeMap(t, rec)["detail"])

	req := httptest.NewRequest(http.MethodGet, "/api/moodlog", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.moodLog.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register(t *testing.T) {
	s := newTestServer()
	s.auth.On("Register", mock.Anything, &dto.CredentialsRequest{Email: "ana@example.com", Password: "pw"}).Return(nil).Once()
	s.auth.On("Register", mock.Anything, &dto.CredentialsRequest{Email: "ana@example.com", Password: "pw"}).
		Return(apperror.Conflict("User already exists.")).Once()

	rec := s.do(http.MethodPost, "/api/auth/register", `{"email":"ana@example.com","password":"pw"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]interface{}{"detail": "User created successfully."}, decodeMap(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/register", `{"email":"ana@example.com","password":"pw"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]interface{}{"detail": "User already exists."}, decodeMap(t, rec))
}

func TestAuthHandler_Login(t *testing.T) {
	s := newTestServer()
	s.auth.On("Login", mock.Anything, &dto.CredentialsRequest{Email: "ana@example.com", Password: "pw"}).
		Return(&dto.TokenPairResponse{Refresh: "r", Access: "a"}, nil)
	s.auth.On("Login", mock.Anything, &dto.CredentialsRequest{Email: "ana@example.com", Password: "nope"}).
		Return(nil, apperror.Auth("Invalid credentials"))

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"refresh":"r","access":"a"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeMap(t, rec)["detail"])
}

func TestAuthHandler_MeAndUpgrade(t *testing.T) {
	s := newTestServer()
	s.auth.On("Authenticate", mock.Anything, "good").Return(uint(7), nil)
	s.auth.On("Me", mock.Anything, uint(7)).Return(&dto.MeResponse{Email: "ana@example.com", ID: 7, IsPro: false}, nil)
	s.auth.On("UpgradeToPro", mock.Anything, uint(7)).
		Return(&dto.UpgradeResponse{Detail: "User upgraded to Pro successfully.", IsPro: true}, nil).Once()
	s.auth.On("UpgradeToPro", mock.Anything, uint(7)).
		Return(nil, apperror.NotFound("No profile found")).Once()

	rec := s.do(http.MethodGet, "/api/auth/me", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ana@example.com","id":7,"isPro":false}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/upgrade-to-pro", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"detail":"User upgraded to Pro successfully.","isPro":true}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/upgrade-to-pro", "", "good")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No profile found", decodeMap(t, rec)["detail"])
}

func TestMoodLogHandler_IgnoresClientUser(t *testing.T) {
	s := newTestServer()
	s.auth.On("Authenticate", mock.Anything, "good").Return(uint(7), nil)

	expected := &dto.CreateSentimentLogRequest{
		CountryCode:  "us",
		ArticleTitle: "Markets rally",
		ArticleURL:   "https://n.example/1",
		Sentiment:    "positive",
	}
	s.moodLog.On("Append", mock.Anything, uint(7), expected).
		Return(&dto.SentimentLogResponse{ID: 1, User: 7, CountryCode: "us", Sentiment: "positive"}, nil)

	body := `{"user":999,"country_code":"us","article_title":"Markets rally","article_url":"https://n.example/1","sentiment":"positive"}`
	rec := s.do(http.MethodPost, "/api/moodlog", body, "good")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 7, decodeMap(t, rec)["user"])
	s.moodLog.AssertExpectations(t)
}

func TestMoodLogHandler_ValidationErrors(t *testing.T) {
	s := newTestServer()
	s.auth.On("Authenticate", mock.Anything, "good").Return(uint(7), nil)
	s.moodLog.On("Append", mock.Anything, uint(7), mock.Anything).
		Return(nil, apperror.Validation(map[string]string{
			"sentiment":   `"happy" is not a valid choice.`,
			"article_url": "Enter a valid URL.",
		}))

	rec := s.do(http.MethodPost, "/api/moodlog", `{"sentiment":"happy","article_url":"nope"}`, "good")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"sentiment":["\"happy\" is not a valid choice."],"article_url":["Enter a valid URL."]}`, rec.Body.String())
}

func TestMoodLogHandler_List(t *testing.T) {
	s := newTestServer()
	s.auth.On("Authenticate", mock.Anything, "good").Return(uint(7), nil)
	s.moodLog.On("ListByUser", mock.Anything, uint(7)).
		Return([]*dto.SentimentLogResponse{{ID: 1, User: 7}, {ID: 2, User: 7}}, nil)

	rec := s.do(http.MethodGet, "/api/moodlog", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	token, ok = bearerToken("bearer   abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = bearerToken("Bearer")
	assert.False(t, ok)
	_, ok = bearerToken("")
	assert.False(t, ok)
	_, ok = bearerToken("Token abc")
	assert.False(t, ok)
}
