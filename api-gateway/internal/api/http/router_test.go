package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nuerpay-gateway/api-gateway/internal/domain"
	"nuerpay-gateway/api-gateway/internal/graph"
	"nuerpay-gateway/api-gateway/internal/metrics"
	"nuerpay-gateway/api-gateway/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type graphqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newTestRouter(t *testing.T, svc *mocks.GatewayServiceInterface, playground bool) (http.Handler, *metrics.Metrics) {
	m := metrics.New()
	schema, err := graph.NewSchema(graph.NewResolver(svc, nil, m))
	require.NoError(t, err)
	return NewRouter(NewHandler(&schema, m.Handler(), playground), []string{"*"}, nil), m
}

func postGraphQL(router http.Handler, query string, header map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeGraphQL(t *testing.T, rr *httptest.ResponseRecorder) graphqlResponse {
	var resp graphqlResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestRouter_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, mocks.NewGatewayServiceInterface(t), false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy","service":"api-gateway"}`, rr.Body.String())
}

func TestRouter_ForwardsAuthorization(t *testing.T) {
	svc := mocks.NewGatewayServiceInterface(t)
	svc.On("RestaurantsByAdmin", mock.Anything, "Bearer admin-jwt").
		Return([]domain.Restaurant{{ID: domain.NewScalar("r1"), Name: domain.NewScalar("Pizza")}}, nil).Once()
	router, _ := newTestRouter(t, svc, false)

	rr := postGraphQL(router, `{ getRestaurantByAdmin { _id name } }`, map[string]string{
		"Authorization": "Bearer admin-jwt",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeGraphQL(t, rr)
	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `[{"_id":"r1","name":"Pizza"}]`, string(resp.Data["getRestaurantByAdmin"]))
}

func TestRouter_GetQuery(t *testing.T) {
	svc := mocks.NewGatewayServiceInterface(t)
	svc.On("Restaurant", mock.Anything, "r1").Return(&domain.Restaurant{ID: domain.NewScalar("r1"), Name: domain.NewScalar("Pizza")}, nil).Once()
	router, _ := newTestRouter(t, svc, false)

	req := httptest.NewRequest(http.MethodGet, "/graphql?query="+url.QueryEscape(`{restaurant(_id:"r1"){name}}`), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeGraphQL(t, rr)
	assert.JSONEq(t, `{"name":"Pizza"}`, string(resp.Data["restaurant"]))
}

func TestRouter_FailedFieldIsNull(t *testing.T) {
	svc := mocks.NewGatewayServiceInterface(t)
	svc.On("OrderByID", mock.Anything, "o1").Return(nil, errors.New("status 404: not found")).Once()
	svc.On("Restaurant", mock.Anything, "r1").Return(&domain.Restaurant{Name: domain.NewScalar("Pizza")}, nil).Once()
	router, m := newTestRouter(t, svc, false)

	rr := postGraphQL(router, `{ orderById(_id: "o1") { _id } restaurant(_id: "r1") { name } }`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeGraphQL(t, rr)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, "null", string(resp.Data["orderById"]))
	assert.JSONEq(t, `{"name":"Pizza"}`, string(resp.Data["restaurant"]))

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `gateway_graphql_field_failures_total{field="orderById"} 1`)
}

func TestRouter_LoginErrorSurfaced(t *testing.T) {
	svc := mocks.NewGatewayServiceInterface(t)
	svc.On("Login", mock.Anything, mock.AnythingOfType("domain.Credentials")).
		Return(nil, errors.New("status 401: Invalid email/password")).Once()
	router, _ := newTestRouter(t, svc, false)

	rr := postGraphQL(router, `mutation { login(email: "a@b.c", password: "x") { access_token } }`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeGraphQL(t, rr)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Message, "login failed")
}

func TestRouter_RequestID(t *testing.T) {
	router, _ := newTestRouter(t, mocks.NewGatewayServiceInterface(t), false)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	generated := rr.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))
}

func TestRouter_UnmatchedRoutesCarryRequestID(t *testing.T) {
	router, _ := newTestRouter(t, mocks.NewGatewayServiceInterface(t), false)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantCode: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPut, path: "/graphql", wantCode: http.StatusMethodNotAllowed},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(testCase.method, testCase.path, nil))

			assert.Equal(t, testCase.wantCode, rr.Code)
			assert.Len(t, rr.Header().Get(RequestIDHeader), 36)
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	router, m := newTestRouter(t, mocks.NewGatewayServiceInterface(t), false)
	m.FieldFailed("restaurant")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "gateway_graphql_field_failures_total")
}

func TestRouter_Playground(t *testing.T) {
	tests := []struct {
		name       string
		playground bool
		wantCode   int
	}{
		{name: "enabled", playground: true, wantCode: http.StatusOK},
		{name: "disabled", playground: false, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, _ := newTestRouter(t, mocks.NewGatewayServiceInterface(t), testCase.playground)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept", "text/html")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
			if testCase.playground {
				assert.Contains(t, rr.Body.String(), "<html")
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, mocks.NewGatewayServiceInterface(t), false)

	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRecovery(t *testing.T) {
	r := mux.NewRouter()
	r.Use(requestContext(zap.NewNop()), recovery(zap.NewNop()))
	r.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"an internal error occurred"}`, rr.Body.String())
}

func TestRequestContext_AccessToken(t *testing.T) {
	var seen string
	h := requestContext(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = graph.AccessToken(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "raw-token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "raw-token", seen)
}
