package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopcart/internal/domain/model"
	"shopcart/internal/handler"
	"shopcart/internal/repository"
	"shopcart/internal/repository/repomock"
	"shopcart/internal/usecase"
	auth "shopcart/internal/usecase/auth_usecase"
	"shopcart/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedID struct{}

func (fixedID) NewID() string { return "jti" }

type testAPI struct {
	e     *echo.Echo
	repos *repomock.Repos
	tx    *repomock.TxManager
}

func newTestAPI() *testAPI {
	logger := log.New("test")
	logger.SetOutput(io.Discard)

	repos := repomock.NewRepos()
	tx := &repomock.TxManager{Repos: repos}

	details := auth.NewUserDetailsService(repos.UserRepo, logger)
	registerUC := auth.NewRegisterUserUsecase(tx, repos.UserRepo, auth.NewBcryptPasswordHasher(bcrypt.MinCost), validator.NewUserValidator(), logger)
	loginUC := auth.NewLoginUsecase(details, auth.NewBcryptPasswordVerifier(), auth.NewJWTIssuer("secret", time.Hour, fixedID{}), fixedClock{now: time.Now()})

	e := echo.New()
	api := e.Group("/api")
	handler.NewUserHandler(usecase.NewUserUsecase(repos.UserRepo, logger), registerUC).RegisterRoutes(api)
	handler.NewItemHandler(usecase.NewItemUsecase(repos.ItemRepo, logger)).RegisterRoutes(api)
	handler.NewCartHandler(usecase.NewCartUsecase(tx, repos.UserRepo, repos.ItemRepo, logger)).RegisterRoutes(api)
	handler.NewOrderHandler(usecase.NewOrderUsecase(tx, repos.UserRepo, false, logger)).RegisterRoutes(api)
	handler.NewAuthHandler(loginUC).RegisterRoutes(e)

	return &testAPI{e: e, repos: repos, tx: tx}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func sampleItem() model.Item {
	return model.Item{ID: 1, Name: "Round Widget", Description: "A widget that is round", Price: decimal.RequireFromString("2.99")}
}

func sampleUser() *model.User {
	cart := model.NewCart()
	cart.ID = 5
	cart.UserID = 1
	return &model.User{ID: 1, Username: "alice", PasswordHash: "hash", CartID: 5, Cart: cart}
}

// =====================
// User
// =====================

func TestCreateUser(t *testing.T) {
	a := newTestAPI()
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
	a.repos.CartRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Cart).ID = 5 }).
		Return(nil)
	a.repos.UserRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*model.User).ID = 1 }).
		Return(nil)
	a.repos.CartRepo.On("AttachUser", mock.Anything, int64(5), int64(1)).Return(nil)

	rec := a.do(http.MethodPost, "/api/user/create", `{"username":"alice","password":"secret1","confirmPassword":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, rec.Body.String(), "secret1")

	cart := body["cart"].(map[string]interface{})
	assert.Equal(t, float64(5), cart["id"])
	assert.Equal(t, "0", cart["total"])
	assert.Equal(t, []interface{}{}, cart["items"])
	assert.NotContains(t, cart, "user_id")
	assert.Len(t, cart, 3)
}

func TestCreateUser_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		setup  func(a *testAPI)
		status int
	}{
		{
			name:   "short password",
			body:   `{"username":"alice","password":"abc","confirmPassword":"abc"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "mismatch",
			body:   `{"username":"alice","password":"secret1","confirmPassword":"Secret1"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "bad json",
			body:   `{"username":`,
			status: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"username":"alice","password":"secret1","confirmPassword":"secret1"}`,
			setup: func(a *testAPI) {
				a.repos.UserRepo.On("FindByUsername", mock.Anything, "alice").Return(sampleUser(), nil)
			},
			status: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAPI()
			if tc.setup != nil {
				tc.setup(a)
			}

			rec := a.do(http.MethodPost, "/api/user/create", tc.body)

			assert.Equal(t, tc.status, rec.Code)
			a.repos.UserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetUser(t *testing.T) {
	a := newTestAPI()
	a.repos.UserRepo.On("FindByID", mock.Anything, int64(1)).Return(sampleUser(), nil)
	a.repos.UserRepo.On("FindByID", mock.Anything, int64(2)).Return(nil, repository.ErrUserNotFound)
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "alice").Return(sampleUser(), nil)
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "bob").Return(nil, repository.ErrUserNotFound)

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/user/id/1", "").Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/user/id/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/user/id/abc", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/user/alice", "").Code)

	rec := a.do(http.MethodGet, "/api/user/bob", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

// =====================
// Item
// =====================

func TestItems(t *testing.T) {
	a := newTestAPI()
	a.repos.ItemRepo.On("List", mock.Anything).Return([]model.Item{sampleItem()}, nil)
	a.repos.ItemRepo.On("FindByID", mock.Anything, int64(1)).Return(sampleItem(), nil)
	a.repos.ItemRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Item{}, repository.ErrNotFound)
	a.repos.ItemRepo.On("FindByName", mock.Anything, "Round Widget").Return([]model.Item{sampleItem()}, nil)
	a.repos.ItemRepo.On("FindByName", mock.Anything, "Nothing").Return([]model.Item{}, nil)

	rec := a.do(http.MethodGet, "/api/item", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Round Widget","description":"A widget that is round","price":"2.99"}]`, rec.Body.String())

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/item/1", "").Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/item/3", "").Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/item/x", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/item/name/Round%20Widget", "").Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/item/name/Nothing", "").Code)
}

// =====================
// Cart
// =====================

func TestAddToCart(t *testing.T) {
	a := newTestAPI()
	user := sampleUser()
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	a.repos.ItemRepo.On("FindByID", mock.Anything, int64(1)).Return(sampleItem(), nil)
	a.repos.CartRepo.On("FindByIDForUpdate", mock.Anything, int64(5)).Return(user.Cart, nil)
	a.repos.CartRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	rec := a.do(http.MethodPost, "/api/cart/addToCart", `{"username":"alice","itemId":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		ID    int64             `json:"id"`
		Items []json.RawMessage `json:"items"`
		Total string            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	assert.Len(t, body.Items, 2)
	assert.Equal(t, "5.98", body.Total)
}

func TestModifyCart_Errors(t *testing.T) {
	a := newTestAPI()
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPost, "/api/cart/removeFromCart", `{"username":"ghost","itemId":1,"quantity":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/cart/addToCart", `{"username":"ghost","itemId":1,"quantity":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/cart/addToCart", `{"username":"ghost","itemId":1,"quantity":2000000000}`).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/api/cart/addToCart", `not json`).Code)
	assert.Equal(t, 0, a.tx.Calls)
}

// =====================
// Order
// =====================

func TestOrderHistory_Empty(t *testing.T) {
	a := newTestAPI()
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "alice").Return(sampleUser(), nil)
	a.repos.OrderRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.UserOrder{}, nil)

	rec := a.do(http.MethodGet, "/api/order/history/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOrderSubmit(t *testing.T) {
	a := newTestAPI()
	user := sampleUser()
	cart := user.Cart
	cart.AddItem(sampleItem(), 1)

	a.repos.UserRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)
	a.repos.CartRepo.On("FindByIDForUpdate", mock.Anything, int64(5)).Return(cart, nil)
	a.repos.OrderRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*model.UserOrder).ID = 9 }).
		Return(nil)

	rec := a.do(http.MethodPost, "/api/order/submit/alice", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(9), body["id"])
	assert.Equal(t, float64(1), body["user_id"])
	assert.Equal(t, "2.99", body["total"])
	assert.Len(t, body["items"], 1)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPost, "/api/order/submit/ghost", "").Code)
}

// =====================
// Login
// =====================

func TestLogin(t *testing.T) {
	a := newTestAPI()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	a.repos.UserRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)

	rec := a.do(http.MethodPost, "/login", `{"username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "token")
	assert.Equal(t, float64(3600), raw["expires_in"])

	var body auth.JwtAccessToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AccessToken)
	assert.Equal(t, "Bearer", body.TokenType)
	assert.Equal(t, "Bearer "+body.AccessToken, rec.Header().Get("Authorization"))

	rec = a.do(http.MethodPost, "/login", `{"username":"alice","password":"wrong!"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}
