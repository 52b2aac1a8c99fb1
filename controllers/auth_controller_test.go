package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/services"
	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/DK1uTea/food-ordering-client/storage"
	"github.com/alecthomas/assert/v2"
	"github.com/gin-gonic/gin"
)

type fakeAuthAPI struct {
	LoginFn    func(ctx context.Context, email, password string) (*entity.AuthPayload, error)
	RegisterFn func(ctx context.Context, in services.RegisterIn) (*entity.AuthPayload, error)
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*entity.AuthPayload, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthAPI) Register(ctx context.Context, in services.RegisterIn) (*entity.AuthPayload, error) {
	return f.RegisterFn(ctx, in)
}

type fakeOwnerRestaurantAPI struct {
	MyRestaurantFn func(ctx context.Context) (*entity.Restaurant, error)
}

func (f *fakeOwnerRestaurantAPI) MyRestaurant(ctx context.Context) (*entity.Restaurant, error) {
	return f.MyRestaurantFn(ctx)
}

func newAuthRouter(t *testing.T, svc AuthAPI, rest OwnerRestaurantAPI) (*gin.Engine, *state.AuthStore, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.Open(filepath.Join(t.TempDir(), "session.db"))
	assert.NoError(t, err)
	auth := state.NewAuthStore(state.Anonymous())

	r := gin.New()
	ctl := NewAuthController(auth, store, svc, rest)
	r.POST("/auth/login", ctl.Login)
	r.POST("/auth/register", ctl.Register)
	r.POST("/auth/logout", ctl.Logout)
	r.GET("/auth/session", ctl.Session)
	return r, auth, store
}

func TestLoginFailure(t *testing.T) {
	svc := &fakeAuthAPI{
		LoginFn: func(ctx context.Context, email, password string) (*entity.AuthPayload, error) {
			return nil, errors.New("login failed: invalid credentials")
		},
	}
	r, auth, store := newAuthRouter(t, svc, &fakeOwnerRestaurantAPI{})

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "a@b.c", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s := auth.Session()
	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
	assert.Equal(t, "login failed: invalid credentials", s.Error)

	_, ok := store.Get(storage.KeyToken)
	assert.False(t, ok)
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	svc := &fakeAuthAPI{
		LoginFn: func(ctx context.Context, email, password string) (*entity.AuthPayload, error) {
			assert.Equal(t, "a@b.c", email)
			return &entity.AuthPayload{
				User:  entity.User{ID: "u1", Email: email, Role: entity.RoleUser},
				Token: "tok-1",
			}, nil
		},
	}
	r, auth, store := newAuthRouter(t, svc, &fakeOwnerRestaurantAPI{})

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "a@b.c", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	s := auth.Session()
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, "u1", s.User.ID)

	tok, ok := store.Get(storage.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", tok)

	raw, ok := store.Get(storage.KeyUser)
	assert.True(t, ok)
	var persisted entity.User
	assert.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "u1", persisted.ID)
}

func TestLoginResolvesOwnerRestaurant(t *testing.T) {
	svc := &fakeAuthAPI{
		LoginFn: func(ctx context.Context, email, password string) (*entity.AuthPayload, error) {
			return &entity.AuthPayload{
				User:  entity.User{ID: "u1", Role: entity.RoleRestaurantOwner},
				Token: "tok-1",
			}, nil
		},
	}
	rest := &fakeOwnerRestaurantAPI{
		MyRestaurantFn: func(ctx context.Context) (*entity.Restaurant, error) {
			return &entity.Restaurant{ID: "R1", Name: "Pho Corner"}, nil
		},
	}
	r, auth, store := newAuthRouter(t, svc, rest)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "o@b.c", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	s := auth.Session()
	assert.Equal(t, "R1", s.User.Restaurant)

	raw, _ := store.Get(storage.KeyUser)
	var persisted entity.User
	assert.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "R1", persisted.Restaurant)
}

// resolve ร้านไม่ได้ไม่ใช่เหตุให้ login fail
func TestLoginOwnerResolveFailureStillAuthenticates(t *testing.T) {
	svc := &fakeAuthAPI{
		LoginFn: func(ctx context.Context, email, password string) (*entity.AuthPayload, error) {
			return &entity.AuthPayload{
				User:  entity.User{ID: "u1", Role: entity.RoleRestaurantOwner},
				Token: "tok-1",
			}, nil
		},
	}
	rest := &fakeOwnerRestaurantAPI{
		MyRestaurantFn: func(ctx context.Context) (*entity.Restaurant, error) {
			return nil, errors.New("no restaurant found for this owner")
		},
	}
	r, auth, _ := newAuthRouter(t, svc, rest)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "o@b.c", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, auth.Session().IsAuthenticated)
	assert.Equal(t, "", auth.Session().User.Restaurant)
}

func registerBody() gin.H {
	return gin.H{
		"name":            "An Nguyen",
		"phone":           "555",
		"email":           "a@b.c",
		"password":        "secret1",
		"confirmPassword": "secret1",
		"street":          "1 Main St",
		"city":            "Hanoi",
		"state":           "HN",
		"zipCode":         "10000",
		"country":         "VN",
	}
}

func TestRegisterThenLoggedIn(t *testing.T) {
	var gotIn services.RegisterIn
	svc := &fakeAuthAPI{
		RegisterFn: func(ctx context.Context, in services.RegisterIn) (*entity.AuthPayload, error) {
			gotIn = in
			return &entity.AuthPayload{
				User:  entity.User{ID: "u2", Role: entity.RoleUser},
				Token: "tok-2",
			}, nil
		},
	}
	r, auth, store := newAuthRouter(t, svc, &fakeOwnerRestaurantAPI{})

	w := doJSON(t, r, http.MethodPost, "/auth/register", registerBody())
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, "a@b.c", gotIn.Email)
	assert.Equal(t, "Hanoi", gotIn.Address.City)

	// register สำเร็จแล้วถือว่า login เลย
	s := auth.Session()
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, "u2", s.User.ID)

	tok, _ := store.Get(storage.KeyToken)
	assert.Equal(t, "tok-2", tok)
}

func TestRegisterPasswordMismatchIsLocalValidation(t *testing.T) {
	called := false
	svc := &fakeAuthAPI{
		RegisterFn: func(ctx context.Context, in services.RegisterIn) (*entity.AuthPayload, error) {
			called = true
			return nil, nil
		},
	}
	r, auth, _ := newAuthRouter(t, svc, &fakeOwnerRestaurantAPI{})

	body := registerBody()
	body["confirmPassword"] = "different"
	w := doJSON(t, r, http.MethodPost, "/auth/register", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
	// validation ฝั่ง form ไม่แตะ store เลย
	assert.False(t, auth.Session().IsLoading)
	assert.Equal(t, "", auth.Session().Error)
}

func TestRegisterFailureStoresError(t *testing.T) {
	svc := &fakeAuthAPI{
		RegisterFn: func(ctx context.Context, in services.RegisterIn) (*entity.AuthPayload, error) {
			return nil, errors.New("registration failed: email already registered")
		},
	}
	r, auth, _ := newAuthRouter(t, svc, &fakeOwnerRestaurantAPI{})

	w := doJSON(t, r, http.MethodPost, "/auth/register", registerBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s := auth.Session()
	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
	assert.Equal(t, "registration failed: email already registered", s.Error)
}

func TestLogoutClearsSessionAndStorage(t *testing.T) {
	svc := &fakeAuthAPI{
		LoginFn: func(ctx context.Context, email, password string) (*entity.AuthPayload, error) {
			return &entity.AuthPayload{User: entity.User{ID: "u1"}, Token: "tok-1"}, nil
		},
	}
	r, auth, store := newAuthRouter(t, svc, &fakeOwnerRestaurantAPI{})

	doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "a@b.c", "password": "secret"})
	assert.True(t, auth.Session().IsAuthenticated)

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.False(t, auth.Session().IsAuthenticated)
	_, ok := store.Get(storage.KeyToken)
	assert.False(t, ok)
	_, ok = store.Get(storage.KeyUser)
	assert.False(t, ok)
}
