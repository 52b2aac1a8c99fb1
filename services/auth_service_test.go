package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoginDecodesUserAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var in loginIn
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "a@b.c", in.Email)
		w.Write([]byte(`{"data":{"user":{"_id":"u1","role":"user"},"token":"tok-1"}}`))
	}))
	defer srv.Close()

	svc := NewAuthService(newTestClient(srv.URL, ""))
	payload, err := svc.Login(context.Background(), "a@b.c", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "u1", payload.User.ID)
	assert.Equal(t, "tok-1", payload.Token)
}

func TestLoginWrapsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	svc := NewAuthService(newTestClient(srv.URL, ""))
	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	assert.Error(t, err)
	assert.Equal(t, "login failed: invalid credentials", err.Error())
}

func TestRegisterSendsNestedAddress(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"user":{"_id":"u2"},"token":"tok-2"}}`))
	}))
	defer srv.Close()

	svc := NewAuthService(newTestClient(srv.URL, ""))
	in := RegisterIn{Email: "a@b.c", Password: "secret1", Name: "An", Phone: "555"}
	in.Address.Street = "1 Main St"
	in.Address.City = "Hanoi"

	payload, err := svc.Register(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, "tok-2", payload.Token)

	addr, ok := got["address"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "1 Main St", addr["street"])
	assert.Equal(t, "Hanoi", addr["city"])
}
