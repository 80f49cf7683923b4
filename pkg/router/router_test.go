package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zoosum-lab/backend/config"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/logger"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestRouter() *Router {
	return New(nil, config.Configs{}, logger.NewLogger(4))
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	return &echoResponse{Name: req.Name, Count: req.Count}, nil
}

func TestRouter_GET_bindsQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	req := httptest.NewRequest(http.MethodGet, "/echo?name=dokko&count=3", nil)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	var resp struct {
		Code int          `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Code)
	require.Equal(t, echoResponse{Name: "dokko", Count: 3}, resp.Data)
}

func TestRouter_POST_bindsBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echo)

	body := strings.NewReader(`{"name":"arem","count":7}`)
	req := httptest.NewRequest(http.MethodPost, "/echo", body)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	var resp struct {
		Code int          `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Code)
	require.Equal(t, echoResponse{Name: "arem", Count: 7}, resp.Data)
}

func TestRouter_errorEnvelope(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	var resp struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int(errorx.BadRequest), resp.Code)
	require.Equal(t, "Not allow an empty name", resp.Error)
}

func TestRouter_branchMiddleware(t *testing.T) {
	r := newTestRouter()

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	})
	GET(branch, "/private", echo)
	GET(r, "/public", echo)

	req := httptest.NewRequest(http.MethodGet, "/private?name=x", nil)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int(errorx.Unauthenticated), resp.Code)

	// The branch middleware must not leak into the parent.
	req = httptest.NewRequest(http.MethodGet, "/public?name=x", nil)
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Code)
}

func TestRouter_methodMismatch(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echo)

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int(errorx.BadRequest), resp.Code)
}
