package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

func wrap[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := r.newRequestContext(req, w)
		defer func() {
			for _, closer := range r.closers {
				closer(ctx)
			}
		}()

		if req.Method != method {
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Not supported method %s", req.Method))
			writeResponse(ctx)
			return
		}

		var request Request
		if err := bindRequest(ctx, method, &request); err != nil {
			xcontext.SetError(ctx, err)
			writeResponse(ctx)
			return
		}

		runCtx, err := runMiddlewares(ctx, r.befores)
		if err != nil {
			xcontext.SetError(ctx, err)
			writeResponse(ctx)
			return
		}

		resp, err := handler(runCtx, &request)
		if err != nil {
			xcontext.SetError(ctx, err)
		} else if resp != nil {
			xcontext.SetResponse(ctx, resp)
		}

		if _, err := runMiddlewares(runCtx, r.afters); err != nil {
			xcontext.SetError(ctx, err)
		}

		writeResponse(ctx)
	}
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, m := range middlewares {
		newCtx, err := m(ctx)
		if err != nil {
			return ctx, err
		}

		if newCtx != nil {
			ctx = newCtx
		}
	}

	return ctx, nil
}

func bindRequest(ctx context.Context, method string, req any) error {
	switch method {
	case http.MethodGet:
		return bindQuery(ctx, req)
	case http.MethodPost:
		body, err := io.ReadAll(xcontext.HTTPRequest(ctx).Body)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Cannot read the request body")
		}

		if len(body) == 0 {
			return nil
		}

		if err := json.Unmarshal(body, req); err != nil {
			return errorx.New(errorx.BadRequest, "Cannot parse the request body")
		}

		return nil
	}

	return errorx.New(errorx.BadRequest, "Not supported method %s", method)
}

// bindQuery fills json-tagged fields of req from url query values. Supported
// field kinds are string, int, float64, and bool.
func bindQuery(ctx context.Context, req any) error {
	query := xcontext.HTTPRequest(ctx).URL.Query()
	v := reflect.ValueOf(req).Elem()

	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		if name == "" || name == "-" {
			continue
		}

		queryVal := query.Get(name)
		if queryVal == "" {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(queryVal)

		case reflect.Int:
			val, err := strconv.Atoi(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid integer value of %s", name)
			}
			field.SetInt(int64(val))

		case reflect.Float64:
			val, err := strconv.ParseFloat(queryVal, 64)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid float value of %s", name)
			}
			field.SetFloat(val)

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid boolean value of %s", name)
			}
			field.SetBool(val)
		}
	}

	return nil
}
