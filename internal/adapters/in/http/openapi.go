package http

import (
	_ "embed"
	"errors"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openapiDocument []byte

var registerDocOnce sync.Once

// apiDoc serves the embedded document to the swagger UI.
type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return string(openapiDocument)
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

func registerDoc() {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{})
	})
}

// RequestValidator checks every request described by the document against its
// parameters and body schema. Routes missing from the document pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, err.Error()))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, validationMessage(err)))
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return "parameter " + requestErr.Parameter.Name + " is invalid"
		}
		if requestErr.RequestBody != nil {
			return "request body is invalid: " + requestErr.Reason
		}
	}
	return err.Error()
}
