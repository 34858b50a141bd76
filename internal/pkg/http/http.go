package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/billup/billup-web/internal/pkg/auth"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const (
	RequestIDHeader = "X-Request-ID"

	DestinationBillUpAPI pkghttp.Destination = "billup-api"
)

var ErrMissingBearerToken = errors.New("bearer token not found in context")

// APIError is the error body of the remote API. Login failures fill Message, validation failures fill Detail.
type APIError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Title   string `json:"title"`
}

func (e APIError) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	case e.Title != "":
		return e.Title
	default:
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
}

// WithBearerAuth attaches the bearer token of the current session to every request.
func WithBearerAuth() pkghttp.ClientOption {
	return func(c *pkghttp.ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get("Authorization") != "" {
				return nil
			}

			token, ok := auth.BearerToken(req.Context())
			if !ok {
				return nil
			}
			req.SetAuthToken(token)
			return nil
		})
	}
}

// CheckResponse converts a failed call into an error, decoding APIError from non-2xx responses.
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsSuccess() {
		return nil
	}

	apiErr, decodeErr := pkghttp.ParseResponse(resp, pkghttp.JSONBody[APIError](), nil)
	if decodeErr != nil {
		apiErr = APIError{}
	}
	apiErr.Code = resp.StatusCode()
	return apiErr
}

func IsStatus(err error, code int) bool {
	var apiErr APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}
