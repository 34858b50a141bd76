package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/mux"

	"github.com/billup/billup-web/pkg/strings"
)

type (
	DataExtractor[T any] func(dataProvider) (T, error)

	dataProvider interface {
		PathParameters() map[string]string
		QueryParameters() url.Values
		FormValues() (url.Values, error)
		Header() http.Header
		Cookies() []*http.Cookie
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}

	responseDataProvider struct {
		*resty.Response
	}
)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(requestDataProvider{r})
	if err != nil {
		return nil
	}

	return &result
}

func ParseResponse[T any](r *resty.Response, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(responseDataProvider{r})
}

func PathParameter[T strings.SupportedValueParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		paramValue, ok := p.PathParameters()[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

func QueryParameter[T strings.SupportedValueParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		value := p.QueryParameters().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](value)
	}
}

// FormValue reads an urlencoded form field, an empty value is returned as is.
func FormValue(field string) DataExtractor[string] {
	return func(p dataProvider) (string, error) {
		values, err := p.FormValues()
		if err != nil {
			return "", fmt.Errorf("%w: parse form: %w", ErrParsingError, err)
		}

		return values.Get(field), nil
	}
}

func TypedFormValue[T strings.SupportedValueParsingTypes](field string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		value, err := FormValue(field)(p)
		if err == nil && value == "" {
			err = fmt.Errorf("%w: form field %s not found", ErrParsingError, field)
		}
		if err != nil {
			var result T
			return result, err
		}

		return parseTypedValueImpl[T](value)
	}
}

func Header[T strings.SupportedValueParsingTypes](key string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		header := p.Header().Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func Cookie(name string) DataExtractor[*http.Cookie] {
	return func(p dataProvider) (*http.Cookie, error) {
		var cookie *http.Cookie
		for _, c := range p.Cookies() {
			if c.Name == name {
				cookie = c
			}
		}
		if cookie != nil {
			return cookie, nil
		}

		return nil, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		body := p.Body()
		defer body.Close()

		err := json.NewDecoder(body).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) PathParameters() map[string]string {
	return mux.Vars(p.Request)
}

func (p requestDataProvider) QueryParameters() url.Values {
	return p.Request.URL.Query()
}

func (p requestDataProvider) FormValues() (url.Values, error) {
	if err := p.Request.ParseForm(); err != nil {
		return nil, err
	}
	return p.Request.PostForm, nil
}

func (p requestDataProvider) Header() http.Header {
	return p.Request.Header
}

func (p requestDataProvider) Body() io.ReadCloser {
	return p.Request.Body
}

func (p responseDataProvider) PathParameters() map[string]string {
	return nil
}

func (p responseDataProvider) QueryParameters() url.Values {
	if p.Response == nil || p.Response.Request == nil || p.Response.Request.RawRequest == nil {
		return nil
	}

	return p.Response.Request.RawRequest.URL.Query()
}

func (p responseDataProvider) FormValues() (url.Values, error) {
	return nil, errors.New("response has no form")
}

func (p responseDataProvider) Header() http.Header {
	if p.Response == nil {
		return nil
	}

	return p.Response.Header()
}

func (p responseDataProvider) Cookies() []*http.Cookie {
	if p.Response == nil {
		return nil
	}

	return p.Response.Cookies()
}

func (p responseDataProvider) Body() io.ReadCloser {
	if p.Response == nil {
		return http.NoBody
	}

	return io.NopCloser(bytes.NewReader(p.Response.Body()))
}

func parseTypedValueImpl[T strings.SupportedValueParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
