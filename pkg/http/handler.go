package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

type contextKey int

const handlerMetaContextKey contextKey = iota

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

// ResponseWriter defers the body until the handler returns, so the status can still change on error.
type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
	SetHTMLBody(render func(io.Writer) error) ResponseWriter
	Redirect(url string) ResponseWriter
	Raw() http.ResponseWriter
}

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code  int
	Panic *Panic
	Error error
}

type responseWriter struct {
	impl http.ResponseWriter

	writeBodyFunc func() error
	httpCode      int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.writeBodyFunc = func() error {
		bodyEncoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}

		w.impl.Header().Set("Content-Type", "application/json")
		w.impl.WriteHeader(w.httpCode)
		_, err = w.impl.Write(bodyEncoded)
		return err
	}
	return w
}

func (w *responseWriter) SetHTMLBody(render func(io.Writer) error) ResponseWriter {
	w.writeBodyFunc = func() error {
		buf := &bytes.Buffer{}
		if err := render(buf); err != nil {
			return fmt.Errorf("render html: %w", err)
		}

		w.impl.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.impl.WriteHeader(w.httpCode)
		_, err := buf.WriteTo(w.impl)
		return err
	}
	return w
}

func (w *responseWriter) Redirect(url string) ResponseWriter {
	w.impl.Header().Set("Location", url)
	w.httpCode = http.StatusSeeOther
	w.writeBodyFunc = nil
	return w
}

func (w *responseWriter) Raw() http.ResponseWriter {
	return w.impl
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	meta := getHandlerMetadata(ctx)
	switch {
	case errors.Is(err, ErrParsingError):
		w.writeError(meta, http.StatusBadRequest, err)
	case err != nil:
		code := w.httpCode
		if code < http.StatusBadRequest {
			code = http.StatusInternalServerError
		}
		w.writeError(meta, code, err)
	case w.writeBodyFunc != nil:
		meta.Code = w.httpCode
		if bodyErr := w.writeBodyFunc(); bodyErr != nil {
			meta.Error = bodyErr
		}
	default:
		meta.Code = w.httpCode
		w.impl.WriteHeader(w.httpCode)
	}
}

func (w *responseWriter) writeError(meta *handlerMetadata, code int, err error) {
	meta.Code = code
	meta.Error = err
	http.Error(w.impl, http.StatusText(code), code)
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	http.Error(w.impl, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{Code: http.StatusOK})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}

// SetResponseCode records the code of a response written outside the handler wrapper, e.g. by a middleware.
func SetResponseCode(ctx context.Context, code int) {
	getHandlerMetadata(ctx).Code = code
}
