package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/billup/billup-web/internal/pkg/auth"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	pkgauth "github.com/billup/billup-web/pkg/auth"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const StaticPathPrefix = "/static/"

const (
	PageHome            Page = "home"
	PageLogin           Page = "login"
	PageRegistration    Page = "registration"
	PageMain            Page = "main"
	PageBills           Page = "bills"
	PageAllBills        Page = "bills_all"
	PageCreateBill      Page = "create_bill"
	PagePayment         Page = "payment"
	PageResidences      Page = "residences"
	PageCreateResidence Page = "create_residence"
	PageError           Page = "error"
)

var pages = []Page{
	PageHome,
	PageLogin,
	PageRegistration,
	PageMain,
	PageBills,
	PageAllBills,
	PageCreateBill,
	PagePayment,
	PageResidences,
	PageCreateResidence,
	PageError,
}

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

type (
	Page string

	Session struct {
		LoggedIn bool
		UserID   int
		Roles    []string
	}

	View struct {
		Title   string
		Session Session
		Error   string
		Notice  string
		Data    any
	}

	Renderer interface {
		Render(w io.Writer, page Page, view View) error
	}

	renderer struct {
		templates map[Page]*template.Template
	}
)

func NewRenderer() (Renderer, error) {
	funcs := template.FuncMap{
		"money": func(amount float64) string {
			return fmt.Sprintf("%.2f", amount)
		},
		"lower": strings.ToLower,
	}

	templates := make(map[Page]*template.Template, len(pages))
	for _, page := range pages {
		tpl, err := template.New(string(page)).Funcs(funcs).ParseFS(
			templateFiles,
			"templates/layout.html",
			fmt.Sprintf("templates/%s.html", page),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template for page %s: %w", page, err)
		}
		templates[page] = tpl
	}

	return renderer{templates: templates}, nil
}

func (r renderer) Render(w io.Writer, page Page, view View) error {
	tpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %s", page)
	}

	return tpl.ExecuteTemplate(w, "layout", view)
}

func StaticFiles() fs.FS {
	files, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Errorf("open static files: %w", err))
	}
	return files
}

func (s Session) IsCompany() bool {
	return s.hasRole(auth.RoleCompany)
}

func (s Session) IsClient() bool {
	return s.hasRole(auth.RoleClient)
}

func (s Session) hasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func NewView(ctx context.Context, title string, data any) View {
	view := View{
		Title: title,
		Data:  data,
	}

	principal, err := auth.CurrentPrincipal(ctx)
	if err == nil {
		view.Session = Session{
			LoggedIn: true,
			UserID:   principal.UserID,
			Roles:    principal.Roles,
		}
	}

	return view
}

func (v View) WithError(err error) View {
	if err != nil {
		v.Error = err.Error()
	}
	return v
}

// WithAPIError shows the message of a remote API error, other errors are replaced by fallback.
func (v View) WithAPIError(err error, fallback string) View {
	var apiErr commonhttp.APIError
	if errors.As(err, &apiErr) {
		v.Error = apiErr.Error()
		return v
	}
	if err != nil {
		v.Error = fallback
	}
	return v
}

func (v View) WithNotice(notice string) View {
	v.Notice = notice
	return v
}

func Render(w pkghttp.ResponseWriter, renderer Renderer, page Page, view View) {
	w.SetHTMLBody(func(out io.Writer) error {
		return renderer.Render(out, page, view)
	})
}

func RenderError(ctx context.Context, w pkghttp.ResponseWriter, renderer Renderer, code int) {
	w.SetStatusCode(code)
	Render(w, renderer, PageError, NewView(ctx, http.StatusText(code), code))
}

// RenderAccessError renders the error page when err is an access error and reports whether it did.
func RenderAccessError(ctx context.Context, w pkghttp.ResponseWriter, renderer Renderer, err error) bool {
	switch {
	case errors.Is(err, pkgauth.ErrPermissionDenied):
		RenderError(ctx, w, renderer, http.StatusForbidden)
	case errors.Is(err, pkgauth.ErrUnauthenticated):
		RenderError(ctx, w, renderer, http.StatusUnauthorized)
	default:
		return false
	}
	return true
}
