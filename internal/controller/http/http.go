package http

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/tribiz/posscreen/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=http.go -destination=../../service/mocks/mocks.go -package=mocks

//go:embed templates/screen.html
var templatesFS embed.FS

var screenTemplate = template.Must(template.ParseFS(templatesFS, "templates/screen.html"))

type Service interface {
	View() model.View
	EnterCode(code string) (model.View, *model.APIError)
	LookupProduct(ctx context.Context) (model.View, *model.APIError)
	AddToList() (model.View, *model.APIError)
	SubmitPurchase(ctx context.Context) (model.View, *model.APIError)
	DismissPopup() (model.View, *model.APIError)
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

type pageData struct {
	View  model.View
	Error string
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// JSON API

func (c *Controller) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.service.View(), http.StatusOK)
}

func (c *Controller) EnterCode(w http.ResponseWriter, r *http.Request) {
	code, err := readCode(r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	view, apiErr := c.service.EnterCode(code)
	c.respond(w, view, apiErr)
}

func (c *Controller) LookupProduct(w http.ResponseWriter, r *http.Request) {
	view, apiErr := c.service.LookupProduct(r.Context())
	c.respond(w, view, apiErr)
}

func (c *Controller) AddToList(w http.ResponseWriter, r *http.Request) {
	view, apiErr := c.service.AddToList()
	c.respond(w, view, apiErr)
}

func (c *Controller) SubmitPurchase(w http.ResponseWriter, r *http.Request) {
	view, apiErr := c.service.SubmitPurchase(r.Context())
	c.respond(w, view, apiErr)
}

func (c *Controller) DismissPopup(w http.ResponseWriter, r *http.Request) {
	view, apiErr := c.service.DismissPopup()
	c.respond(w, view, apiErr)
}

func (c *Controller) respond(w http.ResponseWriter, view model.View, apiErr *model.APIError) {
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, view, http.StatusOK)
}

// HTML экран

func (c *Controller) Page(w http.ResponseWriter, r *http.Request) {
	c.renderPage(w, c.service.View(), nil)
}

func (c *Controller) PageEnterCode(w http.ResponseWriter, r *http.Request) {
	c.pageAction(w, r, func() (model.View, *model.APIError) {
		return c.service.View(), nil
	})
}

func (c *Controller) PageLookupProduct(w http.ResponseWriter, r *http.Request) {
	c.pageAction(w, r, func() (model.View, *model.APIError) {
		return c.service.LookupProduct(r.Context())
	})
}

func (c *Controller) PageAddToList(w http.ResponseWriter, r *http.Request) {
	c.pageAction(w, r, c.service.AddToList)
}

func (c *Controller) PageSubmitPurchase(w http.ResponseWriter, r *http.Request) {
	c.pageAction(w, r, func() (model.View, *model.APIError) {
		return c.service.SubmitPurchase(r.Context())
	})
}

func (c *Controller) PageDismissPopup(w http.ResponseWriter, r *http.Request) {
	c.pageAction(w, r, c.service.DismissPopup)
}

// pageAction применяет введенный в форме код, выполняет действие и
// возвращает кассира на экран
func (c *Controller) pageAction(w http.ResponseWriter, r *http.Request, action func() (model.View, *model.APIError)) {
	if err := r.ParseForm(); err != nil {
		c.lg.Errorf("failed to parse form: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if _, ok := r.PostForm["code"]; ok {
		if view, apiErr := c.service.EnterCode(r.PostForm.Get("code")); apiErr != nil {
			c.renderPage(w, view, apiErr)
			return
		}
	}

	view, apiErr := action()
	if apiErr != nil {
		c.renderPage(w, view, apiErr)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (c *Controller) renderPage(w http.ResponseWriter, view model.View, apiErr *model.APIError) {
	data := pageData{View: view}
	status := http.StatusOK
	if apiErr != nil {
		data.Error = apiErr.Message
		status = apiErr.Code
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := screenTemplate.Execute(w, data); err != nil {
		c.lg.Errorf("failed to render screen: %v", err)
	}
}
