package http

import (
	"github.com/go-chi/chi/v5"
)

func InitRoutes(r *chi.Mux, c *Controller) *chi.Mux {
	r.Get("/ping", c.Ping)

	r.Get("/", c.Page)
	r.Post("/code", c.PageEnterCode)
	r.Post("/lookup", c.PageLookupProduct)
	r.Post("/add", c.PageAddToList)
	r.Post("/purchase", c.PageSubmitPurchase)
	r.Post("/popup/dismiss", c.PageDismissPopup)

	r.Route("/api", func(r chi.Router) {
		r.Get("/session", c.GetSession)
		r.Post("/code", c.EnterCode)
		r.Post("/lookup", c.LookupProduct)
		r.Post("/add", c.AddToList)
		r.Post("/purchase", c.SubmitPurchase)
		r.Post("/popup/dismiss", c.DismissPopup)
	})

	return r
}
