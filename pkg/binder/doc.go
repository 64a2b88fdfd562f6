// Package binder decodes HTTP request data into typed structs.
//
// Each binder has the signature func(*http.Request, any) error and plugs into
// handler.Wrap through handler.WithBinders:
//
//	type searchRequest struct {
//		Query string `json:"query"`
//		Nat   string `json:"nat"`
//	}
//
//	r.Post("/search", handler.Wrap(svc.search,
//		handler.WithBinders[searchRequest](binder.Signals()),
//	))
//
// Signals reads DataStar signals from the query string (GET) or the JSON body.
// Path reads chi URL parameters into string fields tagged `path:"name"`.
package binder
