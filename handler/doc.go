// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap runs the configured binders, calls the handler, renders the
// response and routes any failure to the ErrorHandler:
//
//	type searchRequest struct {
//		Query string `json:"query"`
//	}
//
//	search := func(ctx handler.Context, req searchRequest) handler.Response {
//		ctl.Search(req.Query)
//		return handler.Empty()
//	}
//
//	r.Post("/search", handler.Wrap(search,
//		handler.WithBinders[searchRequest](binder.Signals()),
//		handler.WithErrorHandler[searchRequest](errHandler),
//	))
//
// Responses are DataStar aware. Templ renders a component as HTML for plain
// requests and as an element patch for DataStar requests. SSE holds a stream
// open and hands the handler a StreamContext for pushing patches until the
// client disconnects.
package handler
