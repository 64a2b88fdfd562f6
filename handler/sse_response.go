package handler

import (
	"net/http"
)

// SSEHandler runs for the lifetime of an event stream. The stream closes
// when it returns or the client disconnects.
type SSEHandler func(ctx StreamContext) error

// SSEOption configures an SSE response.
type SSEOption func(*sseResponse)

// WithStreamErrorHandler receives the error an SSEHandler returns. The
// response is already committed by then, so the error never reaches the
// Wrap error handler.
func WithStreamErrorHandler(fn func(ctx StreamContext, err error)) SSEOption {
	return func(s *sseResponse) {
		s.onError = fn
	}
}

type sseResponse struct {
	handler SSEHandler
	onError func(ctx StreamContext, err error)
}

// Render fails only before the stream opens.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "stream requires a DataStar connection")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	stream := &streamContext{Context: base, sse: sse}
	if err := s.handler(stream); err != nil && s.onError != nil {
		s.onError(stream, err)
	}
	return nil
}

// SSE creates a streaming response.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case ev := <-events:
//				if err := stream.SendComponent(view(ev), handler.WithTarget("#feed")); err != nil {
//					return err
//				}
//			}
//		}
//	})
func SSE(handler SSEHandler, opts ...SSEOption) Response {
	s := sseResponse{handler: handler}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
