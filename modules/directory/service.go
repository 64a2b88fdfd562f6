package directory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/userdir/handler"
	"github.com/dmitrymomot/userdir/pkg/binder"
	"github.com/dmitrymomot/userdir/pkg/logger"
	"github.com/dmitrymomot/userdir/pkg/qrcode"
)

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used by handlers and the error handler.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNationalities sets the selector entries and the codes accepted in the
// nat signal.
func WithNationalities(codes []string) ServiceOption {
	return func(s *Service) {
		s.nationalities = NationalityOptions(codes)
	}
}

// WithTitle sets the page title.
func WithTitle(title string) ServiceOption {
	return func(s *Service) {
		if title != "" {
			s.title = title
		}
	}
}

// WithQRSize sets the QR code edge length in pixels.
func WithQRSize(px int) ServiceOption {
	return func(s *Service) {
		if px > 0 {
			s.qrSize = px
		}
	}
}

// WithErrorHandler replaces the default toast-aware error handler.
func WithErrorHandler(h handler.ErrorHandler) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// Service serves the directory page, its event stream and input actions.
type Service struct {
	ctl           *Controller
	screen        *Screen
	log           *slog.Logger
	title         string
	nationalities []NationalityOption
	qrSize        int
	errorHandler  handler.ErrorHandler
}

func NewService(ctl *Controller, screen *Screen, opts ...ServiceOption) *Service {
	s := &Service{
		ctl:    ctl,
		screen: screen,
		log:    slog.Default(),
		qrSize: qrcode.DefaultSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			Toast:       Toast,
			ToastTarget: "#toast",
		})
	}
	return s
}

type noRequest struct{}

type userRequest struct {
	ID string `path:"id"`
}

// Handle returns the router for the page and its actions.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[noRequest](s.errorHandler)))
	r.Get("/stream", handler.Wrap(s.stream,
		handler.WithErrorHandler[noRequest](s.errorHandler)))
	r.Post("/refresh", handler.Wrap(s.refresh,
		handler.WithErrorHandler[noRequest](s.errorHandler)))
	r.Post("/search", handler.Wrap(s.search,
		handler.WithBinders[Criteria](binder.Signals()),
		handler.WithErrorHandler[Criteria](s.errorHandler)))
	r.Post("/nationality", handler.Wrap(s.applyNationality,
		handler.WithBinders[Criteria](binder.Signals()),
		handler.WithErrorHandler[Criteria](s.errorHandler)))
	r.Get("/users/{id}/qr", handler.Wrap(s.contactQR,
		handler.WithBinders[userRequest](binder.Path()),
		handler.WithErrorHandler[userRequest](s.errorHandler)))

	return r
}

func (s *Service) page(_ handler.Context, _ noRequest) handler.Response {
	return handler.Templ(Page(PageParams{
		Title:         s.title,
		Snapshot:      s.screen.Snapshot(),
		Nationalities: s.nationalities,
	}))
}

// stream sends the current regions, then each region that changes. A
// subscriber dropped for falling behind resubscribes and resends everything.
func (s *Service) stream(_ handler.Context, _ noRequest) handler.Response {
	return handler.SSE(func(stream handler.StreamContext) error {
		for {
			sub := s.screen.Subscribe(stream)
			err := s.sendSnapshot(stream)
			if err == nil {
				err = s.forward(stream, sub.C())
			}
			sub.Close()

			switch {
			case stream.Err() != nil, s.screen.Closed():
				return nil
			case err != nil:
				return err
			}
			s.log.DebugContext(stream, "stream resubscribing after overflow",
				slog.Int("watchers", s.screen.Watchers()))
		}
	}, handler.WithStreamErrorHandler(s.streamFailed))
}

func (s *Service) streamFailed(stream handler.StreamContext, err error) {
	s.log.WarnContext(stream, "stream closed", logger.Error(err))
}

func (s *Service) sendSnapshot(stream handler.StreamContext) error {
	snap := s.screen.Snapshot()
	return stream.SendMultiple(
		handler.Patch(MessageView(snap.Message)),
		handler.Patch(Spinner(snap.Loading)),
		handler.Patch(Cards(snap.Cards)),
	)
}

// forward returns nil when the stream or the subscription ends.
func (s *Service) forward(stream handler.StreamContext, changes <-chan Region) error {
	for {
		select {
		case <-stream.Done():
			return nil
		case region, ok := <-changes:
			if !ok {
				return nil
			}
			snap := s.screen.Snapshot()
			var err error
			switch region {
			case RegionMessage:
				err = stream.SendComponent(MessageView(snap.Message))
			case RegionSpinner:
				err = stream.SendComponent(Spinner(snap.Loading))
			case RegionCards:
				err = stream.SendComponent(Cards(snap.Cards))
			}
			if err != nil {
				return err
			}
		}
	}
}

func (s *Service) refresh(_ handler.Context, _ noRequest) handler.Response {
	s.ctl.Refresh()
	return handler.Empty()
}

func (s *Service) search(_ handler.Context, c Criteria) handler.Response {
	if err := c.Validate(s.codes()); err != nil {
		return handler.Error(err)
	}
	s.ctl.Search(c)
	return handler.Empty()
}

func (s *Service) applyNationality(_ handler.Context, c Criteria) handler.Response {
	if err := c.Validate(s.codes()); err != nil {
		return handler.Error(err)
	}
	s.ctl.ApplyFilters(c)
	return handler.Empty()
}

func (s *Service) contactQR(ctx handler.Context, req userRequest) handler.Response {
	u, ok := s.ctl.Lookup(req.ID)
	if !ok {
		return handler.Error(handler.NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error()))
	}
	png, err := qrcode.GenerateContact(u.Contact(), s.qrSize)
	if err != nil {
		s.log.ErrorContext(ctx, "qr generation failed", logger.Error(err))
		return handler.Error(err)
	}
	return handler.Blob("image/png", png)
}

// codes returns the accepted nat values; nil accepts any.
func (s *Service) codes() []string {
	if len(s.nationalities) == 0 {
		return nil
	}
	codes := make([]string, len(s.nationalities))
	for i, o := range s.nationalities {
		codes[i] = o.Code
	}
	return codes
}
