// Package directory is the user directory viewer: it fetches a batch of
// profiles, keeps them in memory, and lets the browser narrow the visible
// cards by free-text search and nationality.
//
// The Controller owns the collections and the fetch lifecycle. It writes
// view changes to a Screen, the in-process model of the page regions
// (status message, spinner, cards). The Service exposes the page over HTTP
// and pushes Screen changes to the browser over a DataStar event stream;
// browser input comes back as DataStar actions carrying the {query, nat}
// signals.
//
//	screen := directory.NewScreen()
//	ctl := directory.NewController(directory.FromRandomUser(client), screen,
//		directory.WithLogger(log),
//		directory.WithSearchDebounce(cfg.SearchDebounce),
//	)
//	ctl.Start(ctx)
//	defer ctl.Close()
//
//	r.Mount("/", directory.NewService(ctl, screen).Handle())
//
// Overlapping fetches are allowed and apply in completion order: the last
// response to arrive wins.
package directory
