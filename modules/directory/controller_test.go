package directory_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdir/modules/directory"
	"github.com/dmitrymomot/userdir/pkg/randomuser"
)

var quiet = slog.New(slog.DiscardHandler)

func newController(f directory.Fetcher, opts ...directory.ControllerOption) (*directory.Controller, *directory.Screen) {
	screen := directory.NewScreen()
	opts = append([]directory.ControllerOption{directory.WithLogger(quiet)}, opts...)
	return directory.NewController(f, screen, opts...), screen
}

func TestFetchSuccessReplacesCollections(t *testing.T) {
	t.Parallel()

	ctl, screen := newController(static(ann, bo))
	defer ctl.Close()

	require.ErrorIs(t, ctl.Ready(context.Background()), directory.ErrNotLoaded)
	require.NoError(t, ctl.Fetch(context.Background()))

	assert.Equal(t, []directory.User{ann, bo}, ctl.Users())
	assert.Equal(t, []directory.User{ann, bo}, ctl.Filtered())
	assert.NoError(t, ctl.Ready(context.Background()))
	assert.Equal(t, directory.StateIdle, ctl.State())

	snap := screen.Snapshot()
	assert.Equal(t, []directory.User{ann, bo}, snap.Cards)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Message.Text)
}

func TestFetchResetsFilterRegardlessOfCriteria(t *testing.T) {
	t.Parallel()

	ctl, screen := newController(static(ann, bo))
	defer ctl.Close()

	require.NoError(t, ctl.Fetch(context.Background()))
	ctl.ApplyFilters(directory.Criteria{Nationality: "GB"})
	require.Equal(t, []directory.User{bo}, ctl.Filtered())

	require.NoError(t, ctl.Fetch(context.Background()))
	assert.Equal(t, []directory.User{ann, bo}, ctl.Filtered())
	assert.Equal(t, []directory.User{ann, bo}, screen.Snapshot().Cards)
}

func TestFetchHTTP500ShowsError(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer api.Close()

	client := randomuser.New(randomuser.WithBaseURL(api.URL))
	ctl, screen := newController(directory.FromRandomUser(client))
	defer ctl.Close()

	err := ctl.Fetch(context.Background())
	require.ErrorIs(t, err, randomuser.ErrUnexpectedStatus)

	snap := screen.Snapshot()
	assert.Empty(t, snap.Cards)
	assert.Equal(t, directory.Message{Text: directory.ErrorMessage, IsError: true}, snap.Message)
	assert.False(t, snap.Loading)
	assert.Equal(t, directory.StateIdle, ctl.State())
	assert.ErrorIs(t, ctl.Ready(context.Background()), directory.ErrNotLoaded)
}

func TestFetchFailureKeepsPreviousCollection(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	f := directory.FetcherFunc(func(context.Context) ([]directory.User, error) {
		if fail.Load() {
			return nil, errors.New("offline")
		}
		return []directory.User{ann, bo}, nil
	})
	ctl, screen := newController(f)
	defer ctl.Close()

	require.NoError(t, ctl.Fetch(context.Background()))
	fail.Store(true)
	require.Error(t, ctl.Fetch(context.Background()))

	assert.Empty(t, screen.Snapshot().Cards)
	assert.Equal(t, []directory.User{ann, bo}, ctl.Users())

	ctl.ApplyFilters(directory.Criteria{Query: "bo"})
	assert.Equal(t, []directory.User{bo}, screen.Snapshot().Cards)
	assert.Empty(t, screen.Snapshot().Message.Text)
}

func TestNationalityFilterAfterFullBatch(t *testing.T) {
	t.Parallel()

	users := batch24()
	ctl, screen := newController(static(users...))
	defer ctl.Close()

	require.NoError(t, ctl.Fetch(context.Background()))
	require.Len(t, ctl.Users(), 24)

	ctl.ApplyFilters(directory.Criteria{Nationality: "US"})

	var want []directory.User
	for _, u := range users {
		if u.Nationality == "US" || u.Nationality == "us" {
			want = append(want, u)
		}
	}
	assert.Equal(t, want, ctl.Filtered())
	assert.Equal(t, want, screen.Snapshot().Cards)
}

func TestSearchIsDebounced(t *testing.T) {
	t.Parallel()

	ctl, screen := newController(static(ann, bo), directory.WithSearchDebounce(20*time.Millisecond))
	defer ctl.Close()
	require.NoError(t, ctl.Fetch(context.Background()))

	ctl.Search(directory.Criteria{Query: "a"})
	ctl.Search(directory.Criteria{Query: "an"})
	ctl.Search(directory.Criteria{Query: "zzz"})
	ctl.Search(directory.Criteria{Query: "bo"})
	assert.Equal(t, []directory.User{ann, bo}, ctl.Filtered(), "search must not apply before the window")

	assert.Eventually(t, func() bool {
		f := ctl.Filtered()
		return len(f) == 1 && f[0].ID == bo.ID
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []directory.User{bo}, screen.Snapshot().Cards)
}

func TestApplyFiltersSupersedesPendingSearch(t *testing.T) {
	t.Parallel()

	ctl, _ := newController(static(ann, bo), directory.WithSearchDebounce(20*time.Millisecond))
	defer ctl.Close()
	require.NoError(t, ctl.Fetch(context.Background()))

	ctl.Search(directory.Criteria{Query: "ann"})
	ctl.ApplyFilters(directory.Criteria{Nationality: "GB"})
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, []directory.User{bo}, ctl.Filtered())
}

func TestNoResultsAfterSearch(t *testing.T) {
	t.Parallel()

	ctl, screen := newController(static(ann, bo))
	defer ctl.Close()
	require.NoError(t, ctl.Fetch(context.Background()))

	ctl.ApplyFilters(directory.Criteria{Query: "zzz"})
	assert.Empty(t, ctl.Filtered())
	snap := screen.Snapshot()
	assert.Empty(t, snap.Cards)
	assert.Equal(t, directory.NoResultsMessage, snap.Message.Text)
}

func TestOverlappingFetchesLastCompletedWins(t *testing.T) {
	t.Parallel()

	batches := [][]directory.User{{ann}, {bo}}
	releases := []chan struct{}{make(chan struct{}), make(chan struct{})}
	started := make(chan struct{}, 2)
	var calls atomic.Int32
	f := directory.FetcherFunc(func(context.Context) ([]directory.User, error) {
		i := int(calls.Add(1)) - 1
		started <- struct{}{}
		<-releases[i]
		return batches[i], nil
	})
	ctl, screen := newController(f)
	defer ctl.Close()

	first := make(chan error, 1)
	go func() { first <- ctl.Fetch(context.Background()) }()
	<-started
	second := make(chan error, 1)
	go func() { second <- ctl.Fetch(context.Background()) }()
	<-started

	assert.Equal(t, directory.StateLoading, ctl.State())

	close(releases[1])
	require.NoError(t, <-second)
	assert.Equal(t, directory.StateLoading, ctl.State())
	assert.True(t, screen.Snapshot().Loading, "spinner stays while a fetch is in flight")
	assert.Equal(t, []directory.User{bo}, ctl.Users())

	close(releases[0])
	require.NoError(t, <-first)
	assert.Equal(t, directory.StateIdle, ctl.State())
	assert.False(t, screen.Snapshot().Loading)
	assert.Equal(t, []directory.User{ann}, ctl.Users())
}

func TestStartLoadsInBackground(t *testing.T) {
	t.Parallel()

	ctl, _ := newController(static(ann))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctl.Start(ctx)
	assert.Eventually(t, func() bool { return ctl.Ready(ctx) == nil }, time.Second, 5*time.Millisecond)

	ctl.Refresh()
	ctl.Close()
	assert.Equal(t, directory.StateIdle, ctl.State())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	ctl, _ := newController(static(ann, bo))
	defer ctl.Close()
	require.NoError(t, ctl.Fetch(context.Background()))

	got, ok := ctl.Lookup("u-bo")
	require.True(t, ok)
	assert.Equal(t, bo, got)

	_, ok = ctl.Lookup("missing")
	assert.False(t, ok)
}

type resultSource []randomuser.Result

func (s resultSource) Fetch(context.Context) ([]randomuser.Result, error) { return s, nil }

func TestFromRandomUser(t *testing.T) {
	t.Parallel()

	src := resultSource{
		{
			Login:    &randomuser.Login{UUID: "fixed-id"},
			Name:     &randomuser.Name{First: "Ann", Last: "Lee"},
			Email:    "a@x.com",
			Phone:    "555",
			Picture:  &randomuser.Picture{Large: "https://img.example/a.jpg"},
			Location: &randomuser.Location{City: "Reno", Country: "USA"},
			Dob:      &randomuser.Dob{Age: 30},
			Nat:      "US",
		},
		{
			Name:     &randomuser.Name{First: "Bo", Last: "Ng"},
			Picture:  &randomuser.Picture{},
			Location: &randomuser.Location{},
			Dob:      &randomuser.Dob{},
			Nat:      "GB",
		},
	}

	users, err := directory.FromRandomUser(src).FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, directory.User{
		ID: "fixed-id", FirstName: "Ann", LastName: "Lee", Nationality: "US",
		Email: "a@x.com", Phone: "555", AvatarURL: "https://img.example/a.jpg",
		City: "Reno", Country: "USA", Age: 30,
	}, users[0])

	_, err = uuid.Parse(users[1].ID)
	assert.NoError(t, err, "missing login gets a generated uuid")
	assert.Equal(t, "Bo Ng", users[1].FullName())
}
