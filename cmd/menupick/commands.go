// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/menupick/internal/auth"
	"github.com/tomtom215/menupick/internal/logging"
	"github.com/tomtom215/menupick/internal/middleware"
	"github.com/tomtom215/menupick/internal/models"
	"github.com/tomtom215/menupick/internal/normalize"
	"github.com/tomtom215/menupick/internal/state"
)

type execFunc func(ctx context.Context, a *app, out io.Writer) error

type command struct {
	summary      string
	watchesLogin bool
	flags        func(fs *flag.FlagSet) execFunc
}

var commandOrder = []string{
	"recommend", "collaborative", "categories", "questions", "favorites",
	"places", "login-url", "login", "logout", "status",
}

var commands = map[string]command{
	"recommend":     {summary: "time-slot recommendation", flags: recommendCmd},
	"collaborative": {summary: "collaborative-filtering recommendation", flags: collaborativeCmd},
	"categories":    {summary: "list menu categories", flags: categoriesCmd},
	"questions":     {summary: "list quiz questions or ask the AI", flags: questionsCmd},
	"favorites":     {summary: "list or toggle favorites", flags: favoritesCmd},
	"places":        {summary: "nearby restaurant search", flags: placesCmd},
	"login-url":     {summary: "print the Kakao authorization URL", flags: loginURLCmd},
	"login":         {summary: "sign in with Kakao", flags: loginCmd},
	"logout":        {summary: "sign out", flags: logoutCmd},
	"status":        {summary: "print the login state", watchesLogin: true, flags: statusCmd},
}

// viewError turns a stored view error into a command failure.
func viewError(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

// printCamelJSON prints a wire payload with its keys in camelCase, matching
// the normalized views.
func printCamelJSON(out io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("decode output: %w", err)
	}
	return printJSON(out, normalize.CamelizeKeys(generic))
}

// savedLookup loads the favorites of a logged-in user so recommendations
// carry their saved flag. It returns nil when logged out or on failure.
func savedLookup(ctx context.Context, a *app) state.SavedLookup {
	if ok, err := a.auth.Check(ctx); err != nil || !ok {
		return nil
	}
	favorites := state.NewFavoritesState(a.services.Favorite, a.recorder, a.visit, a.logger)
	favorites.Load(ctx)
	if msg := favorites.Snapshot().Error; msg != "" {
		a.log.Debug().Str("error", msg).Msg("Favorites unavailable, saved flags omitted")
		return nil
	}
	return favorites
}

func printJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func recommendCmd(fs *flag.FlagSet) execFunc {
	slot := fs.String("slot", "", "breakfast, lunch or dinner (default: current time)")
	category := fs.String("category", "", "category id")
	return func(ctx context.Context, a *app, out io.Writer) error {
		ts := models.TimeSlot(*slot)
		if ts == "" {
			ts = models.TimeSlotAt(time.Now())
		}
		s := state.NewRecommendationState(a.services.Recommendation, a.recorder, a.visit, a.logger)
		s.UseSaved(savedLookup(ctx, a))
		s.LoadSimple(ctx, ts, *category)
		snap := s.Snapshot()
		if err := viewError(snap.Error); err != nil {
			return err
		}
		return printJSON(out, snap.Batch)
	}
}

func collaborativeCmd(fs *flag.FlagSet) execFunc {
	limit := fs.Int("limit", 10, "number of recommendations")
	users := fs.Bool("users", false, "list similar users instead")
	return func(ctx context.Context, a *app, out io.Writer) error {
		if *users {
			res, err := a.services.Recommendation.CollaborativeUsers(a.visit.Context(ctx), a.visit.ID(), *limit)
			if err != nil {
				return err
			}
			return printCamelJSON(out, res)
		}
		s := state.NewRecommendationState(a.services.Recommendation, a.recorder, a.visit, a.logger)
		s.UseSaved(savedLookup(ctx, a))
		s.LoadCollaborative(ctx, *limit)
		snap := s.Snapshot()
		if err := viewError(snap.Error); err != nil {
			return err
		}
		return printJSON(out, snap.Batch)
	}
}

func categoriesCmd(fs *flag.FlagSet) execFunc {
	return func(ctx context.Context, a *app, out io.Writer) error {
		s := state.NewCategoryState(a.services.Category, a.recorder, a.logger)
		s.Load(ctx)
		snap := s.Snapshot()
		if err := viewError(snap.Error); err != nil {
			return err
		}
		return printJSON(out, snap.Categories)
	}
}

func questionsCmd(fs *flag.FlagSet) execFunc {
	ask := fs.String("ask", "", "free-form question for the AI")
	hint := fs.String("context", "", "extra context for -ask")
	return func(ctx context.Context, a *app, out io.Writer) error {
		s := state.NewQuestionState(a.services.Question, a.visit, a.logger)
		if *ask != "" {
			s.Ask(ctx, *ask, *hint)
			snap := s.Snapshot()
			if err := viewError(snap.Error); err != nil {
				return err
			}
			return printJSON(out, snap.Answer)
		}
		s.Load(ctx)
		snap := s.Snapshot()
		if err := viewError(snap.Error); err != nil {
			return err
		}
		return printJSON(out, snap.Questions)
	}
}

func favoritesCmd(fs *flag.FlagSet) execFunc {
	toggle := fs.String("toggle", "", "menu id to add or remove")
	return func(ctx context.Context, a *app, out io.Writer) error {
		s := state.NewFavoritesState(a.services.Favorite, a.recorder, a.visit, a.logger)
		s.Load(ctx)
		if *toggle != "" {
			saved := s.Toggle(ctx, *toggle)
			if err := viewError(s.Snapshot().Error); err != nil {
				return err
			}
			return printJSON(out, map[string]interface{}{"menuId": *toggle, "isSaved": saved})
		}
		snap := s.Snapshot()
		if err := viewError(snap.Error); err != nil {
			return err
		}
		return printJSON(out, snap.Favorites)
	}
}

func placesCmd(fs *flag.FlagSet) execFunc {
	query := fs.String("q", "", "search keyword")
	lat := fs.Float64("lat", 0, "latitude of the search center")
	lng := fs.Float64("lng", 0, "longitude of the search center")
	address := fs.String("address", "", "address to use as the search center")
	radius := fs.Int("radius", state.DefaultNearbyRadius, "search radius in meters")
	return func(ctx context.Context, a *app, out io.Writer) error {
		if *address != "" {
			coords, err := a.places.AddressToCoord(ctx, *address)
			if err != nil {
				return fmt.Errorf("geocode %q: %w", *address, err)
			}
			*lat, *lng = coords.Lat, coords.Lng
		}
		s := state.NewNearbyState(a.places, a.recorder, *radius, a.logger)
		s.Search(ctx, *query, *lat, *lng)
		snap := s.Snapshot()
		if err := viewError(snap.Error); err != nil {
			return err
		}
		return printJSON(out, snap)
	}
}

func loginURLCmd(fs *flag.FlagSet) execFunc {
	st := fs.String("state", "", "oauth state (default: random)")
	return func(_ context.Context, a *app, out io.Writer) error {
		if *st == "" {
			*st = uuid.NewString()
		}
		_, err := fmt.Fprintln(out, a.auth.LoginURL(*st))
		return err
	}
}

func loginCmd(fs *flag.FlagSet) execFunc {
	code := fs.String("code", "", "authorization code from the redirect")
	cached := fs.Bool("cached", false, "sign in again with the stored Kakao token")
	listen := fs.String("listen", "", "address for the redirect listener (default: from the redirect URI)")
	wait := fs.Duration("wait", 5*time.Minute, "how long to wait for the redirect")
	return func(ctx context.Context, a *app, out io.Writer) error {
		var (
			res *models.LoginResult
			err error
		)
		switch {
		case *cached:
			res, err = a.auth.CachedLogin(ctx)
		case *code != "":
			res, err = a.auth.CompleteLogin(ctx, *code)
		default:
			res, err = awaitRedirect(ctx, a, out, *listen, *wait)
		}
		if err != nil {
			return err
		}
		return printJSON(out, res.User)
	}
}

// awaitRedirect serves the redirect URI locally, prints the authorization
// URL and completes the login with the first callback.
func awaitRedirect(ctx context.Context, a *app, out io.Writer, listen string, wait time.Duration) (*models.LoginResult, error) {
	redirect, err := url.Parse(a.cfg.Kakao.RedirectURI)
	if err != nil {
		return nil, fmt.Errorf("parse redirect uri: %w", err)
	}
	if listen == "" {
		listen = redirect.Host
	}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return nil, fmt.Errorf("listen for redirect: %w", err)
	}
	callbacks := auth.NewCallbackChannel()
	srv := &http.Server{
		Handler: auth.CallbackRouter(redirect.Path, callbacks,
			middleware.CorrelationID,
			middleware.AccessLog(a.logger.For(logging.CategoryAuth)),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Warn().Err(err).Msg("Redirect listener stopped")
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	st := uuid.NewString()
	if _, err := fmt.Fprintf(out, "Open this URL to sign in:\n%s\n", a.auth.LoginURL(st)); err != nil {
		return nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	return a.auth.AwaitLogin(waitCtx, callbacks, st)
}

func logoutCmd(fs *flag.FlagSet) execFunc {
	keepCache := fs.Bool("keep-cache", false, "keep the Kakao token for a later -cached login")
	return func(ctx context.Context, a *app, out io.Writer) error {
		logout := a.auth.Logout
		if *keepCache {
			logout = a.auth.LogoutKeepCache
		}
		if err := logout(ctx); err != nil {
			return err
		}
		return printJSON(out, map[string]string{"state": a.auth.State().String()})
	}
}

type statusView struct {
	State    string `json:"state"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
	Breaker  string `json:"breaker"`
	Session  string `json:"sessionId"`
}

func statusCmd(fs *flag.FlagSet) execFunc {
	watch := fs.Bool("watch", false, "keep running and print every login change")
	return func(ctx context.Context, a *app, out io.Writer) error {
		changes, cancel := a.auth.Subscribe()
		defer cancel()

		current, err := a.auth.Refresh(ctx)
		if err != nil {
			return err
		}
		if err := printStatus(ctx, a, out, current); err != nil {
			return err
		}
		if !*watch {
			return nil
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case s := <-changes:
				if s == current {
					continue
				}
				current = s
				if err := printStatus(ctx, a, out, s); err != nil {
					return err
				}
			}
		}
	}
}

func printStatus(ctx context.Context, a *app, out io.Writer, s auth.State) error {
	view := statusView{State: s.String(), Breaker: a.client.BreakerState(), Session: a.visit.ID()}
	if s == auth.StateLoggedIn {
		nickname, email, err := a.auth.Profile(ctx)
		if err != nil {
			return err
		}
		view.Nickname, view.Email = nickname, email
	}
	return printJSON(out, view)
}
