package infra_catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/cinematch/core/internal/model"
)

var (
	ErrRequestFailed = errors.New("catalog request failed")
	ErrBadStatus     = errors.New("catalog returned non-OK status")
	ErrDecode        = errors.New("failed to decode catalog response")
	ErrUnauthorized  = errors.New("catalog rejected credentials")
)

// Client talks to the remote catalog backend. Every call is best-effort
// from the engine's point of view, callers decide whether a failure is
// load-bearing.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

type ClientOption func(*Client)

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MovieFilter narrows a Movies call. Zero values mean "not set".
type MovieFilter struct {
	Search   string
	GenreIDs []int64
	SortBy   string
}

func (c *Client) Movies(ctx context.Context, offset, limit int, filter MovieFilter) ([]model.Movie, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if len(filter.GenreIDs) > 0 {
		ids := make([]string, len(filter.GenreIDs))
		for i, id := range filter.GenreIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		q.Set("genre_ids", strings.Join(ids, ","))
	}
	if filter.SortBy != "" {
		q.Set("sort_by", filter.SortBy)
	}

	var movies []model.Movie
	if err := c.get(ctx, "/api/movies?"+q.Encode(), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// PopularMovies is the global ranking page that seeds the hero banner.
func (c *Client) PopularMovies(ctx context.Context, limit int) ([]model.Movie, error) {
	return c.Movies(ctx, 0, limit, MovieFilter{SortBy: "popularity"})
}

// MoviesByGenre fetches one bounded page restricted to a single genre.
func (c *Client) MoviesByGenre(ctx context.Context, genreID int64, limit int) ([]model.Movie, error) {
	return c.Movies(ctx, 0, limit, MovieFilter{GenreIDs: []int64{genreID}})
}

// SearchMovies filters the catalog by title.
func (c *Client) SearchMovies(ctx context.Context, query string, limit int) ([]model.Movie, error) {
	return c.Movies(ctx, 0, limit, MovieFilter{Search: query})
}

func (c *Client) Movie(ctx context.Context, id model.MovieID) (model.Movie, error) {
	var movie model.Movie
	if err := c.get(ctx, fmt.Sprintf("/api/movies/%d", id), &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := c.get(ctx, "/api/genres", &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (c *Client) MovieGenres(ctx context.Context, id model.MovieID) ([]model.Genre, error) {
	var genres []model.Genre
	if err := c.get(ctx, fmt.Sprintf("/api/genres/movie/%d", id), &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

type recommendationRequest struct {
	UserID         model.UserID `json:"user_id,omitempty"`
	SelectedGenres []int64      `json:"selected_genres"`
}

// Recommendations asks the server-side recommender for a ranked list.
// userID may be EmptyUserID for guest mode, the selection drives it then.
func (c *Client) Recommendations(ctx context.Context, userID model.UserID, genreIDs []int64) ([]model.Movie, error) {
	if genreIDs == nil {
		genreIDs = []int64{}
	}
	var movies []model.Movie
	err := c.post(ctx, "/api/recommend", recommendationRequest{
		UserID:         userID,
		SelectedGenres: genreIDs,
	}, &movies)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *Client) Interactions(ctx context.Context, userID model.UserID) ([]model.Interaction, error) {
	var interactions []model.Interaction
	if err := c.get(ctx, fmt.Sprintf("/api/interactions/user/%d", userID), &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

type interactionUpsert struct {
	UserID  model.UserID  `json:"user_id"`
	MovieID model.MovieID `json:"movie_id"`
	IsLiked bool          `json:"is_liked"`
	Rating  int           `json:"rating"`
}

// UpsertInteraction writes the whole (liked, rating) record for the pair.
// The backend keeps one record per pair and updates in place.
func (c *Client) UpsertInteraction(ctx context.Context, userID model.UserID, movieID model.MovieID, liked model.Liked, rating int) error {
	return c.post(ctx, "/api/interactions", interactionUpsert{
		UserID:  userID,
		MovieID: movieID,
		IsLiked: liked != nil && *liked,
		Rating:  rating,
	}, nil)
}

func (c *Client) DeleteInteraction(ctx context.Context, userID model.UserID, movieID model.MovieID) error {
	path := fmt.Sprintf("/api/interactions/user/%d/movie/%d", userID, movieID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return c.do(req, nil)
}

type authResponse struct {
	Status string     `json:"status"`
	User   model.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	var resp authResponse
	err := c.post(ctx, "/api/users/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}

func (c *Client) Register(ctx context.Context, fullName, email, password string, genreIDs []int64) (model.User, error) {
	if genreIDs == nil {
		genreIDs = []int64{}
	}
	var resp authResponse
	err := c.post(ctx, "/api/users/auth/register", map[string]any{
		"full_name":       fullName,
		"email":           email,
		"password":        password,
		"selected_genres": genreIDs,
	}, &resp)
	if err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}

func (c *Client) SavePreferences(ctx context.Context, userID model.UserID, genreIDs []int64) error {
	return c.post(ctx, fmt.Sprintf("/api/users/%d/preferences", userID), map[string]any{
		"selected_genres": genreIDs,
	}, nil)
}

type chatResponse struct {
	Response string `json:"response"`
}

func (c *Client) SendChatMessage(ctx context.Context, text string, userID model.UserID) (string, error) {
	body := map[string]any{"message": text}
	if userID != model.EmptyUserID {
		body["user_id"] = userID
	}
	var resp chatResponse
	if err := c.post(ctx, "/api/chat", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	c.logger.Debug("catalog call", slog.String("method", req.Method), slog.String("url", req.URL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %d: %s", ErrBadStatus, resp.StatusCode, string(excerpt))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
