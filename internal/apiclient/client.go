// Package apiclient is a typed consumer of the content read API, used by
// programmatic clients and the sitecheck tool.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client handles HTTP communication with the content API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL + "/api",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching the backend

type Program struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Gender      string `json:"gender"`
	ProgramType string `json:"programType"`
	Featured    bool   `json:"featured"`
	Coach       *Coach `json:"coach,omitempty"`
}

type Coach struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
}

type Testimonial struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
	Quote      string `json:"quote"`
	Location   string `json:"location"`
}

type Tournament struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	ExternalLink string `json:"externalLink"`
}

type Page struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	HeroType  string          `json:"heroType"`
	Blocks    json.RawMessage `json:"blocks"`
	Published bool            `json:"published"`
}

type docsEnvelope[T any] struct {
	Docs []T `json:"docs"`
}

// ProgramQuery mirrors the list endpoint's facets. Empty or "all" values
// impose no constraint.
type ProgramQuery struct {
	ProgramType string
	Location    string
	Featured    *bool
	Limit       int
	Depth       int
}

func (q ProgramQuery) encode() string {
	values := url.Values{}
	if q.ProgramType != "" {
		values.Set("where[programType][equals]", q.ProgramType)
	}
	if q.Location != "" {
		values.Set("where[location][equals]", q.Location)
	}
	if q.Featured != nil {
		values.Set("where[featured][equals]", strconv.FormatBool(*q.Featured))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Depth > 0 {
		values.Set("depth", strconv.Itoa(q.Depth))
	}
	return values.Encode()
}

func (c *Client) ListPrograms(ctx context.Context, query ProgramQuery) ([]Program, error) {
	path := "/programs"
	if encoded := query.encode(); encoded != "" {
		path += "?" + encoded
	}
	return getDocs[Program](ctx, c, path)
}

func (c *Client) ListCoaches(ctx context.Context, limit int) ([]Coach, error) {
	path := "/coaches"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	return getDocs[Coach](ctx, c, path)
}

func (c *Client) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return getDocs[Testimonial](ctx, c, "/testimonials")
}

func (c *Client) ListTournaments(ctx context.Context) ([]Tournament, error) {
	return getDocs[Tournament](ctx, c, "/tournaments")
}

func (c *Client) GetProgram(ctx context.Context, slug string) (*Program, error) {
	var program Program
	if err := c.getJSON(ctx, "/programs/"+url.PathEscape(slug), &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (c *Client) GetPage(ctx context.Context, slug string) (*Page, error) {
	var page Page
	if err := c.getJSON(ctx, "/pages/"+url.PathEscape(slug), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func getDocs[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var envelope docsEnvelope[T]
	if err := c.getJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return envelope.Docs, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
