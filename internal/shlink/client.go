package shlink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	apiPrefix = "/rest/v3"

	// DefaultPageSize размер страницы при полном обходе списка
	DefaultPageSize = 100

	maxErrorBody = 64 << 10
)

// Client HTTP клиент Shlink REST API. Повторы запросов не выполняются
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient создает клиент Shlink
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithHTTP создает клиент с собственным http.Client
func NewClientWithHTTP(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// ListShortURLs возвращает одну страницу коротких ссылок
func (c *Client) ListShortURLs(ctx context.Context, params ListParams) (*ShortURLList, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.ItemsPerPage > 0 {
		query.Set("itemsPerPage", strconv.Itoa(params.ItemsPerPage))
	}
	if params.SearchTerm != "" {
		query.Set("searchTerm", params.SearchTerm)
	}
	for _, tag := range params.Tags {
		query.Add("tags[]", tag)
	}
	if params.TagsMode != "" {
		query.Set("tagsMode", params.TagsMode)
	}
	if params.OrderBy != "" {
		query.Set("orderBy", params.OrderBy)
	}
	setDate(query, "startDate", params.StartDate)
	setDate(query, "endDate", params.EndDate)
	if params.ExcludeMaxVisitsReached {
		query.Set("excludeMaxVisitsReached", "true")
	}
	if params.ExcludePastValidUntil {
		query.Set("excludePastValidUntil", "true")
	}

	var resp shortURLListResponse
	if err := c.do(ctx, http.MethodGet, "/short-urls", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.ShortURLs, nil
}

// ListAllShortURLs обходит все страницы списка
func (c *Client) ListAllShortURLs(ctx context.Context, params ListParams, pageSize int) ([]ShortURL, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	params.ItemsPerPage = pageSize

	var all []ShortURL
	for page := 1; ; page++ {
		params.Page = page
		list, err := c.ListShortURLs(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to list short URLs page %d: %w", page, err)
		}
		all = append(all, list.Data...)
		if !list.Pagination.HasNext() || len(list.Data) == 0 {
			return all, nil
		}
	}
}

// GetShortURL возвращает одну ссылку по коду
func (c *Client) GetShortURL(ctx context.Context, code string) (*ShortURL, error) {
	var resp ShortURL
	if err := c.do(ctx, http.MethodGet, "/short-urls/"+url.PathEscape(code), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateShortURL создает ссылку
func (c *Client) CreateShortURL(ctx context.Context, params CreateParams) (*ShortURL, error) {
	var resp ShortURL
	if err := c.do(ctx, http.MethodPost, "/short-urls", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateShortURL частично обновляет ссылку
func (c *Client) UpdateShortURL(ctx context.Context, code string, params UpdateParams) (*ShortURL, error) {
	var resp ShortURL
	if err := c.do(ctx, http.MethodPatch, "/short-urls/"+url.PathEscape(code), nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteShortURL удаляет ссылку
func (c *Client) DeleteShortURL(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, "/short-urls/"+url.PathEscape(code), nil, nil, nil)
}

// GetVisits возвращает одну страницу переходов по ссылке
func (c *Client) GetVisits(ctx context.Context, code string, params VisitsParams) (*VisitList, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.ItemsPerPage > 0 {
		query.Set("itemsPerPage", strconv.Itoa(params.ItemsPerPage))
	}
	setDate(query, "startDate", params.StartDate)
	setDate(query, "endDate", params.EndDate)
	if params.ExcludeBots {
		query.Set("excludeBots", "true")
	}

	var resp visitListResponse
	if err := c.do(ctx, http.MethodGet, "/short-urls/"+url.PathEscape(code)+"/visits", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Visits, nil
}

// GetRedirectRules возвращает правила перенаправления ссылки
func (c *Client) GetRedirectRules(ctx context.Context, code string) (*RedirectRules, error) {
	var resp RedirectRules
	if err := c.do(ctx, http.MethodGet, "/short-urls/"+url.PathEscape(code)+"/redirect-rules", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health проверяет доступность Shlink
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var resp Health
	if err := c.doURL(ctx, http.MethodGet, c.baseURL+"/rest/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func setDate(query url.Values, key string, t *time.Time) {
	if t != nil {
		query.Set(key, t.Format(time.RFC3339))
	}
}

// do выполняет запрос к API и декодирует ответ в out
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.doURL(ctx, method, endpoint, body, out)
}

func (c *Client) doURL(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &APIError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Detail: "malformed response body", Err: err}
	}
	return nil
}

// decodeError собирает APIError из тела problem+json
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		apiErr.Detail = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var problem APIError
	if err := json.Unmarshal(raw, &problem); err != nil {
		apiErr.Detail = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Type = problem.Type
	apiErr.Title = problem.Title
	apiErr.Detail = problem.Detail
	if apiErr.Detail == "" {
		apiErr.Detail = problem.Title
	}
	return apiErr
}
