package shlink

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "secret-key", 2*time.Second)
}

func TestClient_ListShortURLs_SendsAPIKeyAndQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "/rest/v3/short-urls", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("itemsPerPage"))
		assert.Equal(t, []string{"a", "b"}, r.URL.Query()["tags[]"])
		assert.Equal(t, "go", r.URL.Query().Get("searchTerm"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"shortUrls":{"data":[{"shortCode":"abc","longUrl":"https://example.com","visitsSummary":{"total":7}}],
			"pagination":{"currentPage":2,"pagesCount":3}}}`))
	})

	list, err := client.ListShortURLs(context.Background(), ListParams{
		Page:         2,
		ItemsPerPage: 100,
		SearchTerm:   "go",
		Tags:         []string{"a", "b"},
	})
	require.NoError(t, err)

	require.Len(t, list.Data, 1)
	assert.Equal(t, "abc", list.Data[0].ShortCode)
	assert.Equal(t, 7, list.Data[0].Visits())
	assert.True(t, list.Pagination.HasNext())
}

func TestClient_ListAllShortURLs_WalksPages(t *testing.T) {
	var pages []int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pages = append(pages, page)
		resp := shortURLListResponse{ShortURLs: ShortURLList{
			Data:       []ShortURL{{ShortCode: "code" + strconv.Itoa(page)}},
			Pagination: Pagination{CurrentPage: page, PagesCount: 3},
		}}
		json.NewEncoder(w).Encode(resp)
	})

	all, err := client.ListAllShortURLs(context.Background(), ListParams{}, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, pages)
	require.Len(t, all, 3)
	assert.Equal(t, "code3", all[2].ShortCode)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		notFound   bool
	}{
		{
			name:       "problem json",
			status:     http.StatusNotFound,
			body:       `{"type":"https://shlink.io/api/error/short-url-not-found","title":"Short URL not found","detail":"No URL found with short code \"abc\"","status":404}`,
			wantDetail: `No URL found with short code "abc"`,
			notFound:   true,
		},
		{
			name:       "title only",
			status:     http.StatusBadRequest,
			body:       `{"title":"Invalid data","status":400}`,
			wantDetail: "Invalid data",
		},
		{
			name:       "not json",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantDetail: "Bad Gateway",
		},
		{
			name:       "empty body",
			status:     http.StatusUnauthorized,
			wantDetail: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.GetShortURL(context.Background(), "abc")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, tt.notFound, IsNotFound(err))
			assert.Equal(t, tt.status, StatusOf(err))
		})
	}
}

func TestClient_NetworkErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, "key", time.Second)
	_, err := client.GetShortURL(context.Background(), "abc")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsNetwork())
	assert.NotNil(t, errors.Unwrap(apiErr))
	assert.False(t, IsNotFound(err))
}

func TestClient_UpdateShortURL_SendsOnlySetFields(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v3/short-urls/abc", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.Write([]byte(`{"shortCode":"abc","title":"New"}`))
	})

	title := "New"
	updated, err := client.UpdateShortURL(context.Background(), "abc", UpdateParams{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"title": "New"}, received)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "New", *updated.Title)
}

func TestClient_DeleteShortURL_NoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteShortURL(context.Background(), "abc"))
}

func TestClient_GetVisits(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v3/short-urls/abc/visits", r.URL.Path)
		assert.Equal(t, "2026-01-01T00:00:00Z", r.URL.Query().Get("startDate"))
		w.Write([]byte(`{"visits":{"data":[{"referer":"https://google.com","date":"2026-01-02T10:00:00+00:00",
			"userAgent":"Mozilla/5.0","visitLocation":{"countryName":"Spain","cityName":"Madrid"}}],
			"pagination":{"currentPage":1,"pagesCount":1}}}`))
	})

	visits, err := client.GetVisits(context.Background(), "abc", VisitsParams{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, visits.Data, 1)

	v := visits.Data[0].Model()
	assert.Equal(t, "Spain", v.Country)
	assert.Equal(t, "Madrid", v.City)
	assert.Equal(t, "https://google.com", v.Referer)
	assert.False(t, visits.Pagination.HasNext())
}

func TestShortURL_Snapshot(t *testing.T) {
	title := "Docs"
	maxVisits := 10
	u := ShortURL{
		ShortURL:    "https://s.test/abc",
		LongURL:     "https://example.com",
		Title:       &title,
		VisitsCount: 4,
		Tags:        []string{"x"},
		Meta:        Meta{MaxVisits: &maxVisits},
	}

	s := u.Snapshot()
	assert.Equal(t, "Docs", s.Title)
	assert.Equal(t, 4, s.VisitCount)
	assert.Equal(t, &maxVisits, s.MaxVisits)
	assert.Equal(t, []string{"x"}, s.Tags)
}
