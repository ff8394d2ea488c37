// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string `json:"title"`
}

func TestGetJSON_Success(t *testing.T) {
	var gotUA, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"title":"Hello"}`))
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "citeref/test", &p)
	require.NoError(t, err)

	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "citeref/test", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetJSON_NonOKStatus(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "", &p)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Equal(t, "slow down", se.Body)
	// No retry: exactly one request.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetJSON_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "", &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestGetJSON_TrailingData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "markup after object", body: `{"title":"Home"} <html>oops`},
		{name: "second object", body: `{"title":"Home"}{"title":"Other"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			var p payload
			err := GetJSON(context.Background(), ts.Client(), ts.URL, "", &p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing response")
		})
	}
}

func TestGetJSON_TrailingWhitespace(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{\"title\":\"Home\"}\n"))
	}))
	defer ts.Close()

	var p payload
	require.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL, "", &p))
	assert.Equal(t, "Home", p.Title)
}

func TestGetJSON_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var p payload
	err := GetJSON(ctx, ts.Client(), ts.URL, "", &p)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetJSON_InvalidURL(t *testing.T) {
	var p payload
	err := GetJSON(context.Background(), http.DefaultClient, "://bad", "", &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating request")
}
