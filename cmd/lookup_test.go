package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Laisky/weather-widget/internal/web"
	"github.com/Laisky/weather-widget/library/config"
)

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "Taipei":
			_, _ = w.Write([]byte(`{"cod":200,"name":"Taipei",` +
				`"weather":[{"icon":"01d","description":"clear sky"}],"main":{"temp":28.5}}`))
		case "New York":
			_, _ = w.Write([]byte(`{"cod":200,"name":"New York",` +
				`"weather":[{"icon":"02n","description":"few clouds"}],"main":{"temp":12}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestWidget(t *testing.T, endpoint, lang string) *widget {
	t.Helper()
	w, err := newWidget(config.Settings{
		Weather: config.WeatherSettings{
			APIKey:   "key",
			Endpoint: endpoint,
			Units:    "metric",
			Timeout:  5 * time.Second,
		},
		UI:     config.UISettings{Language: lang},
		Lookup: config.LookupSettings{DiscardStale: true},
	})
	require.NoError(t, err)
	return w
}

func TestNewWidgetRejectsUnknownLanguage(t *testing.T) {
	_, err := newWidget(config.Settings{UI: config.UISettings{Language: "fr"}})
	require.Error(t, err)
}

func TestLookupOncePlain(t *testing.T) {
	server := newProviderServer(t)
	controller, err := newTestWidget(t, server.URL, "en").newController()
	require.NoError(t, err)

	var out bytes.Buffer
	ok, err := lookupOnce(context.Background(), controller, "New York", false, &out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "New York\nfew clouds\n12°C\n", out.String())
}

func TestLookupOnceNotFound(t *testing.T) {
	server := newProviderServer(t)
	controller, err := newTestWidget(t, server.URL, "zh-TW").newController()
	require.NoError(t, err)

	var out bytes.Buffer
	ok, err := lookupOnce(context.Background(), controller, "Atlantis", false, &out)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "找不到城市，請確認拼字\n", out.String())
}

func TestLookupOnceBlankCity(t *testing.T) {
	server := newProviderServer(t)
	controller, err := newTestWidget(t, server.URL, "en").newController()
	require.NoError(t, err)

	var out bytes.Buffer
	ok, err := lookupOnce(context.Background(), controller, "  ", false, &out)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "Enter a city to start\n", out.String())
}

func TestLookupOnceJSON(t *testing.T) {
	server := newProviderServer(t)
	controller, err := newTestWidget(t, server.URL, "en").newController()
	require.NoError(t, err)

	var out bytes.Buffer
	ok, err := lookupOnce(context.Background(), controller, "Taipei", true, &out)
	require.NoError(t, err)
	require.True(t, ok)

	var resp web.WeatherResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Equal(t, "result", resp.State)
	require.Equal(t, "28.5°C", resp.Result.Temperature)

	out.Reset()
	ok, err = lookupOnce(context.Background(), controller, "Atlantis", true, &out)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Equal(t, "error", resp.State)
	require.Equal(t, "NOT_FOUND", resp.ErrorKind)
}

func TestLookupOnceUnreachableProvider(t *testing.T) {
	server := newProviderServer(t)
	endpoint := server.URL
	server.Close()

	controller, err := newTestWidget(t, endpoint, "en").newController()
	require.NoError(t, err)

	var out bytes.Buffer
	ok, err := lookupOnce(context.Background(), controller, "Taipei", false, &out)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "An error occurred, try again later\n", out.String())
}
