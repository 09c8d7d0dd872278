package cmd

import (
	errors "github.com/Laisky/errors/v2"

	"github.com/Laisky/weather-widget/internal/lookup"
	"github.com/Laisky/weather-widget/library/config"
	"github.com/Laisky/weather-widget/library/log"
	"github.com/Laisky/weather-widget/library/weather"
)

// widget bundles the collaborators shared by every front end.
type widget struct {
	settings config.Settings
	messages lookup.Messages
	client   *weather.Client
}

func newWidget(settings config.Settings) (*widget, error) {
	messages, err := lookup.MessagesFor(settings.UI.Language)
	if err != nil {
		return nil, errors.Wrap(err, "load messages")
	}

	client := weather.NewClient(settings.Weather.APIKey,
		weather.WithEndpoint(settings.Weather.Endpoint),
		weather.WithUnits(settings.Weather.Units),
		weather.WithTimeout(settings.Weather.Timeout),
		weather.WithLogger(log.Logger.Named("weather")),
	)

	return &widget{
		settings: settings,
		messages: messages,
		client:   client,
	}, nil
}

// newController builds a query controller over the provider client.
func (w *widget) newController() (*lookup.Controller, error) {
	opts := []lookup.Option{
		lookup.WithMessages(w.messages),
		lookup.WithLogger(log.Logger.Named("lookup")),
	}
	if !w.settings.Lookup.DiscardStale {
		opts = append(opts, lookup.WithLastSettledWins())
	}

	return lookup.NewController(w.client, opts...)
}
