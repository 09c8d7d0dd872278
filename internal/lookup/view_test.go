package lookup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Laisky/weather-widget/library/weather"
)

func TestClassifyPriority(t *testing.T) {
	result := &taipei

	tests := []struct {
		loading bool
		errText string
		result  *weather.Observation
		want    View
	}{
		{false, "", nil, ViewPrompt},
		{false, "", result, ViewResult},
		{false, "failed", nil, ViewError},
		{false, "failed", result, ViewError},
		{true, "", nil, ViewLoading},
		{true, "", result, ViewLoading},
		{true, "failed", nil, ViewLoading},
		{true, "failed", result, ViewLoading},
	}

	for _, tc := range tests {
		got := Classify(tc.loading, tc.errText, tc.result)
		require.Equal(t, tc.want, got,
			"loading=%v err=%q result=%v", tc.loading, tc.errText, tc.result != nil)
	}
}

func TestStateViews(t *testing.T) {
	require.Equal(t, ViewPrompt, IdleState().View())
	require.Equal(t, ViewLoading, LoadingState().View())
	require.Equal(t, ViewError, FailedState(weather.KindNetwork, "x").View())
	require.Equal(t, ViewError, FailedState(weather.KindNetwork, "").View())
	require.Equal(t, ViewResult, SucceededState(&taipei).View())
	require.Equal(t, ViewPrompt, SucceededState(nil).View())
}

func TestStateResultIsCopied(t *testing.T) {
	obs := taipei
	state := SucceededState(&obs)
	obs.Location = "changed"

	got, ok := state.Result()
	require.True(t, ok)
	require.Equal(t, "Taipei", got.Location)

	got.Location = "changed again"
	again, _ := state.Result()
	require.Equal(t, "Taipei", again.Location)
}

func TestViewString(t *testing.T) {
	require.Equal(t, "loading", ViewLoading.String())
	require.Equal(t, "error", ViewError.String())
	require.Equal(t, "prompt", ViewPrompt.String())
	require.Equal(t, "result", ViewResult.String())
	require.Equal(t, "succeeded", PhaseSucceeded.String())
}

func TestFormatTemperature(t *testing.T) {
	tests := map[float64]string{
		28.5:   "28.5°C",
		28:     "28°C",
		-3.25:  "-3.25°C",
		0:      "0°C",
		12.345: "12.345°C",
	}
	for in, want := range tests {
		require.Equal(t, want, FormatTemperature(in))
	}
}

func TestNewCard(t *testing.T) {
	card := NewCard(taipei)

	require.Equal(t, "01d", card.IconCode)
	require.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", card.IconURL)
	require.Equal(t, "Taipei\nclear sky\n28.5°C", card.String())
}

func TestMessagesFor(t *testing.T) {
	m, err := MessagesFor("")
	require.NoError(t, err)
	require.Equal(t, MessagesZhTW, m)

	m, err = MessagesFor("zh-TW")
	require.NoError(t, err)
	require.Equal(t, "讀取中...", m.Loading)

	m, err = MessagesFor("EN")
	require.NoError(t, err)
	require.Equal(t, MessagesEN, m)

	_, err = MessagesFor("fr")
	require.Error(t, err)
}

func TestMessagesDescribe(t *testing.T) {
	require.Equal(t, MessagesZhTW.NotFound, MessagesZhTW.Describe(weather.KindNotFound))
	for _, kind := range []weather.ErrorKind{
		weather.KindNetwork, weather.KindAuth, weather.KindMalformed, weather.KindUnknown,
	} {
		require.Equal(t, MessagesZhTW.Generic, MessagesZhTW.Describe(kind))
	}
}
