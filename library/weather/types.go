package weather

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	errors "github.com/Laisky/errors/v2"
)

const iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// Observation is the current conditions reported for one location.
type Observation struct {
	Location      string  `json:"location"`
	ConditionCode string  `json:"condition_code"`
	Description   string  `json:"description"`
	TemperatureC  float64 `json:"temperature_c"`
}

// IconURL returns the provider-hosted image for the observation's condition.
func (o Observation) IconURL() string {
	return IconURL(o.ConditionCode)
}

// IconURL substitutes an icon code into the provider image template.
func IconURL(code string) string {
	return fmt.Sprintf(iconURLTemplate, strings.TrimSpace(code))
}

// currentResponse models the subset of fields required from the current weather endpoint.
type currentResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
	Name    string          `json:"name"`
	Weather []struct {
		Icon        string `json:"icon"`
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// code returns the numeric `cod` field, which the provider sends as a number or a string.
// It returns 0 when the field is absent or unparsable.
func (r currentResponse) code() int {
	raw := strings.Trim(strings.TrimSpace(string(r.Cod)), `"`)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func (r currentResponse) observation() (*Observation, error) {
	if len(r.Weather) == 0 {
		return nil, errors.New("response has no weather conditions")
	}
	if r.Main == nil || r.Main.Temp == nil {
		return nil, errors.New("response has no temperature")
	}

	return &Observation{
		Location:      r.Name,
		ConditionCode: r.Weather[0].Icon,
		Description:   r.Weather[0].Description,
		TemperatureC:  *r.Main.Temp,
	}, nil
}
