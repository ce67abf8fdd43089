// Package format turns raw weather fields into the sentences shown by the widget.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-widget/internal/weather"
)

var conditionPhrases = map[string]string{
	"sunny":         "It's a peaceful sunny day",
	"partly cloudy": "It's a beautiful cloudy day",
	"overcast":      "The sky is overcast",
	"rain":          "It's a rainy day! Don't forget your umbrella",
	"thunderstorm":  "Avoid going outside! Thunderstorms are expected",
	"mist":          "It's misty outside",
	"fog":           "Be careful, there's fog outside",
}

// Temperature returns the advice matching a temperature. Brackets are
// half-open on the low end, so 0, 10, 20 and 30 belong to the warmer bracket.
// Units other than Celsius get a bare reading.
func Temperature(t float64, unit weather.Unit) string {
	v := number(t)
	if unit != weather.Celsius {
		return fmt.Sprintf("%s°%s", v, unit)
	}

	switch {
	case t < 0:
		return fmt.Sprintf("It's freezing at %s°C! Bundle up!", v)
	case t < 10:
		return fmt.Sprintf("It's quite cold at %s°C. Wear warm clothes.", v)
	case t < 20:
		return fmt.Sprintf("The temperature is %s°C. Comfortable for a light jacket.", v)
	case t < 30:
		return fmt.Sprintf("It is a pleasant at %s°C. Enjoy the nice weather.", v)
	default:
		return fmt.Sprintf("It's hot at %s°C. Stay hydrated!", v)
	}
}

// Condition maps a known condition label to a sentence. Unknown labels are
// returned as given.
func Condition(description string) string {
	if phrase, ok := conditionPhrases[strings.ToLower(description)]; ok {
		return phrase
	}
	return description
}

// Location appends "at night" or "during the day" depending on the hour of now.
func Location(location string, now time.Time) string {
	if IsNight(now.Hour()) {
		return location + " at night"
	}
	return location + " during the day"
}

// IsNight reports whether hour falls in [18, 24) or [0, 6).
func IsNight(hour int) bool {
	return hour >= 18 || hour < 6
}

// number prints the shortest representation: 15, -5, 15.3.
func number(t float64) string {
	if t == 0 {
		// -0 from the API reads as 0
		return "0"
	}
	return strconv.FormatFloat(t, 'f', -1, 64)
}
