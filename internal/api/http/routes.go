package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-widget/internal/weather"
	"github.com/i474232898/weather-widget/internal/widget"
)

//go:embed templates/widget.html
var templateFS embed.FS

var widgetPage = template.Must(template.ParseFS(templateFS, "templates/widget.html"))

var validate = validator.New()

// Clock returns the time used for the day/night phrase.
type Clock func() time.Time

// weatherQuery holds the query parameters of the weather endpoint.
type weatherQuery struct {
	Location string `validate:"required"`
}

// weatherResponse is the JSON body of a successful lookup.
type weatherResponse struct {
	weather.Snapshot
	Lines []string `json:"lines"`
}

type pageData struct {
	Query  string
	Button string
	Error  string
	Lines  []string
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. Every request runs
// its own widget, so handlers share nothing but the provider.
func RegisterRoutes(app *fiber.App, provider weather.Provider, now Clock) {
	if now == nil {
		now = time.Now
	}

	app.Get("/", func(c *fiber.Ctx) error {
		data := pageData{Button: widget.LabelSearch}

		if c.Context().QueryArgs().Has("location") {
			w := widget.New()
			w.SetQuery(c.Query("location"))
			w.Lookup(c.UserContext(), provider)

			data.Query = w.Query()
			data.Button = w.ButtonLabel()
			data.Error = w.ErrorMessage()
			data.Lines = w.Lines(now())
		}

		var buf bytes.Buffer
		if err := widgetPage.Execute(&buf, data); err != nil {
			return err
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	})

	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		q := weatherQuery{Location: strings.TrimSpace(c.Query("location"))}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, widget.MsgInvalidLocation)
		}

		w := widget.New()
		w.SetQuery(q.Location)

		switch s := w.Lookup(c.UserContext(), provider).(type) {
		case widget.Success:
			return c.JSON(weatherResponse{
				Snapshot: s.Snapshot,
				Lines:    widget.Lines(s.Snapshot, now()),
			})
		case widget.Failed:
			return fiber.NewError(fiber.StatusNotFound, s.Message)
		default:
			return fiber.NewError(fiber.StatusInternalServerError, widget.MsgNotFound)
		}
	})
}
