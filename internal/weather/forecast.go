// Package weather produces the sample forecast served at /weatherforecast.
package weather

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	minTempC = -20
	maxTempC = 55 // exclusive

	dateLayout = "2006-01-02"
)

var summaries = [...]string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Summaries returns a copy of the fixed summary vocabulary.
func Summaries() []string {
	return append([]string(nil), summaries[:]...)
}

// Date is a calendar day encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type Forecast struct {
	Date         Date    `json:"date"`
	TemperatureC int     `json:"temperatureC"`
	Summary      *string `json:"summary"`
	TemperatureF int     `json:"temperatureF"`
}

// Fahrenheit truncates toward zero.
func Fahrenheit(c int) int {
	return 32 + int(float64(c)/0.5556)
}

func NewForecast(date time.Time, tempC int, summary *string) Forecast {
	return Forecast{
		Date:         Date{date},
		TemperatureC: tempC,
		Summary:      summary,
		TemperatureF: Fahrenheit(tempC),
	}
}

// Generator is stateless apart from its random source and clock; both are
// injectable so tests get fixed output.
type Generator struct {
	Rand *rand.Rand
	Now  func() time.Time

	mu sync.Mutex
}

func NewGenerator() *Generator {
	return &Generator{
		Rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Now:  time.Now,
	}
}

// Forecasts returns n forecasts for the days following today.
func (g *Generator) Forecasts(n int) []Forecast {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.Now()
	out := make([]Forecast, 0, n)
	for i := 1; i <= n; i++ {
		tempC := minTempC + g.Rand.IntN(maxTempC-minTempC)
		summary := summaries[g.Rand.IntN(len(summaries))]
		out = append(out, NewForecast(today.AddDate(0, 0, i), tempC, &summary))
	}
	return out
}
