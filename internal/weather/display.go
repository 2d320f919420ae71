package weather

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/headfirst-patterns/internal/uuid"
)

// Registrar is the part of a Station a display needs to subscribe itself
type Registrar interface {
	RegisterObserver(o Observer)
	RemoveObserver(observerID string)
}

// DisplayConfig holds what every display needs
type DisplayConfig struct {
	Station       Registrar
	UUIDGenerator uuid.Generator
	Out           io.Writer
}

type display struct {
	id      string
	station Registrar
	out     io.Writer
}

func newDisplay(name string, cfg *DisplayConfig) display {
	return display{
		id:      fmt.Sprintf("%s_%s", name, cfg.UUIDGenerator.New()),
		station: cfg.Station,
		out:     cfg.Out,
	}
}

func (d *display) ID() string { return d.id }

// Unregister stops this display from receiving updates
func (d *display) Unregister() {
	d.station.RemoveObserver(d.id)
}

// CurrentConditions prints the latest temperature and humidity
type CurrentConditions struct {
	display
	temperature float64
	humidity    float64
}

// NewCurrentConditions creates the display and registers it with the station
func NewCurrentConditions(cfg *DisplayConfig) *CurrentConditions {
	d := &CurrentConditions{display: newDisplay("current_conditions", cfg)}
	cfg.Station.RegisterObserver(d)
	return d
}

func (d *CurrentConditions) Update(u Update) error {
	d.temperature = u.Temperature()
	d.humidity = u.Humidity()
	return d.Display()
}

func (d *CurrentConditions) Display() error {
	_, err := fmt.Fprintf(d.out, "Current conditions... temp: %v, humidity: %v\n", d.temperature, d.humidity)
	return err
}

// Statistics tracks every temperature seen and prints average, max and min
type Statistics struct {
	display
	temperatures []float64
}

func NewStatistics(cfg *DisplayConfig) *Statistics {
	d := &Statistics{display: newDisplay("statistics", cfg)}
	cfg.Station.RegisterObserver(d)
	return d
}

func (d *Statistics) Update(u Update) error {
	d.temperatures = append(d.temperatures, u.Temperature())
	return d.Display()
}

// Summary returns average, max and min of the temperatures seen so far
func (d *Statistics) Summary() (avg, high, low float64) {
	if len(d.temperatures) == 0 {
		return 0, 0, 0
	}

	high, low = d.temperatures[0], d.temperatures[0]
	sum := 0.0
	for _, t := range d.temperatures {
		sum += t
		if t > high {
			high = t
		}
		if t < low {
			low = t
		}
	}
	return sum / float64(len(d.temperatures)), high, low
}

func (d *Statistics) Display() error {
	if len(d.temperatures) == 0 {
		return nil
	}

	avg, high, low := d.Summary()
	_, err := fmt.Fprintf(d.out, "Avg/Max/Min temperature = %.1f/%v/%v\n", avg, high, low)
	return err
}

// initialPressure is the standard sea level reading in inches of mercury
const initialPressure = 29.92

// Forecast compares each pressure reading with the one before it
type Forecast struct {
	display
	current  Measurements
	previous Measurements
}

func NewForecast(cfg *DisplayConfig) *Forecast {
	d := &Forecast{display: newDisplay("forecast", cfg)}
	d.current.Pressure = initialPressure
	cfg.Station.RegisterObserver(d)
	return d
}

func (d *Forecast) Update(u Update) error {
	d.previous = d.current
	d.current = Measurements{
		Temperature: u.Temperature(),
		Humidity:    u.Humidity(),
		Pressure:    u.Pressure(),
	}
	return d.Display()
}

// Previous returns the readings from the update before the latest one
func (d *Forecast) Previous() Measurements { return d.previous }

// Outlook turns the pressure trend into a forecast
func (d *Forecast) Outlook() string {
	switch {
	case d.current.Pressure > d.previous.Pressure:
		return "Improving weather on the way!"
	case d.current.Pressure == d.previous.Pressure:
		return "More of the same"
	default:
		return "Watch out for cooler, rainy weather"
	}
}

func (d *Forecast) Display() error {
	_, err := fmt.Fprintf(d.out, "Forecast: %s\n", d.Outlook())
	return err
}
