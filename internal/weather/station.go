package weather

import (
	"strings"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// Mode selects how observers get the readings
type Mode string

const (
	ModePush Mode = "push"
	ModePull Mode = "pull"
)

// ParseMode accepts "push" or "pull" in any case
func ParseMode(name string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(name))); mode {
	case ModePush, ModePull:
		return mode, nil
	default:
		return "", apperr.InvalidCompositionf("unrecognized notification mode %q", name)
	}
}

// Station holds the latest measurements and notifies observers when they change
type Station struct {
	mode         Mode
	subject      *Subject
	measurements Measurements
}

// NewStation creates a station that notifies in the given mode
func NewStation(mode Mode) (*Station, error) {
	if mode != ModePush && mode != ModePull {
		return nil, apperr.InvalidCompositionf("unrecognized notification mode %q", mode)
	}

	return &Station{
		mode:    mode,
		subject: NewSubject(),
	}, nil
}

func (s *Station) Mode() Mode { return s.mode }

func (s *Station) Temperature() float64 { return s.measurements.Temperature }
func (s *Station) Humidity() float64    { return s.measurements.Humidity }
func (s *Station) Pressure() float64    { return s.measurements.Pressure }

// Measurements returns the latest readings
func (s *Station) Measurements() Measurements { return s.measurements }

// RegisterObserver subscribes o to future changes
func (s *Station) RegisterObserver(o Observer) {
	s.subject.Register(o)
}

// RemoveObserver unsubscribes the observer with the given ID
func (s *Station) RemoveObserver(observerID string) {
	s.subject.Remove(observerID)
}

// Observers returns the subscribed observer IDs
func (s *Station) Observers() []string {
	return s.subject.Observers()
}

// SetMeasurements records new readings and notifies observers
func (s *Station) SetMeasurements(temperature, humidity, pressure float64) error {
	s.measurements = Measurements{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	return s.MeasurementsChanged()
}

// MeasurementsChanged notifies every observer of the current readings
func (s *Station) MeasurementsChanged() error {
	u := Update{}
	switch s.mode {
	case ModePull:
		u.Source = s
	default:
		u.Values = s.measurements
	}

	return s.subject.Notify(u)
}
