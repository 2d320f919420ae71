package weather

//go:generate mockgen -destination=mock/mock_observer.go -package=mockweather -source=observer.go

// Observer receives a notification every time the station's measurements change
type Observer interface {
	// ID identifies the observer so it can be removed later
	ID() string

	// Update is called synchronously from Subject.Notify
	Update(u Update) error
}

// Reader exposes the station's current measurements for pull-style observers
type Reader interface {
	Temperature() float64
	Humidity() float64
	Pressure() float64
}

// Measurements is a single set of readings
type Measurements struct {
	Temperature float64
	Humidity    float64
	Pressure    float64
}

// Update is what observers are sent. In push mode Values carries the readings;
// in pull mode Source is set and observers ask it only for what they need.
type Update struct {
	Values Measurements
	Source Reader
}

// Pulled reports whether the observer is expected to read from Source
func (u Update) Pulled() bool { return u.Source != nil }

func (u Update) Temperature() float64 {
	if u.Pulled() {
		return u.Source.Temperature()
	}
	return u.Values.Temperature
}

func (u Update) Humidity() float64 {
	if u.Pulled() {
		return u.Source.Humidity()
	}
	return u.Values.Humidity
}

func (u Update) Pressure() float64 {
	if u.Pulled() {
		return u.Source.Pressure()
	}
	return u.Values.Pressure
}
