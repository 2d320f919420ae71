package weather_test

import (
	"bytes"
	"testing"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
	"github.com/KirkDiggler/headfirst-patterns/internal/uuid"
	"github.com/KirkDiggler/headfirst-patterns/internal/weather"
	"github.com/stretchr/testify/suite"
)

// StationTestSuite runs the weather station scenario in both notification modes
type StationTestSuite struct {
	suite.Suite
	mode    weather.Mode
	station *weather.Station
	out     *bytes.Buffer
	cfg     *weather.DisplayConfig
}

func (s *StationTestSuite) SetupTest() {
	station, err := weather.NewStation(s.mode)
	s.Require().NoError(err)

	s.station = station
	s.out = &bytes.Buffer{}
	s.cfg = &weather.DisplayConfig{
		Station:       station,
		UUIDGenerator: uuid.NewSequence("display"),
		Out:           s.out,
	}
}

func TestStationPushSuite(t *testing.T) {
	suite.Run(t, &StationTestSuite{mode: weather.ModePush})
}

func TestStationPullSuite(t *testing.T) {
	suite.Run(t, &StationTestSuite{mode: weather.ModePull})
}

func (s *StationTestSuite) TestDisplaysRegisterThemselves() {
	weather.NewCurrentConditions(s.cfg)
	weather.NewStatistics(s.cfg)
	weather.NewForecast(s.cfg)

	s.Equal([]string{
		"current_conditions_display-1",
		"statistics_display-2",
		"forecast_display-3",
	}, s.station.Observers())
}

func (s *StationTestSuite) TestWeatherStationScenario() {
	weather.NewCurrentConditions(s.cfg)
	weather.NewStatistics(s.cfg)
	forecast := weather.NewForecast(s.cfg)

	s.Require().NoError(s.station.SetMeasurements(1, 2, 3))
	forecast.Unregister()
	s.Require().NoError(s.station.SetMeasurements(75, 30, 10))

	s.Equal(
		"Current conditions... temp: 1, humidity: 2\n"+
			"Avg/Max/Min temperature = 1.0/1/1\n"+
			"Forecast: Watch out for cooler, rainy weather\n"+
			"Current conditions... temp: 75, humidity: 30\n"+
			"Avg/Max/Min temperature = 38.0/75/1\n",
		s.out.String(),
	)
}

func (s *StationTestSuite) TestForecastRecordsPreviousPressure() {
	forecast := weather.NewForecast(s.cfg)

	s.Require().NoError(s.station.SetMeasurements(80, 65, 30.4))
	s.Equal(29.92, forecast.Previous().Pressure)
	s.Equal("Improving weather on the way!", forecast.Outlook())

	s.Require().NoError(s.station.SetMeasurements(82, 70, 29.2))
	s.Equal(weather.Measurements{Temperature: 80, Humidity: 65, Pressure: 30.4}, forecast.Previous())
	s.Equal("Watch out for cooler, rainy weather", forecast.Outlook())

	s.Require().NoError(s.station.SetMeasurements(78, 90, 29.2))
	s.Equal(29.2, forecast.Previous().Pressure)
	s.Equal("More of the same", forecast.Outlook())
}

func (s *StationTestSuite) TestStatisticsSummary() {
	stats := weather.NewStatistics(s.cfg)

	for _, temp := range []float64{80, 82, 78} {
		s.Require().NoError(s.station.SetMeasurements(temp, 50, 30))
	}

	avg, high, low := stats.Summary()
	s.InDelta(80.0, avg, 1e-9)
	s.Equal(82.0, high)
	s.Equal(78.0, low)
	s.Equal(weather.Measurements{Temperature: 78, Humidity: 50, Pressure: 30}, s.station.Measurements())
}

func (s *StationTestSuite) TestUnregisterTwiceIsHarmless() {
	current := weather.NewCurrentConditions(s.cfg)

	current.Unregister()
	current.Unregister()

	s.Empty(s.station.Observers())
	s.Require().NoError(s.station.SetMeasurements(70, 40, 30))
	s.Empty(s.out.String())
}

func TestNewStation_UnknownMode(t *testing.T) {
	_, err := weather.NewStation("sideways")
	if !apperr.IsInvalidComposition(err) {
		t.Fatalf("expected invalid composition error, got %v", err)
	}
}
