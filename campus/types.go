package campus

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/campusplanner/building"
)

var (
	// ErrDuplicateBuilding is returned when two buildings share an id.
	ErrDuplicateBuilding = errors.New("campus: duplicate building id")

	// ErrInvalidBuilding wraps a validation failure of a building or road record.
	ErrInvalidBuilding = errors.New("campus: invalid building")

	// ErrUnknownBuilding is returned when an id is not part of the campus.
	ErrUnknownBuilding = errors.New("campus: unknown building")

	// ErrNoRoute is returned when two buildings are not connected by roads.
	ErrNoRoute = errors.New("campus: no route")

	// ErrBadHops is returned by Nearby for a negative hop limit.
	ErrBadHops = errors.New("campus: hop limit is negative")

	// ErrBadData is returned by Load for an undecodable document.
	ErrBadData = errors.New("campus: bad data")
)

// Options configures a Campus.
type Options struct {
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a disabled logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger sets the logger used for construction and query events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Route is a shortest road path between two buildings.
type Route struct {
	Stops    []building.Building
	Distance float64
}

// Stop is a building reached by Nearby and the number of roads taken.
type Stop struct {
	Building building.Building
	Hops     int
}

// Link is one road of the campus backbone.
type Link struct {
	From, To building.Building
	Distance float64
}

// Road is a bidirectional road record as found in data files.
type Road struct {
	From     int     `yaml:"from" json:"from"`
	To       int     `yaml:"to" json:"to"`
	Distance float64 `yaml:"distance" json:"distance" validate:"gte=0"`
}
