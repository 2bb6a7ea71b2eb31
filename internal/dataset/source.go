package dataset

import "path/filepath"

const (
	wpPoliceShootings     = "https://raw.githubusercontent.com/washingtonpost/data-police-shootings/master/fatal-police-shootings-data.csv"
	pgPoliceShootings2015 = "https://s3.amazonaws.com/postgraphics/policeshootings/policeshootings2015.json"
	pgPoliceShootings2016 = "https://s3.amazonaws.com/postgraphics/policeshootings/policeshootings2016.json"
)

// Source pairs a remote dataset with the file it is saved to.
type Source struct {
	name        string
	locator     string
	destination string
}

func NewSource(name, locator, destination string) Source {
	return Source{
		name:        name,
		locator:     locator,
		destination: destination,
	}
}

func (s Source) Name() string {
	return s.name
}

func (s Source) Locator() string {
	return s.locator
}

// Destination is the file name relative to the output folder.
func (s Source) Destination() string {
	return s.destination
}

func (s Source) Path(folder string) string {
	return filepath.Join(folder, filepath.FromSlash(s.destination))
}

var catalog = [...]Source{
	{
		name:        "wp-police-shootings",
		locator:     wpPoliceShootings,
		destination: "wp-police-shootings.csv",
	},
	{
		name:        "pg-police-shootings-2015",
		locator:     pgPoliceShootings2015,
		destination: "pg-police-shootings-2015.json",
	},
	{
		name:        "pg-police-shootings-2016",
		locator:     pgPoliceShootings2016,
		destination: "pg-police-shootings-2016.json",
	},
}

// Sources returns the fixed datasets in download order. The slice is a copy.
func Sources() []Source {
	r := make([]Source, len(catalog))
	copy(r, catalog[:])
	return r
}

// Get returns the source named name, or nil if there is none.
func Get(name string) *Source {
	for _, s := range catalog {
		if s.name == name {
			return &s
		}
	}
	return nil
}
