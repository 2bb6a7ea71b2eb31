package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSources_order(t *testing.T) {
	sources := Sources()
	if assert.Len(t, sources, 3) {
		assert.Equal(t, "wp-police-shootings.csv", sources[0].Destination())
		assert.Equal(t, "pg-police-shootings-2015.json", sources[1].Destination())
		assert.Equal(t, "pg-police-shootings-2016.json", sources[2].Destination())
	}
}

func TestSources_isCopy(t *testing.T) {
	sources := Sources()
	sources[0] = NewSource("other", "https://example.com/x.csv", "x.csv")

	assert.Equal(t, "wp-police-shootings", Sources()[0].Name())
}

func TestGet_happyPath(t *testing.T) {
	s := Get("pg-police-shootings-2015")
	if assert.NotNil(t, s) {
		assert.Equal(t, "https://s3.amazonaws.com/postgraphics/policeshootings/policeshootings2015.json", s.Locator())
		assert.Equal(t, filepath.Join("data", "pg-police-shootings-2015.json"), s.Path("data"))
	}
}

func TestGet_unknown(t *testing.T) {
	assert.Nil(t, Get("NOT_EXISTENT"))
}
