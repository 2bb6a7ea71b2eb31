package app

import (
	"time"

	"github.com/pkg/errors"

	"github.com/mpoegel/police-shootings/internal/core"
	"github.com/mpoegel/police-shootings/internal/dataset"
	"github.com/mpoegel/police-shootings/internal/misc"
)

const defaultFolder = "data"

var (
	log = misc.NewLogger("App", 2)
)

// AppOption download options
type AppOption struct {
	Folder  string
	Sources []dataset.Source
}

// DefaultOption saves every known dataset under ./data.
func DefaultOption() AppOption {
	return AppOption{
		Folder:  defaultFolder,
		Sources: dataset.Sources(),
	}
}

// App downloads each configured source into the output folder
type App struct {
	option  AppOption
	fetcher core.Fetcher
}

// NewApp creates an application instance. A nil fetcher selects the HTTP fetcher.
func NewApp(opt AppOption, fetcher core.Fetcher) *App {
	if fetcher == nil {
		fetcher = core.NewFetcher()
	}
	return &App{
		option:  opt,
		fetcher: fetcher,
	}
}

// Execute fetches the sources one after another. The first failure stops the run.
func (app *App) Execute() error {
	var (
		opt       = app.option
		startTime = time.Now()
	)

	created, err := misc.EnsureDir(opt.Folder)
	if err != nil {
		return err
	}
	if created {
		log.Trace("Created folder %s.", opt.Folder)
	}

	for i, source := range opt.Sources {
		target := source.Path(opt.Folder)
		log.Info("[%d/%d] %s -> %s", i+1, len(opt.Sources), source.Locator(), target)

		if err = app.fetcher.Fetch(source.Locator(), target); err != nil {
			return errors.Wrap(err, "Failed to fetch ["+source.Name()+"]")
		}
	}

	log.Info("Time cost: %v.", time.Since(startTime))
	return nil
}
