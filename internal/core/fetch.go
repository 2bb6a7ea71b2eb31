package core

import (
	"os"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/mpoegel/police-shootings/internal/misc"
)

var (
	log = misc.NewLogger("Fetch", 2)
)

// HTTPFetcher downloads a locator in a single blocking GET. It never retries
// and sets no timeout.
type HTTPFetcher struct {
	client *resty.Client
}

func NewFetcher() Fetcher {
	return NewHTTPFetcher(resty.New())
}

// NewHTTPFetcher uses client as is, apart from routing its log output through
// the package logger.
func NewHTTPFetcher(client *resty.Client) *HTTPFetcher {
	client.SetLogger(restyLogger{log})
	return &HTTPFetcher{
		client: client,
	}
}

// Fetch reads the whole payload before touching destination, so a failed
// download or decode leaves any existing file as it was. The parent folder of
// destination must exist.
func (h HTTPFetcher) Fetch(locator string, destination string) error {
	payload, err := h.retrieve(locator)
	if err != nil {
		return err
	}

	lines := SplitLines(payload)
	filesize, err := h.saveLinesToDisk(lines, destination)
	if err != nil {
		return err
	}

	log.Trace("Saved %s: %d lines, %d bytes.", destination, len(lines), filesize)
	return nil
}

func (h HTTPFetcher) retrieve(locator string) (string, error) {
	c, err := codecFor(locator)
	if err != nil {
		return "", err
	}

	log.Trace("GET %s.", locator)
	resp, err := h.client.R().Get(locator)
	if err != nil {
		return "", errors.Wrap(err, "Download ["+locator+"] failed")
	}
	if !resp.IsSuccess() {
		return "", &StatusError{
			Locator:    locator,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}

	body, err := c.decode(resp.Body())
	if err != nil {
		return "", errors.Wrap(err, "Decompress ["+locator+"] failed")
	}
	if !utf8.Valid(body) {
		return "", errors.Wrap(ErrInvalidUTF8, "Decode ["+locator+"] failed")
	}

	log.Trace("Received %s: %d bytes (%s).", locator, len(body), c)
	return string(body), nil
}

func (h HTTPFetcher) saveLinesToDisk(lines []string, path string) (filesize int64, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		err = errors.Wrap(err, "Create file ["+path+"] failed")
		return
	}

	filesize, err = WriteLines(f, lines)
	if err != nil {
		_ = f.Close()
		err = errors.Wrap(err, "Saving data ["+path+"] failed")
		return
	}

	if err = f.Close(); err != nil {
		err = errors.Wrap(err, "Closing file ["+path+"] failed")
	}
	return
}

// restyLogger keeps resty's own diagnostics in the application log.
type restyLogger struct {
	log misc.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Warn(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Trace(format, v...)
}
