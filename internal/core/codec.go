package core

import (
	"bytes"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// codec identifies how a payload is packed on the remote host, derived from the
// locator's path extension.
type codec int

const (
	codecNone codec = iota
	codecXZ
	codecLZMA
)

func (c codec) String() string {
	switch c {
	case codecXZ:
		return "xz"
	case codecLZMA:
		return "lzma"
	default:
		return "none"
	}
}

func codecFor(locator string) (codec, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return codecNone, errors.Wrap(err, "Invalid locator ["+locator+"]")
	}

	switch strings.ToLower(path.Ext(u.Path)) {
	case ".xz":
		return codecXZ, nil
	case ".lzma":
		return codecLZMA, nil
	default:
		return codecNone, nil
	}
}

func (c codec) decode(raw []byte) ([]byte, error) {
	var (
		r   io.Reader
		err error
	)
	switch c {
	case codecXZ:
		r, err = xz.NewReader(bytes.NewReader(raw))
	case codecLZMA:
		r, err = lzma.NewReader(bytes.NewReader(raw))
	default:
		return raw, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Open %s stream failed", c)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Read %s stream failed", c)
	}
	return data, nil
}
