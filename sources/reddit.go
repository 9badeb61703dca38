// Package sources decodes raw Reddit API payloads from local readers and files.
package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kova98/karmakaze/models"
	"github.com/pkg/errors"
)

const maxErrorLen = 300

var (
	ErrEmptyPayload    = errors.New("empty payload")
	ErrTrailingPayload = errors.New("trailing data after payload")
)

// Read decodes one JSON document from r into plain maps, slices and float64s.
func Read(r io.Reader) (any, error) {
	var payload any
	if err := decode(r, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func ReadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open payload")
	}
	defer f.Close()

	payload, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return payload, nil
}

// ReadListing decodes a listing envelope into its typed form, leaving each
// child's data undecoded.
func ReadListing(r io.Reader) (*models.Listing, error) {
	var listing models.Listing
	if err := decode(r, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func decode(r io.Reader, dest any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dest); err != nil {
		if err == io.EOF {
			return ErrEmptyPayload
		}
		return errors.Wrap(truncateError(err), "decode payload")
	}
	if dec.More() {
		return ErrTrailingPayload
	}
	return nil
}

func truncateError(err error) error {
	msg := err.Error()
	if len(msg) > maxErrorLen {
		return fmt.Errorf("%s...", msg[:maxErrorLen])
	}
	return err
}
