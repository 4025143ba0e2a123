package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	cmerrors "github.com/alexisbeaulieu97/coachmark/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseTour loads a tour file from disk, validates it, and returns the resulting model.
func ParseTour(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cmerrors.NewParseError(path, 0, err)
	}
	return ParseTourBytes(path, data)
}

// ErrEmptyTour is reported for a tour file without any document.
var ErrEmptyTour = errors.New("tour file is empty")

// ParseTourBytes decodes and validates a tour held in memory. Unknown keys
// are rejected so a misspelt style field does not silently fall back to the
// default. path is only used in error messages.
func ParseTourBytes(path string, data []byte) (*Tour, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tour Tour
	if err := dec.Decode(&tour); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, cmerrors.NewParseError(path, 0, ErrEmptyTour)
		}
		return nil, cmerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateTour(&tour); err != nil {
		return nil, err
	}

	return &tour, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
