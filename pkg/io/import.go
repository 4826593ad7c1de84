package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/render/waveform"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// ReadJSON decodes a JSON waveform document from r.
//
// The input must be a document produced by [WriteJSON] or the json render
// format:
//
//	{
//	  "scheme": "nrz-l",
//	  "bit_count": 2,
//	  "duration": 2,
//	  "vertices": [
//	    {"t": 0, "level": "zero", "move": true},
//	    {"t": 1, "level": "zero"}
//	  ]
//	}
//
// ReadJSON returns an error if the JSON is malformed, a vertex names an
// unknown voltage level, or the vertex list violates waveform constraints
// (empty, or non-monotonic times). Use errors.Is to check for the
// INVALID_FORMAT and INVALID_INPUT codes.
//
// The returned waveform is independent of r and can be used freely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*wave.Waveform, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return waveform.DecodeJSON(data)
}

// ImportJSON reads a JSON file at path and returns the decoded waveform.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. A missing file returns a FILE_NOT_FOUND error; decode failures
// return the same errors as [ReadJSON].
func ImportJSON(path string) (*wave.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no such file: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadText reads plain input text from r, trimming a single trailing
// newline so shell heredocs and echo output encode cleanly.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	if err := errors.ValidateText(text); err != nil {
		return "", err
	}
	return text, nil
}

// LoadText reads input text from the file at path using [ReadText].
func LoadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeFileNotFound, "no such file: %s", path)
		}
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadText(f)
}

// ReadBits reads a '0'/'1' bit document from r. Whitespace between groups
// is ignored, so files written by `encode --output` read back unchanged.
func ReadBits(r io.Reader) (bitstream.Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return bitstream.Parse(string(data))
}

// LoadBits reads a bit document from the file at path using [ReadBits].
func LoadBits(path string) (bitstream.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no such file: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadBits(f)
}
