// Package photo converts uploaded image files into data URIs that can be
// stored directly in a profile's photo field.
package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxBytes int64 = 5 << 20

var (
	ErrEmpty    = errors.New("photo file is empty")
	ErrTooLarge = errors.New("photo file is too large")
	ErrNotImage = errors.New("photo file is not an image")
)

type Encoder struct {
	maxBytes int64
}

func NewEncoder(maxBytes int64) *Encoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Encoder{maxBytes: maxBytes}
}

// Encode reads r fully and returns "data:<mime>;base64,<payload>".
func (e *Encoder) Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, e.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	mime, err := e.Check(data)
	if err != nil {
		return "", err
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Check applies the size limit and sniffs the content type of data without
// encoding it. It returns the detected image MIME type.
func (e *Encoder) Check(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > e.maxBytes {
		return "", ErrTooLarge
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime.String())
	}
	return mime.String(), nil
}

// EncodeAsync encodes r on its own goroutine and calls done exactly once
// with the result.
func (e *Encoder) EncodeAsync(r io.Reader, done func(uri string, err error)) {
	go func() {
		uri, err := e.Encode(r)
		done(uri, err)
	}()
}

func (e *Encoder) MaxBytes() int64 {
	return e.maxBytes
}
