package fsa

import (
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is the character encoding used when Config.Charset is empty.
const DefaultCharset = "utf-8"

// Config controls how an automaton is opened.
//
// Example:
//
//	config := fsa.DefaultConfig()
//	config.Charset = "iso-8859-1"
//	a, err := fsa.OpenWithConfig("stopwords.fsa", config)
type Config struct {
	// Charset names the encoding used to turn strings into automaton input
	// bytes and accepted byte strings back into text. Any WHATWG encoding
	// label is accepted ("utf-8", "latin1", "windows-1252", "koi8-r", ...).
	// Default: "utf-8"
	Charset string

	// NoMmap loads the image into heap memory instead of mapping it.
	// Default: false
	NoMmap bool

	// Logger receives open/close events. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with UTF-8 input and a memory-mapped
// image.
func DefaultConfig() Config {
	return Config{
		Charset: DefaultCharset,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	_, err := newCodec(c.Charset)
	return err
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "fsa: invalid config: " + e.Field + ": " + e.Message
}

// codec converts between strings and automaton bytes.
// The zero-cost path is taken for UTF-8.
type codec struct {
	name string
	enc  encoding.Encoding
	utf8 bool
}

func newCodec(charset string) (codec, error) {
	if charset == "" {
		charset = DefaultCharset
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return codec{}, &ConfigError{
			Field:   "Charset",
			Message: "unknown encoding " + charset,
		}
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = strings.ToLower(charset)
	}
	return codec{name: name, enc: enc, utf8: name == DefaultCharset}, nil
}

// encode returns the bytes of s in the codec's charset. ok is false when s
// holds characters the charset cannot represent.
func (c codec) encode(s string) (b []byte, ok bool) {
	if c.utf8 || c.enc == nil {
		return []byte(s), true
	}
	b, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c codec) decode(b []byte) string {
	if c.utf8 || c.enc == nil {
		return string(b)
	}
	s, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
