package persistence

import (
	"bestevents/config"
	"bestevents/shared/constant"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown snapshot format")

// Codec turns a snapshot into bytes and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ") //nolint:wrapcheck
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v) //nolint:wrapcheck
}

func (jsonCodec) Name() string {
	return "json"
}

type yamlCodec struct{}

func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v) //nolint:wrapcheck
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v) //nolint:wrapcheck
}

func (yamlCodec) Name() string {
	return "yaml"
}

// NewCodec returns the codec for a snapshot format, json when format is empty.
func NewCodec(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json", constant.Empty:
		return jsonCodec{}, nil
	case "yaml", "yml":
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// CodecFor returns the codec selected by the storage format setting.
func CodecFor(cfg *config.Config) (Codec, error) {
	return NewCodec(cfg.Storage.Format)
}
