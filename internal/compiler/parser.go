package compiler

import (
	"fmt"
	"reflect"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parser is responsible for converting raw bytes into a Project.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML (or JSON) project document.
// The document is first read into generic maps and then decoded with mapstructure so that hand
// signs may be written by name.
func (p *Parser) Parse(data []byte) (*domain.Project, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse project: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("failed to parse project: empty document")
	}

	var project domain.Project
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(handSignHook, stringListHook),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &project,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}
	return &project, nil
}

var handSignType = reflect.TypeOf(domain.HandSign(0))

// handSignHook accepts sign names such as "FIST" wherever a HandSign is expected.
func handSignHook(from, to reflect.Type, data any) (any, error) {
	if to != handSignType || from.Kind() != reflect.String {
		return data, nil
	}
	return domain.ParseHandSign(data.(string))
}

var stringSliceType = reflect.TypeOf([]string(nil))

// stringListHook accepts a comma separated string for list fields.
func stringListHook(from, to reflect.Type, data any) (any, error) {
	if to != stringSliceType || from.Kind() != reflect.String {
		return data, nil
	}
	return domain.SplitList(data.(string)), nil
}
