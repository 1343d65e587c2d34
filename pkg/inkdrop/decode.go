package inkdrop

import (
	"maps"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// decodeInto copies a validated JSON value into out, matching fields by
// their json tags.
func decodeInto(value any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Squash:     true,
		DecodeHook: attachmentKeysHook,
		Result:     out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(value)
}

// decodeShape checks value against shape and decodes it into out.
func decodeShape(shape Shape, value any, out any) error {
	if err := shape.Check(value); err != nil {
		return err
	}
	if err := decodeInto(value, out); err != nil {
		return &ValidationError{Shape: shape.name, Value: value, Err: err}
	}
	return nil
}

// decodeDocument validates value against every document shape and returns
// the typed document for the kind it matches.
func decodeDocument(value any) (Doc, error) {
	kind, err := MatchDocument(value)
	if err != nil {
		return nil, err
	}

	var doc Doc
	switch kind {
	case KindNote:
		doc = &Note{}
	case KindBook:
		doc = &Book{}
	case KindTag:
		doc = &Tag{}
	case KindFile:
		doc = &File{}
	}
	if err := decodeInto(value, doc); err != nil {
		return nil, &ValidationError{Shape: string(kind), Value: value, Err: err}
	}

	return doc, nil
}

var attachmentType = reflect.TypeOf(Attachment{})

// attachmentKeysHook maps a contentType key onto content_type so attachments
// decode whichever spelling the server used.
func attachmentKeysHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != attachmentType {
		return data, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	if _, ok := m["content_type"]; ok {
		return data, nil
	}
	v, ok := m["contentType"]
	if !ok {
		return data, nil
	}
	out := maps.Clone(m)
	out["content_type"] = v
	return out, nil
}
