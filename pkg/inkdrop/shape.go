package inkdrop

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
)

// Shape is a structural check over a decoded JSON value.
type Shape struct {
	name  string
	rules []validation.Rule
}

// Name returns the human readable name used in validation errors.
func (s Shape) Name() string {
	return s.name
}

// Check returns a *ValidationError when value does not satisfy the shape.
func (s Shape) Check(value any) error {
	if err := validation.Validate(value, s.rules...); err != nil {
		return &ValidationError{Shape: s.name, Value: value, Err: err}
	}
	return nil
}

// Match reports whether value satisfies the shape.
func (s Shape) Match(value any) bool {
	return s.Check(value) == nil
}

// And returns a shape named name that requires both s and other.
func (s Shape) And(name string, other Shape) Shape {
	rules := make([]validation.Rule, 0, len(s.rules)+len(other.rules))
	rules = append(rules, s.rules...)
	rules = append(rules, other.rules...)
	return Shape{name: name, rules: rules}
}

func newShape(name string, rules ...validation.Rule) Shape {
	return Shape{name: name, rules: rules}
}

// object requires a JSON object holding the given keys. Keys not listed are
// allowed.
func object(name string, keys ...*validation.KeyRules) Shape {
	return newShape(name, isObject, validation.Map(keys...).AllowExtraKeys())
}

var (
	errNotObject = validation.NewError("validation_is_object", "must be an object")
	errNotArray  = validation.NewError("validation_is_array", "must be an array")
)

var (
	isObject = validation.By(func(v any) error {
		if m, ok := v.(map[string]any); !ok || m == nil {
			return errNotObject
		}
		return nil
	})

	isArray = validation.By(func(v any) error {
		if a, ok := v.([]any); !ok || a == nil {
			return errNotArray
		}
		return nil
	})

	isString = typeRule("string", "a string", func(v any) bool {
		_, ok := v.(string)
		return ok
	})

	isBool = typeRule("boolean", "a boolean", func(v any) bool {
		_, ok := v.(bool)
		return ok
	})

	// isInteger guards fields decoded into Go integers, which would
	// otherwise truncate fractions.
	isInteger = typeRule("integer", "an integer", func(v any) bool {
		switch n := v.(type) {
		case int, int64:
			return true
		case float64:
			return !math.IsInf(n, 0) && n == math.Trunc(n)
		case float32:
			f := float64(n)
			return !math.IsInf(f, 0) && f == math.Trunc(f)
		case json.Number:
			_, err := n.Int64()
			return err == nil
		}
		return false
	})
)

// nullOr accepts JSON null or a value satisfying rules.
func nullOr(rules ...validation.Rule) validation.Rule {
	return validation.By(func(v any) error {
		if v == nil {
			return nil
		}
		return validation.Validate(v, rules...)
	})
}

func typeRule(kind, desc string, ok func(any) bool) validation.Rule {
	err := validation.NewError("validation_is_"+kind, "must be "+desc)
	return validation.By(func(v any) error {
		if !ok(v) {
			return err
		}
		return nil
	})
}

func arrayOf(rules ...validation.Rule) []validation.Rule {
	return []validation.Rule{isArray, validation.Each(rules...)}
}

// oneOf requires a non-empty string from values.
func oneOf(values ...string) []validation.Rule {
	in := make([]any, len(values))
	for i, v := range values {
		in[i] = v
	}
	return []validation.Rule{isString, validation.Required, validation.In(in...)}
}

func hasPrefix(prefix string) validation.Rule {
	err := validation.NewError("validation_has_prefix", "must start with "+prefix)
	return validation.By(func(v any) error {
		if s, ok := v.(string); !ok || !strings.HasPrefix(s, prefix) {
			return err
		}
		return nil
	})
}

// ServerInfoShape matches the payload of GET /.
var ServerInfoShape = object("server info",
	validation.Key("version", isString),
	validation.Key("ok", isBool),
)

// MutationShape matches the acknowledgement returned by writes and deletes.
var MutationShape = object("mutation response",
	validation.Key("ok", isBool),
	validation.Key("id", isString),
	validation.Key("rev", isString),
)

// DocumentShape is the part every stored document shares.
var DocumentShape = object("document",
	validation.Key("_id", isString),
	validation.Key("_rev", isString),
	validation.Key("createdAt", isInteger).Optional(),
	validation.Key("updatedAt", isInteger).Optional(),
)

func documentShape(kind Kind, keys ...*validation.KeyRules) Shape {
	keys = append([]*validation.KeyRules{
		validation.Key("_id", hasPrefix(kind.prefix())),
	}, keys...)
	return DocumentShape.And(string(kind), object(string(kind), keys...))
}

// NoteShape matches a note document.
var NoteShape = documentShape(KindNote,
	validation.Key("doctype", oneOf(DocTypeMarkdown)...),
	validation.Key("bookId", isString),
	validation.Key("status", oneOf(noteStatuses...)...),
	validation.Key("share", oneOf(noteShares...)...).Optional(),
	validation.Key("numOfTasks", isInteger).Optional(),
	validation.Key("numOfCheckedTasks", isInteger).Optional(),
	validation.Key("pinned", isBool),
	validation.Key("title", isString),
	validation.Key("body", isString),
	validation.Key("tags", arrayOf(isString)...),
)

// BookShape matches a notebook document.
var BookShape = documentShape(KindBook,
	validation.Key("name", isString),
	validation.Key("parentBookId", nullOr(isString)).Optional(),
)

// TagShape matches a tag document.
var TagShape = documentShape(KindTag,
	validation.Key("name", isString),
	validation.Key("color", isString).Optional(),
	validation.Key("count", isInteger).Optional(),
)

// attachmentShape matches one entry of a file's _attachments map. The
// storage layer names the content type content_type, as in CouchDB
// attachment stubs; contentType is accepted as well.
var attachmentShape = newShape("attachment",
	isObject,
	validation.Map(
		validation.Key("digest", isString),
		validation.Key("content_type", isString).Optional(),
		validation.Key("contentType", isString).Optional(),
		validation.Key("revpos", isInteger),
		validation.Key("data", isString).Optional(),
	).AllowExtraKeys(),
	validation.By(hasContentType),
)

var errNoContentType = validation.NewError("validation_content_type_required",
	"content_type: cannot be blank")

func hasContentType(v any) error {
	m, _ := v.(map[string]any)
	if _, ok := m["content_type"]; ok {
		return nil
	}
	if _, ok := m["contentType"]; ok {
		return nil
	}
	return errNoContentType
}

// FileShape matches a file document.
var FileShape = documentShape(KindFile,
	validation.Key("name", isString),
	validation.Key("contentType", isString).Optional(),
	validation.Key("contentLength", isInteger).Optional(),
	validation.Key("md5digest", isString).Optional(),
	validation.Key("revpos", isInteger).Optional(),
	validation.Key("publicIn", arrayOf(isString)...).Optional(),
	validation.Key("_attachments", isObject, validation.Each(attachmentShape.rules...)).Optional(),
)

var documentShapes = []struct {
	kind  Kind
	shape Shape
}{
	{KindNote, NoteShape},
	{KindBook, BookShape},
	{KindTag, TagShape},
	{KindFile, FileShape},
}

// ShapeFor returns the shape of documents of the given kind.
func ShapeFor(kind Kind) (Shape, bool) {
	for _, s := range documentShapes {
		if s.kind == kind {
			return s.shape, true
		}
	}
	return Shape{}, false
}

// MatchDocument returns the kind of document value is. Every document shape
// is tried; a value matching none of them yields a *ValidationError listing
// each shape's failure.
func MatchDocument(value any) (Kind, error) {
	var result *multierror.Error
	for _, s := range documentShapes {
		err := s.shape.Check(value)
		if err == nil {
			return s.kind, nil
		}
		result = multierror.Append(result, err)
	}
	return "", &ValidationError{Shape: "document", Value: value, Err: result.ErrorOrNil()}
}

// checkList validates value as an array whose elements all satisfy shape.
func checkList(shape Shape, value any) ([]any, error) {
	name := shape.name + " list"
	items, ok := value.([]any)
	if !ok || items == nil {
		return nil, &ValidationError{Shape: name, Value: value, Err: errNotArray}
	}

	var result *multierror.Error
	for i, item := range items {
		if err := shape.Check(item); err != nil {
			result = multierror.Append(result, fmt.Errorf("element %d: %w", i, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, &ValidationError{Shape: name, Value: value, Err: err}
	}

	return items, nil
}
