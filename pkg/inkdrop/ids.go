package inkdrop

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh document id for kind. Passing it in a document given
// to Upsert creates the document under that id.
func NewID(kind Kind) string {
	return kind.prefix() + uuid.NewString()
}

// KindOf returns the kind encoded in a document id.
func KindOf(id string) (Kind, bool) {
	prefix, _, ok := strings.Cut(id, ":")
	if !ok {
		return "", false
	}
	switch kind := Kind(prefix); kind {
	case KindNote, KindBook, KindTag, KindFile:
		return kind, true
	}
	return "", false
}
