package resolver

import (
	"strings"

	"github.com/pattern-stack/sync-patterns/internal/model"
)

// Kind is the classification of one operation relative to its owning entity.
type Kind int

const (
	KindCustom Kind = iota
	KindList
	KindGet
	KindCreate
	KindUpdate
	KindDelete
	KindMetadata
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindGet:
		return "get"
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindMetadata:
		return "metadata"
	}
	return "custom"
}

// Classifier decides which slot an operation occupies on its entity. Every
// operation lands in exactly one slot; anything that matches no CRUD or
// metadata rule falls through to custom. Colliding derived names for custom
// operations are the emitters' problem, not the classifier's.
type Classifier struct {
	namer Namer
}

func NewClassifier(namer Namer) *Classifier {
	return &Classifier{namer: namer}
}

// Classify applies the decision rules in fixed order against the segments of
// the path that follow the entity root:
//   - GET ending at the root is list; GET with only an id parameter is get.
//   - POST with no literal segment past the root is create.
//   - PUT/PATCH with an id parameter and no further literal is update.
//   - DELETE with an id parameter is delete.
//   - A trailing literal "metadata" segment is metadata, any method.
//   - Everything else owned by the entity is custom.
func (c *Classifier) Classify(op model.Operation, entity string) Kind {
	tail := c.entityTail(op.Path, entity)

	switch op.Method {
	case model.MethodGet:
		if len(tail) == 0 {
			return KindList
		}
		if isParamSegment(tail[0]) && !hasLiteralSegment(tail) {
			return KindGet
		}
	case model.MethodPost:
		if !hasLiteralSegment(tail) {
			return KindCreate
		}
	case model.MethodPut, model.MethodPatch:
		if len(tail) > 0 && isParamSegment(tail[0]) && !hasLiteralSegment(tail) {
			return KindUpdate
		}
	case model.MethodDelete:
		if len(tail) > 0 && isParamSegment(tail[0]) {
			return KindDelete
		}
	}

	segments := splitPath(op.Path)
	if len(segments) > 0 && strings.EqualFold(segments[len(segments)-1], "metadata") {
		return KindMetadata
	}

	return KindCustom
}

// Owns reports whether an operation's leading path segment belongs to the
// entity: exact, pluralized, or underscore-prefixed match.
func (c *Classifier) Owns(path, entity string) bool {
	seg := ResourceName(path)
	if seg == "" {
		return false
	}
	return c.ownsSegment(seg, entity)
}

func (c *Classifier) ownsSegment(seg, entity string) bool {
	singular := c.namer.Singularize(entity)
	switch {
	case strings.EqualFold(seg, entity):
		return true
	case strings.EqualFold(c.namer.Singularize(seg), singular):
		return true
	case strings.HasPrefix(strings.ToLower(seg), strings.ToLower(singular)+"_"):
		return true
	}
	return false
}

// entityTail returns the raw segments (parameters included) that follow the
// entity's root segment in the path template, or nil when no owned segment is
// present. Singular and underscore-prefixed variants of the entity name count
// as the root, matching Owns.
func (c *Classifier) entityTail(path, entity string) []string {
	segments := splitPath(path)
	for i, seg := range segments {
		if isParamSegment(seg) || pathSkipList[strings.ToLower(seg)] {
			continue
		}
		if c.ownsSegment(seg, entity) {
			return segments[i+1:]
		}
		break
	}
	return nil
}

// CallableName derives the client method name for a custom operation. When
// the operationId yields nothing usable, the name falls back to the method
// plus the path's trailing literal segments.
func (c *Classifier) CallableName(op model.Operation, entity string) string {
	singular := c.namer.Singularize(entity)
	if op.ID != "" {
		if name := c.namer.CustomOperationName(op.ID, entity, singular); name != "" {
			return name
		}
	}

	tail := c.entityTail(op.Path, entity)
	var words []string
	words = append(words, strings.ToLower(string(op.Method)))
	for _, seg := range tail {
		if !isParamSegment(seg) {
			words = append(words, seg)
		}
	}
	return c.namer.CamelCase(strings.Join(words, "_"))
}
