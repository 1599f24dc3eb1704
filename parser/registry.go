package parser

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/Kjwon15/libearth/feed"
)

// Handler extracts a value from one document element. It returns the
// value to merge into the entity under construction (nil for a no-op),
// the session for subsequent dispatch, and an error only for conditions
// that must abort the whole parse.
//
// Handlers must return an untyped nil to skip a write; a typed nil
// pointer would be merged as a value.
type Handler func(el *etree.Element, s Session) (any, Session, error)

// rule binds one element name inside one container scope to a handler
// and a target field. Rule tables are package-level values assembled at
// init time; nothing registers rules at parse time.
type rule struct {
	// container scopes the rule to children of elements parsed under
	// this name, such as "channel" or "item".
	container string

	// name matches the element's local tag name.
	name string

	// ns lists the namespace URIs the rule accepts. An empty list
	// accepts elements with no namespace and elements in the container's
	// own namespace, which covers plain RSS 2.0 as well as documents
	// whose format namespace is declared as the default.
	ns []string

	// field names the destination attribute and thereby the merge
	// policy.
	field Field

	handler Handler
}

type ruleTable []rule

// dispatch walks the direct children of el in document order and fires
// every rule scoped to container that accepts each child. When several
// rules match one child they all fire, in table order, so the table's
// ordering decides write order for scalar fields. Handlers may replace
// the session; the replacement carries into every later invocation of
// the same walk.
//
// target must be a *feed.Feed or *feed.Entry.
func (rt ruleTable) dispatch(container string, el *etree.Element, s Session, target any) (Session, error) {
	for _, child := range el.ChildElements() {
		for i := range rt {
			r := &rt[i]
			if r.container != container || r.name != child.Tag {
				continue
			}
			if !r.acceptsNamespace(child, el) {
				continue
			}
			value, next, err := r.handler(child, s)
			if err != nil {
				return s, err
			}
			s = next
			if value != nil {
				applyField(target, r.field, value)
			}
		}
	}
	return s, nil
}

func (r *rule) acceptsNamespace(child, container *etree.Element) bool {
	ns := child.NamespaceURI()
	if len(r.ns) == 0 {
		return ns == "" || ns == container.NamespaceURI()
	}
	for _, want := range r.ns {
		if ns == want {
			return true
		}
	}
	return false
}

// applyField merges a handler value into the entity under construction
// according to the field's merge policy. Rule tables are static, so a
// mismatch between a rule's field and its handler's value type is a
// programming error and panics.
func applyField(target any, f Field, value any) {
	switch entity := target.(type) {
	case *feed.Feed:
		applyFeedField(entity, f, value)
	case *feed.Entry:
		applyEntryField(entity, f, value)
	default:
		panic(fmt.Sprintf("parser: unsupported dispatch target %T", target))
	}
}

func applyFeedField(target *feed.Feed, f Field, value any) {
	switch f {
	case FieldNone:
	case FieldID:
		target.ID = fieldValue[string](f, value)
	case FieldTitle:
		target.Title = fieldValue[*feed.Text](f, value)
	case FieldSubtitle:
		target.Subtitle = fieldValue[*feed.Text](f, value)
	case FieldRights:
		target.Rights = fieldValue[*feed.Text](f, value)
	case FieldGenerator:
		target.Generator = fieldValue[*feed.Generator](f, value)
	case FieldLogo:
		target.Logo = fieldValue[string](f, value)
	case FieldIcon:
		target.Icon = fieldValue[string](f, value)
	case FieldUpdatedAt:
		target.UpdatedAt = fieldValue[*time.Time](f, value)
	case FieldLinks:
		target.Links = append(target.Links, fieldValue[feed.Link](f, value))
	case FieldAuthors:
		target.Authors = append(target.Authors, fieldValue[feed.Person](f, value))
	case FieldContributors:
		target.Contributors = append(target.Contributors, fieldValue[feed.Person](f, value))
	case FieldCategories:
		target.Categories = append(target.Categories, fieldValue[feed.Category](f, value))
	default:
		panic(fmt.Sprintf("parser: field %s does not apply to feeds", f))
	}
}

func applyEntryField(target *feed.Entry, f Field, value any) {
	switch f {
	case FieldNone:
	case FieldID:
		target.ID = fieldValue[string](f, value)
	case FieldTitle:
		target.Title = fieldValue[*feed.Text](f, value)
	case FieldRights:
		target.Rights = fieldValue[*feed.Text](f, value)
	case FieldSummary:
		target.Summary = fieldValue[*feed.Text](f, value)
	case FieldContent:
		target.Content = fieldValue[*feed.Content](f, value)
	case FieldPublishedAt:
		target.PublishedAt = fieldValue[*time.Time](f, value)
	case FieldUpdatedAt:
		target.UpdatedAt = fieldValue[*time.Time](f, value)
	case FieldSource:
		target.Source = fieldValue[*feed.Feed](f, value)
	case FieldLinks:
		target.Links = append(target.Links, fieldValue[feed.Link](f, value))
	case FieldAuthors:
		target.Authors = append(target.Authors, fieldValue[feed.Person](f, value))
	case FieldContributors:
		target.Contributors = append(target.Contributors, fieldValue[feed.Person](f, value))
	case FieldCategories:
		target.Categories = append(target.Categories, fieldValue[feed.Category](f, value))
	default:
		panic(fmt.Sprintf("parser: field %s does not apply to entries", f))
	}
}

func fieldValue[T any](f Field, value any) T {
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("parser: rule for field %s produced %T", f, value))
	}
	return v
}
