package parser

//go:generate go tool stringer -type=Field -trimprefix=Field

// Field identifies the target attribute on the entity under construction.
// Every field carries a fixed merge policy: scalar fields overwrite any
// prior value, collection fields append in document order. The policy
// lives with the field rather than the rule, so a rule table cannot
// disagree with itself about how two rules writing the same field
// combine.
type Field int

const (
	// FieldNone discards the handler's value. Rules whose handlers run
	// only for their session side effects use it.
	FieldNone Field = iota

	FieldID
	FieldTitle
	FieldSubtitle
	FieldRights
	FieldSummary
	FieldContent
	FieldGenerator
	FieldLogo
	FieldIcon
	FieldPublishedAt
	FieldUpdatedAt
	FieldSource

	FieldLinks
	FieldAuthors
	FieldContributors
	FieldCategories
)

// IsCollection reports whether writes to the field append rather than
// overwrite.
func (f Field) IsCollection() bool {
	switch f {
	case FieldLinks, FieldAuthors, FieldContributors, FieldCategories:
		return true
	}
	return false
}
