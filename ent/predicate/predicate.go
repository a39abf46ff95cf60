// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ImportEvent is the predicate function for importevent builders.
type ImportEvent func(*sql.Selector)

// ItemProgress is the predicate function for itemprogress builders.
type ItemProgress func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)
