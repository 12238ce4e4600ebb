// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// PhaseOutput is the predicate function for phaseoutput builders.
type PhaseOutput func(*sql.Selector)

// PolishCache is the predicate function for polishcache builders.
type PolishCache func(*sql.Selector)

// PresentationCache is the predicate function for presentationcache builders.
type PresentationCache func(*sql.Selector)

// ViewRefinement is the predicate function for viewrefinement builders.
type ViewRefinement func(*sql.Selector)
