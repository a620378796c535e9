// Package model contains the domain entities passed between layers:
// ranking records on the way in, findings and topics on the way out.
package model

import (
	"fmt"
	"strings"
)

// CategoryKind enumerates the ranking dimensions a record can belong to.
type CategoryKind string

// Supported category kinds.
const (
	KindOverall        CategoryKind = "overall"
	KindEvaluationItem CategoryKind = "evaluation_item"
	KindDepartment     CategoryKind = "department"
)

// Category identifies one ranking dimension. The overall ranking has no
// name; evaluation items and departments carry the dimension name.
// Category is comparable and safe to use as a map key.
type Category struct {
	Kind CategoryKind `json:"kind"`
	Name string       `json:"name,omitempty"`
}

// Overall returns the overall ranking category.
func Overall() Category {
	return Category{Kind: KindOverall}
}

// EvaluationItem returns the category for a named evaluation item,
// e.g. "customer support" or "fees".
func EvaluationItem(name string) Category {
	return Category{Kind: KindEvaluationItem, Name: name}
}

// Department returns the category for a named department ranking,
// e.g. an age bracket or a regional segment.
func Department(name string) Category {
	return Category{Kind: KindDepartment, Name: name}
}

// Validate checks the kind/name combination.
func (c Category) Validate() error {
	switch c.Kind {
	case KindOverall:
		if strings.TrimSpace(c.Name) != "" {
			return fmt.Errorf("%w: overall category must not carry a name", ErrInvalidRecord)
		}
	case KindEvaluationItem, KindDepartment:
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: %s category requires a name", ErrInvalidRecord, c.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown category kind %q", ErrInvalidRecord, c.Kind)
	}
	return nil
}

// String renders a stable display form used in logs and tie-breaking.
func (c Category) String() string {
	if c.Kind == KindOverall {
		return string(KindOverall)
	}
	return string(c.Kind) + "/" + c.Name
}
