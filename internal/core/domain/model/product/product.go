// Package product holds the product catalog: finished goods (whose initials
// feed order number generation) and raw products.
package product

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

var (
	ErrFinishedGoodIsNotConstructed = errors.New("FinishedGood must be created via NewFinishedGood")
	ErrRawProductIsNotConstructed   = errors.New("RawProduct must be created via NewRawProduct")
)

// FinishedGood is a sellable product. Its initial name is the prefix used when
// generating order numbers, e.g. "WF" for "Wheat Flour" yielding "WF-2026-001".
type FinishedGood struct {
	id          kernel.UUID
	productName string
	initialName string

	isConstructed bool
}

// NewFinishedGood creates a FinishedGood with a non-empty name and initials.
func NewFinishedGood(id kernel.UUID, productName, initialName string) (*FinishedGood, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if initialName == "" {
		return nil, errs.NewValueIsRequiredError("initial name")
	}
	return &FinishedGood{
		id:            id,
		productName:   productName,
		initialName:   initialName,
		isConstructed: true,
	}, nil
}

// RestoreFinishedGood reconstructs a finished good from persistence.
func RestoreFinishedGood(id kernel.UUID, productName, initialName string) *FinishedGood {
	return &FinishedGood{
		id:            id,
		productName:   productName,
		initialName:   initialName,
		isConstructed: true,
	}
}

// Validate ensures the FinishedGood was built via NewFinishedGood.
func (fg *FinishedGood) Validate() error {
	if fg == nil || !fg.isConstructed {
		return ErrFinishedGoodIsNotConstructed
	}
	return nil
}

// ID returns the finished good's unique identifier.
func (fg *FinishedGood) ID() kernel.UUID { return fg.id }

// ProductName returns the product's display name.
func (fg *FinishedGood) ProductName() string { return fg.productName }

// InitialName returns the initials used as the order number prefix.
func (fg *FinishedGood) InitialName() string { return fg.initialName }

// RawProduct is an input or semi-finished product tracked by name only.
type RawProduct struct {
	id          kernel.UUID
	productName string

	isConstructed bool
}

// NewRawProduct creates a RawProduct with a non-empty name.
func NewRawProduct(id kernel.UUID, productName string) (*RawProduct, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	return &RawProduct{id: id, productName: productName, isConstructed: true}, nil
}

// RestoreRawProduct reconstructs a raw product from persistence.
func RestoreRawProduct(id kernel.UUID, productName string) *RawProduct {
	return &RawProduct{id: id, productName: productName, isConstructed: true}
}

// Validate ensures the RawProduct was built via NewRawProduct.
func (rp *RawProduct) Validate() error {
	if rp == nil || !rp.isConstructed {
		return ErrRawProductIsNotConstructed
	}
	return nil
}

// ID returns the raw product's unique identifier.
func (rp *RawProduct) ID() kernel.UUID { return rp.id }

// ProductName returns the product's display name.
func (rp *RawProduct) ProductName() string { return rp.productName }
