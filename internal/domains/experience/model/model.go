package model

import "wander/shared/model"

const (
	TableName  = "experiences"
	EntityName = "experience"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldMaxCapacity = "max_capacity"
	FieldPriceAmount = "price_amount"
	FieldCurrency    = "currency"
	FieldImage       = "image"
	FieldActive      = "active"
)

// Experience is a bookable tour with a fixed per-date guest capacity.
// PriceAmount is in the currency's minor unit and is carried verbatim onto
// bookings; the capacity invariant never looks at it.
type Experience struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Location    string `db:"location"`
	Description string `db:"description"`
	MaxCapacity int    `db:"max_capacity"`
	PriceAmount int64  `db:"price_amount"`
	Currency    string `db:"currency"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
