package model

import (
	"time"
	"wander/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldExperienceID  = "experience_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldTravelDate    = "travel_date"
	FieldGuestsCount   = "guests_count"
	FieldTotalAmount   = "total_amount"
	FieldCurrency      = "currency"
	FieldStatus        = "status"
	FieldCreatedBy     = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ConsumesCapacity reports whether a booking in the given status holds seats
// on its travel date. Cancelled bookings release their seats permanently.
func ConsumesCapacity(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}

// Booking reserves GuestsCount seats on TravelDate for one experience. The
// customer and amount fields are an opaque payload; admission control only
// reads ExperienceID, TravelDate, GuestsCount and Status.
type Booking struct {
	ID            string    `db:"id"`
	ExperienceID  string    `db:"experience_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
	TravelDate    time.Time `db:"travel_date"`
	GuestsCount   int       `db:"guests_count"`
	TotalAmount   int64     `db:"total_amount"`
	Currency      string    `db:"currency"`
	Status        string    `db:"status"`
	model.Metadata
}

// DateGuests is one row of the availability projection: the summed
// non-cancelled guest count for a single travel date.
type DateGuests struct {
	TravelDate time.Time `db:"travel_date"`
	Guests     int       `db:"guests"`
}
