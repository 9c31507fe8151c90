package dto

import (
	"time"
	"wander/internal/domains/booking/model"
	"wander/shared"
	"wander/shared/constant"
	gDto "wander/shared/dto"
	gModel "wander/shared/model"
	"wander/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ExperienceID  string `json:"experience_id"  validate:"required"`
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=20"`
	TravelDate    string `json:"travel_date"    validate:"required"`
	GuestsCount   int    `json:"guests_count"   validate:"required,min=1"`
	Status        string `json:"status"         validate:"omitempty,oneof=pending confirmed"`
}

func (c *CreateBookingRequest) ToModel(user, defaultStatus string) (model.Booking, error) {
	travelDate, err := time.Parse(constant.DateOnlyFormat, c.TravelDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := defaultStatus
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:            uuid.NewString(),
		ExperienceID:  c.ExperienceID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		TravelDate:    travelDate,
		GuestsCount:   c.GuestsCount,
		Status:        status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	CustomerName  string `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `db:"customer_phone" json:"customer_phone" validate:"omitempty,max=20"`
	TravelDate    string `json:"travel_date"  validate:"omitempty"`
	GuestsCount   *int   `json:"guests_count" validate:"omitempty,min=1"`
	Status        string `db:"status"         json:"status"         validate:"omitempty,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	ExperienceID  string `json:"experience_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	TravelDate    string `json:"travel_date"`
	GuestsCount   int    `json:"guests_count"`
	TotalAmount   int64  `json:"total_amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ExperienceID = model.ExperienceID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.TravelDate = model.TravelDate.Format(constant.DateOnlyFormat)
	r.GuestsCount = model.GuestsCount
	r.TotalAmount = model.TotalAmount
	r.Currency = model.Currency
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type DayAvailability struct {
	Date      string `json:"date"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

type AvailabilityResponse struct {
	ExperienceID string            `json:"experience_id"`
	From         string            `json:"from"`
	To           string            `json:"to"`
	Days         []DayAvailability `json:"days"`
}
