package dto

import (
	"mime/multipart"

	"wander/internal/domains/experience/model"
	"wander/shared"
	gDto "wander/shared/dto"
	gModel "wander/shared/model"
	"wander/shared/timezone"

	"github.com/google/uuid"
)

type CreateExperienceRequest struct {
	Title       string                `json:"title"        validate:"required,max=150"`
	Location    string                `json:"location"     validate:"omitempty,max=100"`
	Description string                `json:"description"  validate:"omitempty"`
	MaxCapacity int                   `json:"max_capacity" validate:"required,min=1"`
	PriceAmount int64                 `json:"price_amount" validate:"omitempty,min=0"`
	Currency    string                `json:"currency"     validate:"omitempty,len=3"`
	Image       *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"       validate:"omitempty"`
}

func (c *CreateExperienceRequest) ToModel(user string, imageURL string) model.Experience {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	currency := c.Currency
	if currency == "" {
		currency = "USD"
	}

	return model.Experience{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Location:    c.Location,
		Description: c.Description,
		MaxCapacity: c.MaxCapacity,
		PriceAmount: c.PriceAmount,
		Currency:    currency,
		Image:       imageURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateExperienceRequest struct {
	Title       string                `db:"title"        json:"title"        validate:"omitempty,max=150"`
	Location    string                `db:"location"     json:"location"     validate:"omitempty,max=100"`
	Description string                `db:"description"  json:"description"  validate:"omitempty"`
	MaxCapacity *int                  `db:"max_capacity" json:"max_capacity" validate:"omitempty,min=1"`
	PriceAmount *int64                `db:"price_amount" json:"price_amount" validate:"omitempty,min=0"`
	Currency    string                `db:"currency"     json:"currency"     validate:"omitempty,len=3"`
	Image       *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"       json:"active"       validate:"omitempty"`
}

type ExperienceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	MaxCapacity int    `json:"max_capacity"`
	PriceAmount int64  `json:"price_amount"`
	Currency    string `json:"currency"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *ExperienceResponse) FromModel(model model.Experience) {
	r.ID = model.ID
	r.Title = model.Title
	r.Location = model.Location
	r.Description = model.Description
	r.MaxCapacity = model.MaxCapacity
	r.PriceAmount = model.PriceAmount
	r.Currency = model.Currency
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetExperiencesResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetExperiencesResponse) FromModels(models []model.Experience, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Experiences = make([]ExperienceResponse, len(models))
	for i, mod := range models {
		r.Experiences[i].FromModel(mod)
	}
}
