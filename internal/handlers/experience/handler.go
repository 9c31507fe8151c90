package experience

import (
	"net/http"
	"wander/infras/otel"
	bookingService "wander/internal/domains/booking/service"
	"wander/internal/domains/experience/model"
	"wander/internal/domains/experience/model/dto"
	"wander/internal/domains/experience/service"
	"wander/shared"
	"wander/shared/constant"
	gDto "wander/shared/dto"
	"wander/shared/validator"
	"wander/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Experience
	bookingService bookingService.Booking
	otel           otel.Otel
}

func New(service service.Experience, bookingService bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/experiences", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExperience)
		routerGroup.Get("/", handler.GetExperiences)
		routerGroup.Get("/{id}", handler.GetExperienceByID)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Patch("/{id}", handler.UpdateExperience)
		routerGroup.Delete("/{id}", handler.DeleteExperience)
	})
}

// CreateExperience handles the creation of a new experience.
// @Summary Create a new experience
// @Description Create a new bookable experience with the provided details.
// @Tags Experience
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Experience title"
// @Param location formData string false "Experience location"
// @Param description formData string false "Experience description"
// @Param max_capacity formData integer true "Guest capacity per travel date"
// @Param price_amount formData integer false "Price per guest in the currency's minor unit"
// @Param currency formData string false "ISO 4217 currency code"
// @Param active formData boolean false "Experience active status"
// @Param image formData file false "Experience image"
// @Success 201 {object} response.Message "Experience created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences [post]
// @Security BearerAuth
func (handler *Handler) CreateExperience(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExperience")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateExperienceRequest{
		Title:       request.FormValue("title"),
		Location:    request.FormValue("location"),
		Description: request.FormValue("description"),
		Currency:    request.FormValue("currency"),
	}

	if capStr := request.FormValue("max_capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.MaxCapacity = c
		}
	}

	if priceStr := request.FormValue("price_amount"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			req.PriceAmount = int64(p)
		}
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create experience")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Experience created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Experience created successfully")
}

// GetExperiences retrieves all experiences based on query parameters.
// @Summary Get all experiences
// @Description Retrieve all experiences with optional filtering and pagination.
// @Tags Experience
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param location query string false "Filter by location"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.ExperienceResponse] "List of experiences"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences [get]
func (handler *Handler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExperiences")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	title := r.URL.Query().Get(model.FieldTitle)
	location := r.URL.Query().Get(model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    title,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorLike,
				Value:    location,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	experiences, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get experiences")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Experiences retrieved successfully")

	response.WithJSON(w, http.StatusOK, experiences)
}

// GetExperienceByID retrieves an experience by its ID.
// @Summary Get an experience by ID
// @Description Retrieve an experience by its unique identifier.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} response.Data[dto.ExperienceResponse] "Experience details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences/{id} [get]
func (handler *Handler) GetExperienceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExperienceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	experience, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get experience by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Experience retrieved successfully")

	response.WithJSON(w, http.StatusOK, experience)
}

// GetAvailability projects the remaining seats per travel date.
// @Summary Get availability for an experience
// @Description Retrieve per-date capacity, booked and remaining seat counts over a date window. Defaults to the next 90 days.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Param from query string false "Window start (YYYY-MM-DD), defaults to today"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability per travel date"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/experiences/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	availability, err := handler.bookingService.Availability(ctx, id, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateExperience updates an existing experience by its ID.
// @Summary Update an experience by ID
// @Description Update the details of an existing experience. Lowering max_capacity below the guests already booked on any future date is rejected with 409.
// @Tags Experience
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Experience ID"
// @Param title formData string false "Experience title"
// @Param location formData string false "Experience location"
// @Param description formData string false "Experience description"
// @Param max_capacity formData integer false "Guest capacity per travel date"
// @Param price_amount formData integer false "Price per guest in the currency's minor unit"
// @Param currency formData string false "ISO 4217 currency code"
// @Param active formData boolean false "Experience active status"
// @Param image formData file false "Experience image"
// @Success 200 {object} response.Message "Experience updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExperience")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateExperienceRequest{
		Title:       r.FormValue("title"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
		Currency:    r.FormValue("currency"),
	}

	if capStr := r.FormValue("max_capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.MaxCapacity = &c
		}
	}

	if priceStr := r.FormValue("price_amount"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			price := int64(p)
			req.PriceAmount = &price
		}
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update experience")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Experience updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Experience updated successfully")
}

// DeleteExperience deletes an experience by its ID.
// @Summary Delete an experience by ID
// @Description Delete an experience using its unique identifier.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} response.Message "Experience deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExperience")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete experience")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Experience deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Experience deleted successfully")
}
