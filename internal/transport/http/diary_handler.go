package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/media"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

const maxDiaryFormMemory = 32 << 20

type DiaryHandler struct {
	diaries *service.DiaryService
}

type diaryRequest struct {
	DestinationID string `json:"destination_id"`
	Notes         string `json:"notes"`
	Rating        string `json:"-"`
	RatingValue   *int   `json:"rating"`
	VisitDate     string `json:"visit_date"`
}

func RegisterDiaries(api *echo.Group, requireAuth echo.MiddlewareFunc, diaries *service.DiaryService) {
	handler := &DiaryHandler{diaries: diaries}

	group := api.Group("/diaries", requireAuth)
	group.GET("", handler.list)
	group.POST("", handler.create)
	group.GET("/:id", handler.get)
	group.PUT("/:id", handler.update)
	group.DELETE("/:id", handler.remove)
}

// create handles POST /api/v1/diaries (multipart, optional photos[])
func (h *DiaryHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	input, uploads, closers, err := readDiaryRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer closeAll(closers)

	diary, err := h.diaries.Create(c.Request().Context(), user.ID, input, uploads)
	if err != nil {
		return writeServiceError(c, err, "unable to create diary entry")
	}
	return c.JSON(http.StatusCreated, util.Envelope{"diary": diary})
}

// get handles GET /api/v1/diaries/{id}
func (h *DiaryHandler) get(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid diary id")
	}
	diary, err := h.diaries.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return writeServiceError(c, err, "unable to load diary entry")
	}
	return c.JSON(http.StatusOK, util.Envelope{"diary": diary})
}

// update handles PUT /api/v1/diaries/{id}. New photos are appended.
func (h *DiaryHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid diary id")
	}
	input, uploads, closers, err := readDiaryRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer closeAll(closers)

	diary, err := h.diaries.Update(c.Request().Context(), user.ID, id, input, uploads)
	if err != nil {
		return writeServiceError(c, err, "unable to update diary entry")
	}
	return c.JSON(http.StatusOK, util.Envelope{"diary": diary})
}

// remove handles DELETE /api/v1/diaries/{id}
func (h *DiaryHandler) remove(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid diary id")
	}
	if err := h.diaries.Delete(c.Request().Context(), user.ID, id); err != nil {
		return writeServiceError(c, err, "unable to delete diary entry")
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}

// list handles GET /api/v1/diaries
func (h *DiaryHandler) list(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	limit, offset := parsePagination(c, 0, 0)
	diaries, err := h.diaries.List(c.Request().Context(), user.ID, limit, offset)
	if err != nil {
		return writeServiceError(c, err, "unable to load diary entries")
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"diaries": diaries,
		"count":   len(diaries),
	})
}

// readDiaryRequest accepts either a multipart form with photo files or a
// plain JSON body without photos.
func readDiaryRequest(c echo.Context) (service.DiaryInput, []media.Upload, []io.Closer, error) {
	var req diaryRequest
	var form *multipart.Form

	contentType := strings.ToLower(c.Request().Header.Get(echo.HeaderContentType))
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := c.Request().ParseMultipartForm(maxDiaryFormMemory); err != nil {
			return service.DiaryInput{}, nil, nil, errors.New("invalid multipart payload")
		}
		form = c.Request().MultipartForm
		req.DestinationID = c.FormValue("destination_id")
		req.Notes = c.FormValue("notes")
		req.Rating = c.FormValue("rating")
		req.VisitDate = c.FormValue("visit_date")
	} else if err := c.Bind(&req); err != nil {
		return service.DiaryInput{}, nil, nil, errors.New("invalid request body")
	}

	input, err := req.input()
	if err != nil {
		return service.DiaryInput{}, nil, nil, err
	}
	uploads, closers, err := buildPhotoUploads(form)
	if err != nil {
		return service.DiaryInput{}, nil, nil, errors.New("unable to read photo upload")
	}
	return input, uploads, closers, nil
}

func (r diaryRequest) input() (service.DiaryInput, error) {
	input := service.DiaryInput{Notes: r.Notes}
	if raw := strings.TrimSpace(r.DestinationID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, errors.New("destination_id must be a valid UUID")
		}
		input.DestinationID = id
	}
	switch {
	case r.RatingValue != nil:
		input.Rating = *r.RatingValue
	case strings.TrimSpace(r.Rating) != "":
		rating, err := strconv.Atoi(strings.TrimSpace(r.Rating))
		if err != nil {
			return input, errors.New("rating must be an integer")
		}
		input.Rating = rating
	}
	if strings.TrimSpace(r.VisitDate) != "" {
		visit, err := parseDate(r.VisitDate)
		if err != nil {
			return input, errors.New("visit_date must be YYYY-MM-DD")
		}
		input.VisitDate = &visit
	}
	return input, nil
}

func buildPhotoUploads(form *multipart.Form) ([]media.Upload, []io.Closer, error) {
	if form == nil {
		return nil, nil, nil
	}
	var headers []*multipart.FileHeader
	headers = append(headers, form.File["photos"]...)
	headers = append(headers, form.File["photos[]"]...)

	uploads := make([]media.Upload, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		closers = append(closers, file)
		uploads = append(uploads, media.Upload{
			Reader:      file,
			Size:        header.Size,
			FileName:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
		})
	}
	return uploads, closers, nil
}

func closeAll(closers []io.Closer) {
	for _, closer := range closers {
		_ = closer.Close()
	}
}
