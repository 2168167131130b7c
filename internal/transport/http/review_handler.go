package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

type ReviewAuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

type ReviewResponse struct {
	ID            uuid.UUID            `json:"id"`
	DestinationID uuid.UUID            `json:"destination_id"`
	Rating        int                  `json:"rating"`
	Title         string               `json:"title"`
	Content       string               `json:"content"`
	HelpfulCount  int                  `json:"helpful_count"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	Reviewer      ReviewAuthorResponse `json:"reviewer"`
}

type ReviewAggregateResponse struct {
	AverageRating float64        `json:"average_rating"`
	TotalReviews  int            `json:"total_reviews"`
	RatingCounts  map[string]int `json:"rating_counts"`
}

type ReviewCreateResponse struct {
	Review    ReviewResponse          `json:"review"`
	Aggregate ReviewAggregateResponse `json:"aggregate"`
}

type ReviewListResponse struct {
	DestinationID uuid.UUID        `json:"destination_id"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int              `json:"total_reviews"`
	RatingCounts  map[string]int   `json:"rating_counts"`
	Reviews       []ReviewResponse `json:"reviews"`
	Limit         int              `json:"limit"`
	Offset        int              `json:"offset"`
}

type reviewRequest struct {
	Rating  int    `json:"rating" form:"rating"`
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

func (r reviewRequest) input() service.ReviewInput {
	return service.ReviewInput{Rating: r.Rating, Title: r.Title, Content: r.Content}
}

func RegisterReviews(api *echo.Group, requireAuth echo.MiddlewareFunc, reviews *service.ReviewService) {
	handler := &ReviewHandler{reviews: reviews}

	api.GET("/destinations/:slug/reviews", handler.listReviews)
	api.POST("/destinations/:slug/reviews", handler.createReview, requireAuth)

	group := api.Group("/reviews")
	group.PUT("/:id", handler.updateReview, requireAuth)
	group.DELETE("/:id", handler.deleteReview, requireAuth)
	// Public and unguarded: repeated calls keep counting.
	group.POST("/:id/helpful", handler.markHelpful)

	api.GET("/me/reviews", handler.listMyReviews, requireAuth)
}

// createReview handles POST /api/v1/destinations/{slug}/reviews
func (h *ReviewHandler) createReview(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	review, aggregate, err := h.reviews.CreateReviewBySlug(c.Request().Context(), user.ID, c.Param("slug"), req.input())
	if err != nil {
		return writeServiceError(c, err, "unable to create review")
	}
	review.ReviewerName = user.FullName
	review.ReviewerEmail = &user.Email

	return c.JSON(http.StatusCreated, ReviewCreateResponse{
		Review:    toReviewResponse(*review),
		Aggregate: toAggregateResponse(aggregate),
	})
}

// listReviews handles GET /api/v1/destinations/{slug}/reviews
func (h *ReviewHandler) listReviews(c echo.Context) error {
	limit, offset := parsePagination(c, 0, 0)
	result, err := h.reviews.ListDestinationReviews(c.Request().Context(), c.Param("slug"), limit, offset)
	if err != nil {
		return writeServiceError(c, err, "unable to list reviews")
	}

	return c.JSON(http.StatusOK, ReviewListResponse{
		DestinationID: result.DestinationID,
		AverageRating: result.Aggregate.AverageRating,
		TotalReviews:  result.Aggregate.TotalReviews,
		RatingCounts:  stringKeyedCounts(result.Aggregate.RatingCounts),
		Reviews:       toReviewResponses(result.Reviews),
		Limit:         result.Limit,
		Offset:        result.Offset,
	})
}

// updateReview handles PUT /api/v1/reviews/{id}
func (h *ReviewHandler) updateReview(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	reviewID, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid review id")
	}
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	review, err := h.reviews.UpdateReview(c.Request().Context(), user.ID, reviewID, req.input())
	if err != nil {
		return writeServiceError(c, err, "unable to update review")
	}
	return c.JSON(http.StatusOK, util.Envelope{"review": toReviewResponse(*review)})
}

// deleteReview handles DELETE /api/v1/reviews/{id}
func (h *ReviewHandler) deleteReview(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	reviewID, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid review id")
	}
	if err := h.reviews.DeleteReview(c.Request().Context(), user.ID, reviewID); err != nil {
		return writeServiceError(c, err, "unable to delete review")
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}

// markHelpful handles POST /api/v1/reviews/{id}/helpful
func (h *ReviewHandler) markHelpful(c echo.Context) error {
	reviewID, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid review id")
	}
	count, err := h.reviews.MarkHelpful(c.Request().Context(), reviewID)
	if err != nil {
		return writeServiceError(c, err, "unable to mark review as helpful")
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"review_id":     reviewID,
		"helpful_count": count,
	})
}

// listMyReviews handles GET /api/v1/me/reviews
func (h *ReviewHandler) listMyReviews(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	limit, offset := parsePagination(c, 0, 0)
	reviews, err := h.reviews.ListUserReviews(c.Request().Context(), user.ID, limit, offset)
	if err != nil {
		return writeServiceError(c, err, "unable to list reviews")
	}
	return c.JSON(http.StatusOK, util.Envelope{"reviews": toReviewResponses(reviews)})
}

func toReviewResponses(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}
	return out
}

func toReviewResponse(review domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:            review.ID,
		DestinationID: review.DestinationID,
		Rating:        review.Rating,
		Title:         review.Title,
		Content:       review.Content,
		HelpfulCount:  review.HelpfulCount,
		CreatedAt:     review.CreatedAt,
		UpdatedAt:     review.UpdatedAt,
		Reviewer: ReviewAuthorResponse{
			ID:          review.UserID,
			DisplayName: reviewerDisplayName(review),
		},
	}
}

func toAggregateResponse(aggregate *domain.ReviewAggregate) ReviewAggregateResponse {
	if aggregate == nil {
		return ReviewAggregateResponse{RatingCounts: stringKeyedCounts(nil)}
	}
	return ReviewAggregateResponse{
		AverageRating: aggregate.AverageRating,
		TotalReviews:  aggregate.TotalReviews,
		RatingCounts:  stringKeyedCounts(aggregate.RatingCounts),
	}
}

// stringKeyedCounts renders the breakdown with every star from 1 to 5 present.
func stringKeyedCounts(counts map[int]int) map[string]int {
	result := make(map[string]int, domain.MaxRating)
	for star := domain.MinRating; star <= domain.MaxRating; star++ {
		result[strconv.Itoa(star)] = counts[star]
	}
	return result
}

func reviewerDisplayName(review domain.Review) string {
	if review.ReviewerName != nil {
		if trimmed := strings.TrimSpace(*review.ReviewerName); trimmed != "" {
			return trimmed
		}
	}
	if review.ReviewerEmail != nil {
		email := strings.TrimSpace(*review.ReviewerEmail)
		if idx := strings.Index(email, "@"); idx > 0 {
			return email[:idx]
		}
	}
	return "Anonymous"
}
