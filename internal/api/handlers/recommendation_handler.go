package handlers

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/internal/api/presenters"
	"Smart-Grocery-Backend/pkg/recommend"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendationHandler interface {
		GetRecommendations(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendService recommend.RecommendService
		validator        *validator.Validate
	}
)

func NewRecommendationHandler(recommendService recommend.RecommendService, validator *validator.Validate) RecommendationHandler {
	return &recommendationHandler{
		recommendService: recommendService,
		validator:        validator,
	}
}

func (h *recommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	req := new(domain.RecommendationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	topK := recommend.DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	recommendations, err := h.recommendService.Recommend(c.Context(), req.Current, topK)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, domain.RecommendationResponse{
		Recommendations: recommendations,
	}, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
