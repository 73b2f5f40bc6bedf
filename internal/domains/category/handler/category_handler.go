package handler

import (
	"net/http"

	"bookshop-catalog/internal/domains/category"
	"bookshop-catalog/internal/shared/response"
	"bookshop-catalog/internal/shared/utils"
	"bookshop-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ServiceResolver returns the category service of the current request scope.
type ServiceResolver func(c *gin.Context) category.CategoryService

type CategoryHandler struct {
	service ServiceResolver
}

func NewCategoryHandler(resolve ServiceResolver) *CategoryHandler {
	return &CategoryHandler{
		service: resolve,
	}
}

// ========== GET /v1/categories ==========
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service(c).GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.List(c, "Get categories successfully", category.CategoriesToResp(categories), len(categories))
}

// ========== GET /v1/categories/:id ==========
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		h.fail(c, category.ErrInvalidCategoryID)
		return
	}

	result, err := h.service(c).GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get category successfully", category.CategoryToResp(result))
}

// ========== POST /v1/categories ==========
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	created, err := h.service(c).Add(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create category successfully", category.CategoryToResp(created))
}

// ========== PUT /v1/categories/:id ==========
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		h.fail(c, category.ErrInvalidCategoryID)
		return
	}

	var req category.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ID != id {
		h.fail(c, category.ErrIDMismatch)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	updated, err := h.service(c).Update(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update category successfully", category.CategoryToResp(updated))
}

// ========== DELETE /v1/categories/:id ==========
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		h.fail(c, category.ErrInvalidCategoryID)
		return
	}

	svc := h.service(c)
	existing, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	if _, err := svc.Remove(c.Request.Context(), existing); err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Delete category successfully", nil)
}

// ========== GET /v1/categories/search/:category ==========
func (h *CategoryHandler) Search(c *gin.Context) {
	categories, err := h.service(c).SearchByName(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(categories) == 0 {
		response.NotFound(c, "No category matches the search term")
		return
	}

	response.List(c, "Search categories successfully", category.CategoriesToResp(categories), len(categories))
}

func (h *CategoryHandler) fail(c *gin.Context, err error) {
	status := category.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.ErrorWithFields("category request failed", err, map[string]interface{}{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		})
	}
	response.ErrorResponse(c, status, category.GetErrorCode(err), category.GetErrorMessage(err))
}
