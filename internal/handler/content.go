package handler

import (
	"errors"

	"github.com/ahosmi/content-dashboard/internal/repository"
	"github.com/ahosmi/content-dashboard/pkg/model"
	"github.com/ahosmi/content-dashboard/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListContent returns all content items sorted by planned date ascending
func (h *Handler) ListContent(c *gin.Context) {
	items, err := h.Repo.ListContent(c.Request.Context())
	if err != nil {
		h.Logger.Error("list_content: failed to fetch", zap.Error(err))
		response.InternalError(c, "failed to fetch content")
		return
	}
	response.OK(c, items)
}

// CreateContent stores a new content item from a draft
func (h *Handler) CreateContent(c *gin.Context) {
	var req model.ContentDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.Repo.CreateContent(c.Request.Context(), &req)
	if err != nil {
		h.Logger.Error("create_content: failed to create",
			zap.String("title", req.Title),
			zap.Error(err),
		)
		response.InternalError(c, "failed to create content")
		return
	}

	h.Logger.Info("create_content: content created",
		zap.String("id", created.ID),
		zap.String("platform", string(created.Platform)),
	)

	response.Created(c, created)
}

// UpdateContent applies a partial update to an existing item
func (h *Handler) UpdateContent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "id is required")
		return
	}

	var req model.ContentPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.Repo.UpdateContent(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "content not found")
			return
		}
		h.Logger.Error("update_content: failed to update",
			zap.String("id", id),
			zap.Error(err),
		)
		response.InternalError(c, "failed to update content")
		return
	}

	response.OK(c, updated)
}

// DeleteContent removes an item; deleting an absent id still returns 204
func (h *Handler) DeleteContent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "id is required")
		return
	}

	if err := h.Repo.DeleteContent(c.Request.Context(), id); err != nil {
		h.Logger.Error("delete_content: failed to delete",
			zap.String("id", id),
			zap.Error(err),
		)
		response.InternalError(c, "failed to delete content")
		return
	}

	response.NoContent(c)
}
