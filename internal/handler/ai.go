package handler

import (
	"encoding/json"

	"github.com/ahosmi/content-dashboard/internal/cache"
	"github.com/ahosmi/content-dashboard/internal/fetcher"
	"github.com/ahosmi/content-dashboard/pkg/model"
	"github.com/ahosmi/content-dashboard/pkg/response"
	"github.com/gin-gonic/gin"
)

// GenerateSuggestions asks the language model for title/caption ideas for a
// topic and platform. Responses are cached per platform+topic; an optional
// reference URL is scraped for extra prompt context.
func (h *Handler) GenerateSuggestions(c *gin.Context) {
	var req model.SuggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	sugar := h.Logger.Sugar()

	cacheKey := cache.SuggestionKey(string(req.Platform), req.Topic)
	if req.ReferenceURL == "" && h.Redis != nil {
		if raw, ok, err := cache.GetString(ctx, h.Redis, cacheKey); err != nil {
			sugar.Warnw("suggestion cache read failed", "err", err)
		} else if ok {
			var cached model.SuggestionRes
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				response.OK(c, cached)
				return
			}
		}
	}

	pageContext := ""
	if req.ReferenceURL != "" {
		page, err := fetcher.Fetch(ctx, req.ReferenceURL, c.Request.UserAgent())
		if err != nil {
			// degrade to the plain prompt
			sugar.Warnw("reference fetch failed", "url", req.ReferenceURL, "err", err)
		} else {
			pageContext = page.PromptText()
		}
	}

	suggestions, err := h.OpenAI.GenerateSuggestions(ctx, req.Topic, string(req.Platform), pageContext)
	if err != nil {
		sugar.Errorw("suggestion generation failed", "topic", req.Topic, "platform", req.Platform, "err", err)
		response.InternalError(c, "Failed to generate suggestions")
		return
	}

	res := model.SuggestionRes{Suggestions: suggestions}

	if req.ReferenceURL == "" && h.Redis != nil {
		if raw, err := json.Marshal(res); err == nil {
			if err := cache.SetString(ctx, h.Redis, cacheKey, string(raw), h.SuggestionTTL); err != nil {
				sugar.Warnw("suggestion cache write failed", "err", err)
			}
		}
	}

	response.OK(c, res)
}
