package server

import (
	"net/http"

	"smarttranslate/config"
	"smarttranslate/host"
	"smarttranslate/logger"
	"smarttranslate/translate"
	"smarttranslate/types"
	"smarttranslate/utils"

	"github.com/gin-gonic/gin"
)

// TranslateRequest POST /v1/translate 请求体
type TranslateRequest struct {
	Text     string `json:"text"`
	Model    string `json:"model,omitempty"`
	FromLang string `json:"from_lang,omitempty"`
	ToLang   string `json:"to_lang,omitempty"`
	Shift    bool   `json:"shift"`
	Option   bool   `json:"option"`
}

// TranslateResponse POST /v1/translate 响应体
type TranslateResponse struct {
	Mode   string       `json:"mode,omitempty"`
	Text   string       `json:"text,omitempty"`
	Error  string       `json:"error,omitempty"`
	Events []host.Event `json:"events"`
}

type handlers struct {
	deps Dependencies
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) models(c *gin.Context) {
	defaultModel := h.deps.Options.ModelOrDefault()
	data := make([]types.ModelInfo, 0, len(config.SupportedModels))
	for _, id := range config.SupportedModels {
		data = append(data, types.ModelInfo{
			ID:      id,
			Object:  "model",
			OwnedBy: "openai",
			Default: id == defaultModel,
		})
	}
	c.JSON(http.StatusOK, types.ModelsResponse{Object: "list", Data: data})
}

func (h *handlers) languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"from_default": h.deps.Options.FromLang,
		"to_default":   h.deps.Options.ToLang,
		"languages":    h.deps.Catalog.Names(),
	})
}

func (h *handlers) translate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		handleParseError(c, err)
		return
	}

	logger.Debug("收到翻译请求", addReqFields(c,
		logger.Int("body_size", len(body)),
		logger.Any("headers", extractRelevantHeaders(c)))...)

	var req TranslateRequest
	if err := utils.SafeUnmarshal(body, &req); err != nil {
		handleParseError(c, err)
		return
	}

	opts := h.deps.Options.Merge(config.Options{
		Model:    req.Model,
		FromLang: req.FromLang,
		ToLang:   req.ToLang,
	})
	if err := opts.Validate(h.deps.Catalog); err != nil {
		handleOptionsError(c, err)
		return
	}
	if err := opts.RequireAPIKey(); err != nil {
		handleOptionsError(c, err)
		return
	}

	rec := host.NewRecorder(types.Modifiers{Shift: req.Shift, Option: req.Option})
	result, err := h.deps.Action.Execute(c.Request.Context(), types.Input{Text: req.Text}, opts, rec)
	if err != nil {
		c.JSON(translateFailureStatus(err), TranslateResponse{
			Error:  translate.ErrorInfo(err),
			Events: rec.Events(),
		})
		return
	}

	c.JSON(http.StatusOK, TranslateResponse{
		Mode:   result.Mode.String(),
		Text:   result.Text,
		Events: rec.Events(),
	})
}
