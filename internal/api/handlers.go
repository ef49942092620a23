package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"slidecraft/internal/app"
	"slidecraft/internal/export"
	"slidecraft/pkg/errs"
)

type Handler struct {
	pipeline *app.Pipeline
	store    *DeckStore
}

func NewHandler(pipeline *app.Pipeline) *Handler {
	return &Handler{
		pipeline: pipeline,
		store:    NewDeckStore(),
	}
}

func (h *Handler) GenerateDeck(c *gin.Context) {
	var req GenerateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, DeckResponse{
			Error: &ErrorBody{Code: errs.CodeInvalidRequest, Message: err.Error()},
		})
		return
	}

	requestID := req.ClientRequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	referenceText := req.ReferenceText
	if referenceText == "" && req.ReferenceURL != "" {
		fetched, err := h.pipeline.Reference(c.Request.Context(), req.ReferenceURL)
		if err != nil {
			slog.Warn("Reference fetch failed, generating without it",
				"url", req.ReferenceURL, "error", err, "request_id", requestID)
		} else {
			referenceText = fetched
		}
	}

	seq := h.store.Begin()
	deck, err := h.pipeline.Generate(c.Request.Context(), app.GenerateRequest{
		Topic:         req.Topic,
		ReferenceText: referenceText,
	})
	if err != nil {
		h.writeError(c, requestID, err)
		return
	}

	if !h.store.Complete(seq, deck) {
		slog.Info("Discarding stale deck, a newer request finished first", "request_id", requestID)
	}

	c.JSON(http.StatusOK, DeckResponse{RequestID: requestID, Deck: deck})
}

func (h *Handler) CurrentDeck(c *gin.Context) {
	deck := h.store.Current()
	if deck == nil {
		c.JSON(http.StatusNotFound, DeckResponse{
			Error: &ErrorBody{Code: errs.CodeInvalidRequest, Message: "no deck has been generated"},
		})
		return
	}
	c.JSON(http.StatusOK, DeckResponse{Deck: deck})
}

func (h *Handler) ExportDeck(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ExportResponse{
			Error: &ErrorBody{Code: errs.CodeInvalidRequest, Message: err.Error()},
		})
		return
	}

	requestID := req.ClientRequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, ExportResponse{
			RequestID: requestID,
			Error:     &ErrorBody{Code: errs.Code(err), Message: err.Error()},
		})
		return
	}

	deck := h.store.Current()
	if deck == nil {
		c.JSON(http.StatusNotFound, ExportResponse{
			RequestID: requestID,
			Error:     &ErrorBody{Code: errs.CodeInvalidRequest, Message: "no deck to export"},
		})
		return
	}

	result, err := h.pipeline.Export(c.Request.Context(), deck, format)
	if err != nil {
		slog.Error("Export failed", "error", err, "request_id", requestID)
		c.JSON(statusFor(err), ExportResponse{
			RequestID: requestID,
			Error:     &ErrorBody{Code: errs.Code(err), Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		RequestID: requestID,
		Filename:  result.Filename,
		LocalPath: result.LocalPath,
		RemoteURL: result.RemoteURL,
	})
}

func (h *Handler) Assistant(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AssistantResponse{
			Error: &ErrorBody{Code: errs.CodeInvalidRequest, Message: err.Error()},
		})
		return
	}

	requestID := req.ClientRequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	answer, err := h.pipeline.Ask(c.Request.Context(), req.Question)
	if err != nil {
		slog.Error("Assistant request failed", "error", err, "request_id", requestID)
		c.JSON(statusFor(err), AssistantResponse{
			RequestID: requestID,
			Error:     &ErrorBody{Code: errs.Code(err), Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, AssistantResponse{RequestID: requestID, Answer: answer})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) writeError(c *gin.Context, requestID string, err error) {
	slog.Error("Deck generation failed", "error", err, "request_id", requestID)
	c.JSON(statusFor(err), DeckResponse{
		RequestID: requestID,
		Error:     &ErrorBody{Code: errs.Code(err), Message: err.Error()},
	})
}

// statusFor maps application error codes to HTTP statuses. Upstream model
// failures are gateway errors, caller mistakes are 4xx.
func statusFor(err error) int {
	switch errs.Code(err) {
	case errs.CodeEmptyInput, errs.CodeInvalidRequest:
		return http.StatusBadRequest
	case errs.CodeRateLimited:
		return http.StatusTooManyRequests
	case errs.CodeGenerationFailed, errs.CodeMalformedResponse,
		errs.CodeAssistantFailed, errs.CodeEmptyResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
