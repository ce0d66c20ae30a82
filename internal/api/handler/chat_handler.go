package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/api/metrics"
	"github.com/dentalflow/clinic-system/internal/core/ports"
)

type ChatHandler struct {
	chatService ports.ChatService
}

func NewChatHandler(chatService ports.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type postMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// List returns the stored chat history. The route group forbids the Patient
// role.
//
// @Summary      List chat messages
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/chat/messages [get]
func (h *ChatHandler) List(c echo.Context) error {
	messages, err := h.chatService.Messages(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, messages)
}

// Post appends a message stamped with the sender's identity.
//
// @Summary      Post a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postMessageRequest  true  "Message text"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /api/chat/messages [post]
func (h *ChatHandler) Post(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Message text is required")
	}

	msg, err := h.chatService.Post(c.Request().Context(), user, req.Text)
	if err != nil {
		return err
	}

	metrics.ChatMessagesTotal.Inc()
	return ok(c, msg)
}
