package handlers

import (
	"io"
	"net/http"

	"inventory-manager/internal/events"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const streamBuffer = 32

// EventsHandler exposes store change notifications to the browser UI
type EventsHandler struct {
	logger    *zap.Logger
	publisher *events.InMemoryEventPublisher
}

func NewEventsHandler(publisher *events.InMemoryEventPublisher, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{logger: logger, publisher: publisher}
}

// History godoc
// @Summary      Recent change notifications
// @Description  Returns the retained history of store change notifications, oldest first.
// @Tags         events
// @Produce      json
// @Success      200  {array}  events.Event  "Event history"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Router       /inventory/events [get]
func (h *EventsHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.publisher.Events())
}

// Stream godoc
// @Summary      Stream change notifications
// @Description  Server-sent events, one per published change. The stream ends when the client disconnects.
// @Tags         events
// @Produce      text/event-stream
// @Success      200  {object}  events.Event  "text/event-stream of events"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Router       /inventory/events/stream [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	ch, cancel := h.publisher.Subscribe(streamBuffer)
	defer cancel()

	h.logger.Debug("Event stream opened", zap.String("ip", c.ClientIP()))
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event)
			return true
		}
	})
	h.logger.Debug("Event stream closed", zap.String("ip", c.ClientIP()))
}
