package live

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/DhavalSuthar-24/crickettourney/pkg/responses"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

// LiveController exposes the hub over HTTP.
type LiveController struct {
	hub *Hub
}

func NewLiveController(hub *Hub) *LiveController {
	return &LiveController{hub: hub}
}

// PublishResult reports how many subscribers accepted a frame.
type PublishResult struct {
	Delivered int `json:"delivered"`
}

// Subscribe godoc
// @Summary Live score websocket
// @Description Upgrades to a websocket. Frames {"event":"score:update","data":...} sent by any client are rebroadcast to all clients as {"event":"score:updated","data":...}.
// @Tags Live
// @Success 101 "Switching Protocols"
// @Router /live/ws [get]
func (lc *LiveController) Subscribe(c *gin.Context) {
	if err := lc.hub.Serve(c.Writer, c.Request); err != nil {
		// The upgrader has already answered the client.
		_ = c.Error(err)
	}
}

// PublishScore godoc
// @Summary Publish a score update
// @Description Broadcasts the request body verbatim as the data of a score:updated frame.
// @Tags Live
// @Accept json
// @Produce json
// @Param payload body object true "Any JSON value"
// @Success 202 {object} responses.SuccessResponse{data=PublishResult}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 503 {object} responses.ErrorResponse "Relay closed"
// @Router /live/score [post]
func (lc *LiveController) PublishScore(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxMessageSize+1))
	if err != nil {
		responses.BadRequest(c, "Could not read payload")
		return
	}
	if len(body) > maxMessageSize {
		responses.SendError(c, http.StatusRequestEntityTooLarge, "Payload too large")
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !sonic.Valid(body) {
		responses.BadRequest(c, "Payload must be valid JSON")
		return
	}
	n, err := lc.hub.Broadcast(json.RawMessage(body))
	if err != nil {
		_ = c.Error(err)
		responses.SendError(c, http.StatusServiceUnavailable, "Live relay is not accepting updates")
		return
	}
	responses.SendSuccess(c, http.StatusAccepted, "Score update published", PublishResult{Delivered: n})
}
