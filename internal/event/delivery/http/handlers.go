package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkylink/internal/event"
	pkgErrors "linkylink/pkg/errors"
	"linkylink/pkg/icalendar"
	"linkylink/pkg/permalink"
	"linkylink/pkg/response"
)

// Index renders the entry form, or the results screen when the request is a
// permalink (?data=...).
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	data := c.Query(permalink.DataParam)
	if data == "" {
		h.render(c, http.StatusOK, event.Initial())
		return
	}

	state, err := h.uc.Open(ctx, data)
	if err != nil {
		h.render(c, http.StatusBadRequest, event.ErrorState{Message: event.MsgInvalidPermalink})
		return
	}

	h.render(c, http.StatusOK, state)
}

// Generate handles the GENERATE LINKS form post.
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.event.delivery.http.Generate: bind: %v", err)
		h.render(c, http.StatusBadRequest, event.ErrorState{Message: event.MsgInvalidForm})
		return
	}

	h.render(c, http.StatusOK, h.uc.Submit(ctx, req.toInput()))
}

// Reset handles the BACK button.
func (h *handler) Reset(c *gin.Context) {
	h.render(c, http.StatusOK, h.uc.Reset(c.Request.Context()))
}

// Calendar godoc
// @Summary     Download an event as .ics
// @Description Renders the event embedded in a permalink data value as an iCalendar file.
// @Tags        Event
// @Produce     text/calendar
// @Param       data query string true "Permalink data (JSON of the generate-link response)"
// @Success     200 {file}   file
// @Failure     400 {object} response.Resp "Invalid permalink data"
// @Failure     422 {object} response.Resp "Event has no usable start time"
// @Router      /event.ics [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPermalinkReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	file, err := h.uc.Calendar(ctx, req.Data)
	if err != nil {
		h.l.Warnf(ctx, "internal.event.delivery.http.Calendar: uc.Calendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, icalendar.ContentType, file.Content)
}

// GenerateAPI godoc
// @Summary     Parse an event description
// @Description Sends the prompt to the generate-link API and returns the resulting page state.
// @Tags        Event
// @Produce     json
// @Param       prompt query string false "Free-text event description"
// @Success     200 {object} stateResp
// @Failure     502 {object} response.Resp "Generate-link API failed; data holds the error state"
// @Router      /api/v1/events/generate [GET]
func (h *handler) GenerateAPI(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateAPIReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	state := h.uc.Submit(ctx, req.toInput())
	if es, ok := state.(event.ErrorState); ok {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadGateway, es.Message), map[string]interface{}{
			"state": h.newStateResp(state),
		})
		return
	}

	response.OK(c, h.newStateResp(state))
}

// PermalinkAPI godoc
// @Summary     Open a permalink
// @Description Decodes a permalink data value into the results page state.
// @Tags        Event
// @Produce     json
// @Param       data query string true "Permalink data (JSON of the generate-link response)"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Invalid permalink data"
// @Router      /api/v1/events/permalink [GET]
func (h *handler) PermalinkAPI(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPermalinkReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	state, err := h.uc.Open(ctx, req.Data)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStateResp(state))
}

func (h *handler) render(c *gin.Context, status int, state event.State) {
	c.HTML(status, pageTemplate, h.newPageView(state))
}
