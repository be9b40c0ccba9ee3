package router

import (
	"net/http"
	"strconv"

	"github.com/aviwein/memorial-search/internal/apperr"
	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/aviwein/memorial-search/internal/filter"
	"github.com/aviwein/memorial-search/internal/session"
	"github.com/aviwein/memorial-search/internal/syncer"
	"github.com/aviwein/memorial-search/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type ObituariesRouter struct {
	e        *echo.Echo
	session  *session.Session
	pipeline *filter.Pipeline
	triggers []syncer.Trigger
}

func NewObituariesRouter(e *echo.Echo, s *session.Session, pipeline *filter.Pipeline, triggers ...syncer.Trigger) *ObituariesRouter {
	return &ObituariesRouter{
		e:        e,
		session:  s,
		pipeline: pipeline,
		triggers: triggers,
	}
}

func (r *ObituariesRouter) Bind() {
	r.e.GET("/obituaries", r.listHandler)
	r.e.GET("/obituaries/external", r.externalHandler)
	r.e.POST("/obituaries/sync", r.syncHandler)
}

type listResponse struct {
	*pagination.RevealResult[domain.UnifiedObituary]
	Sources []domain.SourceStatus `json:"sources"`
}

// listHandler godoc
// @Summary Unified obituary search
// @Description Filterable, cumulatively paginated view over all sources
// @Param page query int false "1-indexed page" default(1)
// @Param q query string false "free-text search term"
// @Param state query string false "state code or location fragment"
// @Produce json
// @Success 200 {object} listResponse
// @Router /obituaries [get]
func (r *ObituariesRouter) listHandler(c echo.Context) error {
	var state domain.FilterState
	if err := c.Bind(&state); err != nil {
		return apperr.NewValidationWrap("invalid filter parameters", err)
	}

	snap := r.session.Snapshot()
	filtered, err := r.pipeline.Apply(c.Request().Context(), snap.All(), state)
	if err != nil {
		return err
	}

	page := pagination.Reveal(filtered, pagination.RevealRequest{Page: pageParam(c)})
	return c.JSON(http.StatusOK, listResponse{
		RevealResult: page,
		Sources:      []domain.SourceStatus{snap.PrimaryStatus, snap.ExternalStatus},
	})
}

// externalHandler godoc
// @Summary External obituaries
// @Description Feed and scraped obituaries only, sortable by recency or source
// @Param page query int false "1-indexed page" default(1)
// @Param sort query string false "recent or source" default(recent)
// @Produce json
// @Success 200 {object} listResponse
// @Router /obituaries/external [get]
func (r *ObituariesRouter) externalHandler(c echo.Context) error {
	var state domain.FilterState
	if err := c.Bind(&state); err != nil {
		return apperr.NewValidationWrap("invalid filter parameters", err)
	}

	snap := r.session.Snapshot()
	filtered, err := r.pipeline.Apply(c.Request().Context(), snap.External, state)
	if err != nil {
		return err
	}
	filter.Sort(filtered, sortParam(c))

	page := pagination.Reveal(filtered, pagination.RevealRequest{Page: pageParam(c)})
	return c.JSON(http.StatusOK, listResponse{
		RevealResult: page,
		Sources:      []domain.SourceStatus{snap.ExternalStatus},
	})
}

type syncResponse struct {
	syncer.Result
	Notice string `json:"notice"`
}

// syncHandler godoc
// @Summary Trigger source ingestion
// @Description Runs the feed-parse and scraped-sync jobs and merges fresh data
// @Produce json
// @Success 200 {object} syncResponse
// @Router /obituaries/sync [post]
func (r *ObituariesRouter) syncHandler(c echo.Context) error {
	notifier := &captureNotifier{}
	o := syncer.New(notifier, r.session, r.triggers...)

	res := o.Run(c.Request().Context())

	return c.JSON(http.StatusOK, syncResponse{Result: res, Notice: notifier.message})
}

// captureNotifier turns the notification into the response body; the
// web client renders it as a toast.
type captureNotifier struct {
	message string
}

func (n *captureNotifier) Success(msg string) { n.message = msg }
func (n *captureNotifier) Failure(msg string) { n.message = msg }

func pageParam(c echo.Context) int {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func sortParam(c echo.Context) filter.SortMode {
	if c.QueryParam("sort") == string(filter.SortSourceLabel) {
		return filter.SortSourceLabel
	}
	return filter.SortMostRecent
}
