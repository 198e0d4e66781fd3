package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/api/metrics"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/ports"
)

type TweetHandler struct {
	tweetService ports.TweetService
}

func NewTweetHandler(tweetService ports.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

type createTweetRequest struct {
	Content string `json:"content" validate:"required,max=280"`
}

// Create stores a tweet owned by the authenticated subject.
//
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTweetRequest  true  "Tweet content"
// @Success      201   {object}  domain.Tweet
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tweets [post]
func (h *TweetHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet, err := h.tweetService.CreateTweet(c.Request().Context(), claims, req.Content)
	if err != nil {
		return err
	}

	metrics.TweetsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, tweet)
}

// Delete removes a tweet the authenticated subject owns. A tweet that does
// not exist and a tweet owned by someone else both come back 404.
//
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Tweet id"
// @Success      200
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.tweetService.DeleteTweet(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}

	metrics.TweetsDeletedTotal.Inc()
	return c.NoContent(http.StatusOK)
}
