package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-finder/live"
	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/services"
	"github.com/yeremiapane/cafe-finder/utils"
)

type CafeController struct {
	Catalog *services.CatalogService
	Flash   *utils.FlashStore
	Hub     *live.Hub
}

func NewCafeController(catalog *services.CatalogService, flash *utils.FlashStore, hub *live.Hub) *CafeController {
	return &CafeController{Catalog: catalog, Flash: flash, Hub: hub}
}

// Homepage -> daftar cafe per kota
func (cc *CafeController) Homepage(c *gin.Context) {
	var q HomeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	q.normalize()

	cafes, err := cc.Catalog.ListCafes(c.Request.Context(), services.CafeQuery{
		City:   q.City,
		Search: q.Search,
		Sort:   q.Sort,
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error listing cafes for %s: %v", q.City, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	render(c, cc.Flash, http.StatusOK, "home.html", gin.H{
		"cafes":         cafes,
		"cities":        models.Cities,
		"selected_city": q.City,
		"search_query":  q.Search,
		"sort_by":       q.Sort,
	})
}

// CafeDetail -> detail cafe beserta review
func (cc *CafeController) CafeDetail(c *gin.Context) {
	cafe, ok := cc.loadCafe(c)
	if !ok {
		return
	}
	cc.renderDetail(c, http.StatusOK, cafe, ReviewForm{})
}

// SubmitReview -> visitor menambahkan review
func (cc *CafeController) SubmitReview(c *gin.Context) {
	cafe, ok := cc.loadCafe(c)
	if !ok {
		return
	}

	var form ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	review, err := cc.Catalog.CreateReview(c.Request.Context(), cafe.ID, form.ReviewText, form.Email)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve) && ve.Field == "text":
			cc.Flash.Error(c, "Please enter a review.")
		case errors.As(err, &ve):
			cc.Flash.Error(c, fmt.Sprintf("Please check the %s field: %s.", ve.Field, ve.Message))
		case errors.Is(err, services.ErrNotFound):
			respondNotFound(c, err)
			return
		default:
			utils.ErrorLogger.Printf("Error creating review for cafe %d: %v", cafe.ID, err)
			cc.Flash.Error(c, fmt.Sprintf("Error submitting review: %v", err))
		}
		cc.renderDetail(c, http.StatusOK, cafe, form)
		return
	}

	cc.Hub.ReviewCreated(*review)
	utils.InfoLogger.Printf("Review %d created: %s", review.ID, review.Describe(cafe.Name))
	cc.Flash.Success(c, "Your review has been submitted successfully!")
	c.Redirect(http.StatusFound, cafeDetailURL(cafe.ID))
}

// VoteReview -> agree/disagree pada sebuah review
func (cc *CafeController) VoteReview(c *gin.Context) {
	id, err := parseID(c, "review_id")
	if err != nil {
		respondNotFound(c, err)
		return
	}

	ctx := c.Request.Context()
	review, err := cc.Catalog.GetReview(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	voted, err := cc.Catalog.VoteReview(ctx, review.ID, services.VoteDirection(c.Param("vote_type")))
	switch {
	case errors.Is(err, services.ErrInvalidVote):
		utils.InfoLogger.Printf("Ignoring vote on review %d: %v", review.ID, err)
	case err != nil:
		utils.ErrorLogger.Printf("Error voting on review %d: %v", review.ID, err)
	default:
		cc.Hub.ReviewVoted(*voted)
	}

	c.Redirect(http.StatusFound, cafeDetailURL(review.CafeID))
}

func (cc *CafeController) loadCafe(c *gin.Context) (*models.Cafe, bool) {
	id, err := parseID(c, "cafe_id")
	if err != nil {
		respondNotFound(c, err)
		return nil, false
	}

	cafe, err := cc.Catalog.GetCafe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c, err)
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return nil, false
	}
	return cafe, true
}

func (cc *CafeController) renderDetail(c *gin.Context, code int, cafe *models.Cafe, form ReviewForm) {
	reviews, err := cc.Catalog.ListReviews(c.Request.Context(), cafe.ID)
	if err != nil {
		utils.ErrorLogger.Printf("Error listing reviews of cafe %d: %v", cafe.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	render(c, cc.Flash, code, "cafe_detail.html", gin.H{
		"cafe":    cafe,
		"reviews": reviews,
		"form":    form,
	})
}

func cafeDetailURL(id uint) string {
	return fmt.Sprintf("/cafe/%d/", id)
}
