package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-finder/live"
	"github.com/yeremiapane/cafe-finder/middlewares"
	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/services"
	"github.com/yeremiapane/cafe-finder/utils"
)

// AdminController serves the key-protected edit surface. Every route is
// mounted behind middlewares.RequireAccessKey.
type AdminController struct {
	Catalog *services.CatalogService
	Flash   *utils.FlashStore
	Hub     *live.Hub
}

func NewAdminController(catalog *services.CatalogService, flash *utils.FlashStore, hub *live.Hub) *AdminController {
	return &AdminController{Catalog: catalog, Flash: flash, Hub: hub}
}

// EditPage -> daftar semua cafe untuk diedit
func (ac *AdminController) EditPage(c *gin.Context) {
	cafes, err := ac.Catalog.ListAllCafes(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("Error listing cafes: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	render(c, ac.Flash, http.StatusOK, "edit.html", gin.H{
		"cafes":      cafes,
		"cities":     models.Cities,
		"secret_key": c.GetString(middlewares.AccessKeyContextKey),
	})
}

// AddCafe -> menambahkan cafe baru
func (ac *AdminController) AddCafe(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		ac.backToListing(c)
		return
	}

	var form CafeForm
	if err := c.ShouldBind(&form); err != nil {
		ac.Flash.Error(c, fmt.Sprintf("Error adding cafe: %v", err))
		ac.backToListing(c)
		return
	}

	if form.MissingRequired() {
		ac.Flash.Error(c, "Please fill in all required fields.")
		ac.backToListing(c)
		return
	}

	cafe, err := ac.createCafe(c, form)
	if err != nil {
		logRejected(err, "Cafe not added")
		ac.Flash.Error(c, fmt.Sprintf("Error adding cafe: %v", err))
		ac.backToListing(c)
		return
	}

	ac.Hub.CafeCreated(*cafe)
	utils.InfoLogger.Printf("Cafe created: %s", cafe)
	ac.Flash.Success(c, fmt.Sprintf("Cafe \"%s\" has been added successfully!", cafe.Name))
	ac.backToListing(c)
}

// EditCafe -> overwrite semua field cafe
func (ac *AdminController) EditCafe(c *gin.Context) {
	cafe, ok := ac.loadCafe(c)
	if !ok {
		return
	}
	if c.Request.Method != http.MethodPost {
		ac.backToListing(c)
		return
	}

	var form CafeForm
	if err := c.ShouldBind(&form); err != nil {
		ac.Flash.Error(c, fmt.Sprintf("Error updating cafe: %v", err))
		ac.backToListing(c)
		return
	}

	updated, err := ac.updateCafe(c, cafe.ID, form)
	if errors.Is(err, services.ErrNotFound) {
		respondNotFound(c, err)
		return
	}
	if err != nil {
		logRejected(err, fmt.Sprintf("Cafe %d not updated", cafe.ID))
		ac.Flash.Error(c, fmt.Sprintf("Error updating cafe: %v", err))
		ac.backToListing(c)
		return
	}

	ac.Hub.CafeUpdated(*updated)
	utils.InfoLogger.Printf("Cafe %d updated: %s", updated.ID, updated)
	ac.Flash.Success(c, fmt.Sprintf("Cafe \"%s\" has been updated successfully!", updated.Name))
	ac.backToListing(c)
}

// DeleteCafe -> hapus cafe beserta review-nya
func (ac *AdminController) DeleteCafe(c *gin.Context) {
	cafe, ok := ac.loadCafe(c)
	if !ok {
		return
	}

	deleted, err := ac.Catalog.DeleteCafe(c.Request.Context(), cafe.ID)
	if errors.Is(err, services.ErrNotFound) {
		respondNotFound(c, err)
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("Error deleting cafe %d: %v", cafe.ID, err)
		ac.Flash.Error(c, fmt.Sprintf("Error deleting cafe: %v", err))
		ac.backToListing(c)
		return
	}

	ac.Hub.CafeDeleted(*deleted)
	utils.InfoLogger.Printf("Cafe %d deleted", deleted.ID)
	ac.Flash.Success(c, fmt.Sprintf("Cafe \"%s\" has been deleted successfully!", deleted.Name))
	ac.backToListing(c)
}

func (ac *AdminController) createCafe(c *gin.Context, form CafeForm) (*models.Cafe, error) {
	fields, err := form.Fields()
	if err != nil {
		return nil, err
	}
	return ac.Catalog.CreateCafe(c.Request.Context(), fields)
}

func (ac *AdminController) updateCafe(c *gin.Context, id uint, form CafeForm) (*models.Cafe, error) {
	fields, err := form.Fields()
	if err != nil {
		return nil, err
	}
	return ac.Catalog.UpdateCafe(c.Request.Context(), id, fields)
}

func (ac *AdminController) loadCafe(c *gin.Context) (*models.Cafe, bool) {
	id, err := parseID(c, "cafe_id")
	if err != nil {
		respondNotFound(c, err)
		return nil, false
	}

	cafe, err := ac.Catalog.GetCafe(c.Request.Context(), id)
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

// logRejected logs invalid input at info level and anything else as an
// error.
func logRejected(err error, what string) {
	if services.IsValidation(err) {
		utils.InfoLogger.Printf("%s: %v", what, err)
		return
	}
	utils.ErrorLogger.Printf("%s: %v", what, err)
}

func (ac *AdminController) backToListing(c *gin.Context) {
	c.Redirect(http.StatusFound, EditListingURL(c.GetString(middlewares.AccessKeyContextKey)))
}

// EditListingURL is the edit page URL carrying the access key.
func EditListingURL(key string) string {
	return "/edit/?key=" + url.QueryEscape(key)
}
