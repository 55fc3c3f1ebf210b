package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// OptionsCategoryList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Failure		404	{object}	httpError
//	@Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	if _, err := repository.NewCategories(models.DB).Find(uri.ID); err != nil {
		httputil.Error(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetCategories returns all categories
//
//	@Summary		Get categories
//	@Description	Returns a list of categories, sorted by name
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Failure		500	{object}	httpError
//	@Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := repository.NewCategories(models.DB).FindAll()
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// CreateCategory creates a new category
//
//	@Summary		Create category
//	@Description	Creates a new category
//	@Tags			Categories
//	@Produce		json
//	@Success		201			{object}	CategoryResponse
//	@Failure		400			{object}	httpError
//	@Failure		409			{object}	httpError
//	@Param			category	body		models.CategoryEditable	true	"Category"
//	@Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable models.CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	category, err := models.NewCategory(editable)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	created, err := repository.NewCategories(models.DB).Add(category)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &created})
}

// GetCategory returns a single category
//
//	@Summary		Get category
//	@Description	Returns a specific category
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryResponse
//	@Failure		404	{object}	httpError
//	@Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	category, err := repository.NewCategories(models.DB).Find(uri.ID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// UpdateCategory updates an existing category
//
//	@Summary		Update category
//	@Description	Update an existing category. Only values to be updated need to be specified.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	CategoryResponse
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Failure		409			{object}	httpError
//	@Param			category	body		models.CategoryEditable	true	"Category"
//	@Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	var editable models.CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	updated, err := repository.NewCategories(models.DB).Update(uri.ID, editable)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &updated})
}

// DeleteCategory deletes a category
//
//	@Summary		Delete category
//	@Description	Deletes a category
//	@Tags			Categories
//	@Success		204
//	@Failure		404	{object}	httpError
//	@Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := repository.NewCategories(models.DB).Remove(uri.ID); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
