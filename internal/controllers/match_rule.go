package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

// RegisterMatchRuleRoutes registers the routes for match rules with
// the RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMatchRuleList)
		r.GET("", GetMatchRules)
		r.POST("", CreateMatchRule)
	}

	// Match rule with ID
	{
		r.OPTIONS("/:id", OptionsMatchRuleDetail)
		r.DELETE("/:id", DeleteMatchRule)
	}
}

// OptionsMatchRuleList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			MatchRules
//	@Success		204
//	@Router			/v1/match-rules [options]
func OptionsMatchRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsMatchRuleDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			MatchRules
//	@Success		204
//	@Router			/v1/match-rules/{id} [options]
func OptionsMatchRuleDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetMatchRules returns all match rules
//
//	@Summary		Get match rules
//	@Description	Returns a list of match rules in evaluation order
//	@Tags			MatchRules
//	@Produce		json
//	@Success		200	{object}	MatchRuleListResponse
//	@Failure		500	{object}	httpError
//	@Router			/v1/match-rules [get]
func GetMatchRules(c *gin.Context) {
	rules, err := repository.NewMatchRules(models.DB).FindAll()
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{Data: rules})
}

// CreateMatchRule creates a new match rule
//
//	@Summary		Create match rule
//	@Description	Creates a new match rule used to assign categories during import
//	@Tags			MatchRules
//	@Produce		json
//	@Success		201			{object}	MatchRuleResponse
//	@Failure		400			{object}	httpError
//	@Param			matchRule	body		models.MatchRuleEditable	true	"Match rule"
//	@Router			/v1/match-rules [post]
func CreateMatchRule(c *gin.Context) {
	var editable models.MatchRuleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	rule, err := models.NewMatchRule(editable)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	created, err := repository.NewMatchRules(models.DB).Add(rule)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, MatchRuleResponse{Data: &created})
}

// DeleteMatchRule deletes a match rule
//
//	@Summary		Delete match rule
//	@Description	Deletes a match rule
//	@Tags			MatchRules
//	@Success		204
//	@Failure		404	{object}	httpError
//	@Router			/v1/match-rules/{id} [delete]
func DeleteMatchRule(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := repository.NewMatchRules(models.DB).Remove(uri.ID); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
