package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"

	"github.com/vedor-app/backend/internal/httputil"
	"github.com/vedor-app/backend/internal/importer"
	"github.com/vedor-app/backend/internal/models"
	"github.com/vedor-app/backend/internal/repository"
)

var errNoImportData = errors.New("you must send a CSV file or a text/csv request body to this endpoint")

// ImportQuery are the query parameters for the import endpoint.
type ImportQuery struct {
	Dedupe *bool `form:"dedupe"` // Skip transactions that were already imported. Defaults to true.
}

// ImportRunResponse is the outcome of an import run.
type ImportRunResponse struct {
	Imported   int                 `json:"imported" example:"10"`  // Transactions stored
	Duplicates int                 `json:"duplicates" example:"2"` // Transactions skipped as duplicates, in the batch or already stored
	Errors     []importer.RowError `json:"errors"`                 // Rows that could not be parsed
}

// RegisterImportRoutes registers the routes for imports with the
// RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportTransactions)

	r.OPTIONS("/example", OptionsImportExample)
	r.GET("/example", GetImportExample)
}

// OptionsImport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Import
//	@Success		204
//	@Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsImportExample returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Import
//	@Success		204
//	@Router			/v1/import/example [options]
func OptionsImportExample(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetImportExample returns a sample CSV file
//
//	@Summary		Example CSV
//	@Description	Returns a sample CSV file in the format the import endpoint accepts
//	@Tags			Import
//	@Produce		plain
//	@Success		200	{string}	string
//	@Router			/v1/import/example [get]
func GetImportExample(c *gin.Context) {
	c.Header("content-disposition", `attachment; filename="ejemplo.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(importer.ExampleCSV()))
}

// ImportTransactions parses a CSV file and stores the transactions
//
//	@Summary		Import transactions
//	@Description	Parses a CSV file, resolves category names and stores the transactions. Duplicates are skipped.
//	@Tags			Import
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		201		{object}	ImportRunResponse
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			file	formData	file	true	"CSV file to import"
//	@Param			dedupe	query		bool	false	"Skip transactions that were already imported. Defaults to true."
//	@Router			/v1/import [post]
func ImportTransactions(c *gin.Context) {
	var query ImportQuery
	_ = c.BindQuery(&query)

	dedupe := true
	if query.Dedupe != nil {
		dedupe = *query.Dedupe
	}

	content, err := importContent(c)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	parsed := importer.Parse(content)

	if err := resolveCategories(parsed.Transactions); err != nil {
		httputil.Error(c, err)
		return
	}

	result, err := repository.NewTransactions(models.DB).ImportMany(parsed.Transactions, dedupe)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	errs := parsed.Errors
	if errs == nil {
		errs = make([]importer.RowError, 0)
	}

	c.JSON(http.StatusCreated, ImportRunResponse{
		Imported:   result.Imported,
		Duplicates: parsed.DuplicateCount + result.Duplicates,
		Errors:     errs,
	})
}

// importContent reads the CSV input from either a multipart form file
// or the raw request body.
func importContent(c *gin.Context) (string, error) {
	formFile, err := c.FormFile("file")
	if err == nil && formFile != nil {
		if !strings.HasSuffix(formFile.Filename, ".csv") {
			return "", errors.New("this endpoint only supports .csv files")
		}

		f, err := formFile.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}

		return string(content), nil
	}

	if strings.HasPrefix(c.ContentType(), "text/csv") {
		content, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return "", err
		}

		return string(content), nil
	}

	return "", errNoImportData
}

// resolveCategories maps the raw category text of parsed transactions
// to category IDs. Exact name and slug matches win, then the match
// rules are applied to the description. Text that resolves to nothing
// is kept as is.
func resolveCategories(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	categories, err := repository.NewCategories(models.DB).FindAll()
	if err != nil {
		return err
	}

	rules, err := repository.NewMatchRules(models.DB).FindAll()
	if err != nil {
		return err
	}

	byName := make(map[string]string, len(categories))
	bySlug := make(map[string]string, len(categories))
	for _, category := range categories {
		byName[strings.ToLower(category.Name)] = category.ID
		bySlug[category.Slug] = category.ID
	}

	for i := range transactions {
		transaction := &transactions[i]

		if transaction.CategoryID != "" {
			if id, ok := byName[strings.ToLower(transaction.CategoryID)]; ok {
				transaction.CategoryID = id
				continue
			}
			if id, ok := bySlug[models.Slugify(transaction.CategoryID)]; ok {
				transaction.CategoryID = id
			}

			continue
		}

		// Rules are already in priority order, the first match wins
		for _, rule := range rules {
			if glob.Glob(rule.Match, transaction.Description) {
				transaction.CategoryID = rule.CategoryID
				break
			}
		}
	}

	return nil
}
