package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umazing/store-dashboard-bff/internal/catalog"
	"github.com/umazing/store-dashboard-bff/internal/models"
	"github.com/umazing/store-dashboard-bff/pkg/utils"
)

type ProductController struct {
	Catalog *catalog.Catalog
	Gateway catalog.Gateway
}

// productAction is the POST /api/products envelope. Product stays raw until
// the action is known: addProduct takes a draft, editProduct a full record.
type productAction struct {
	Action      string          `json:"action" binding:"required"`
	Product     json.RawMessage `json:"product"`
	ID          string          `json:"id"`
	DeleteFiles bool            `json:"deleteFiles"`
}

// ListProducts reloads the collection from the sheet and returns it, filtered
// by the optional q query against product name or category.
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.Catalog.Load(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	if q := c.Query("q"); q != "" {
		products = catalog.FilterProducts(products, q)
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"products": products})
}

// Mutate dispatches the action envelope to the matching catalog or gateway
// operation. An unrecognized action fails locally and is never forwarded
// upstream.
func (pc *ProductController) Mutate(c *gin.Context) {
	var req productAction
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	switch req.Action {
	case "addProduct":
		pc.addProduct(c, req)
	case "editProduct":
		pc.editProduct(c, req)
	case "deleteProduct":
		pc.deleteProduct(c, req)
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown action")
	}
}

func (pc *ProductController) addProduct(c *gin.Context, req productAction) {
	if len(req.Product) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "product is required")
		return
	}

	var draft models.ProductDraft
	if err := json.Unmarshal(req.Product, &draft); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	finalized, err := draft.Finalize()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := pc.Catalog.Create(c.Request.Context(), finalized)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"product": created})
}

func (pc *ProductController) editProduct(c *gin.Context, req productAction) {
	if len(req.Product) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "product is required")
		return
	}

	var product models.Product
	if err := json.Unmarshal(req.Product, &product); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if product.ID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "product id is required")
		return
	}

	// Edits bypass the catalog view: the dashboard has no edit flow yet, the
	// action is proxied for the sheet's other consumers.
	updated, err := pc.Gateway.EditProduct(c.Request.Context(), product)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"product": updated})
}

func (pc *ProductController) deleteProduct(c *gin.Context, req productAction) {
	if req.ID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "id is required")
		return
	}

	if err := pc.Catalog.Remove(c.Request.Context(), req.ID, req.DeleteFiles); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"id": req.ID})
}

// Summary returns the stat-card counters for the currently loaded collection.
func (pc *ProductController) Summary(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, gin.H{"summary": pc.Catalog.Summary()})
}

// UploadImages encodes a batch of uploaded image files into data URIs ready
// to be embedded in a product draft. The batch succeeds or fails as a whole.
func (pc *ProductController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "no images provided")
		return
	}

	images, err := catalog.EncodeUploads(c.Request.Context(), files)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"images": images})
}
