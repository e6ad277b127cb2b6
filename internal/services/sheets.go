package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/umazing/store-dashboard-bff/internal/models"
)

const (
	actionGetProducts   = "getProducts"
	actionAddProduct    = "addProduct"
	actionEditProduct   = "editProduct"
	actionDeleteProduct = "deleteProduct"
)

// GatewayError is the single error shape surfaced for any failed exchange with
// the Apps Script endpoint, whether the transport failed or the endpoint
// answered with success:false. Message is human-readable and safe to relay.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// SheetsService issues the outbound calls to the spreadsheet-backed Apps
// Script endpoint. The shared api_key is a capability token for the sheet,
// not a user identity; it rides on every request.
type SheetsService struct {
	client *resty.Client
	apiKey string
}

func NewSheetsService(endpointURL string, apiKey string, timeout time.Duration) *SheetsService {
	client := resty.New().
		SetBaseURL(endpointURL).
		SetTimeout(timeout)

	return &SheetsService{client: client, apiKey: apiKey}
}

// scriptRequest is the POST body for all write actions. DeleteFiles is a
// pointer so it is serialized verbatim for deletes and omitted everywhere else.
type scriptRequest struct {
	APIKey      string          `json:"api_key"`
	Action      string          `json:"action"`
	Product     *models.Product `json:"product,omitempty"`
	ID          string          `json:"id,omitempty"`
	DeleteFiles *bool           `json:"deleteFiles,omitempty"`
}

func (s *SheetsService) FetchProducts(ctx context.Context) ([]models.Product, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("action", actionGetProducts).
		SetQueryParam("api_key", s.apiKey).
		Get("")

	body, err := normalize(resp, err)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if raw := gjson.GetBytes(body, "products"); raw.Exists() {
		if err := json.Unmarshal([]byte(raw.Raw), &products); err != nil {
			return nil, &GatewayError{Message: fmt.Sprintf("invalid products payload: %v", err)}
		}
	}

	return products, nil
}

func (s *SheetsService) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return s.submitProduct(ctx, actionAddProduct, product)
}

// EditProduct is not reachable from the dashboard yet, but external consumers
// of the sheet rely on the editProduct action, so the contract stays.
func (s *SheetsService) EditProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return s.submitProduct(ctx, actionEditProduct, product)
}

func (s *SheetsService) submitProduct(ctx context.Context, action string, product models.Product) (models.Product, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(scriptRequest{
			APIKey:  s.apiKey,
			Action:  action,
			Product: &product,
		}).
		Post("")

	body, err := normalize(resp, err)
	if err != nil {
		return models.Product{}, err
	}

	// The script may answer with its canonical row under "product", or with
	// just the id it assigned. Fall back to the submitted record otherwise.
	if raw := gjson.GetBytes(body, "product"); raw.IsObject() {
		var canonical models.Product
		if err := json.Unmarshal([]byte(raw.Raw), &canonical); err != nil {
			return models.Product{}, &GatewayError{Message: fmt.Sprintf("invalid product payload: %v", err)}
		}
		return canonical, nil
	}
	if id := gjson.GetBytes(body, "id"); id.Exists() {
		product.ID = id.String()
	}

	return product, nil
}

func (s *SheetsService) DeleteProduct(ctx context.Context, id string, deleteFiles bool) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(scriptRequest{
			APIKey:      s.apiKey,
			Action:      actionDeleteProduct,
			ID:          id,
			DeleteFiles: &deleteFiles,
		}).
		Post("")

	if _, err := normalize(resp, err); err != nil {
		return err
	}

	return nil
}

// normalize applies the shared envelope rule: a transport failure, a non-2xx
// status, or a 2xx body whose success field is falsy are all failures. The
// human-readable message comes from the body when the endpoint provided one.
func normalize(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		zap.L().Warn("apps script request failed", zap.Error(err))
		return nil, &GatewayError{Message: "apps script request failed"}
	}

	body := resp.Body()

	if !resp.IsSuccess() {
		zap.L().Warn("apps script returned error status",
			zap.Int("status", resp.StatusCode()),
		)
		return nil, &GatewayError{Message: remoteMessage(body, "apps script request failed")}
	}

	if !gjson.GetBytes(body, "success").Bool() {
		return nil, &GatewayError{Message: remoteMessage(body, "apps script error")}
	}

	return body, nil
}

func remoteMessage(body []byte, fallback string) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	return fallback
}
