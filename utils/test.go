package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// SkipWithoutDB skips DB-backed tests when no database is configured
func SkipWithoutDB(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set; skipping database-backed test")
	}
}

// TestSetup initializes the test environment
func TestSetup(t *testing.T) {
	if _, err := config.LoadConfig(); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	config.InitDB()
	ClearTestData()
}

// TestTeardown cleans up the test environment
func TestTeardown(t *testing.T) {
	ClearTestData()
}

// ClearTestData clears all test data from the database
func ClearTestData() {
	config.DB.Exec("TRUNCATE TABLE vouchers RESTART IDENTITY CASCADE")
}

// NewTestVoucher builds an unsaved voucher with sane defaults
func NewTestVoucher(name string, expiry time.Time) *models.Voucher {
	return &models.Voucher{
		Name:               name,
		Price:              decimal.NewFromFloat(100.00),
		DiscountPercentage: decimal.NewFromFloat(20.00),
		ExpiryDate:         expiry.UTC(),
		IsAvailable:        true,
		Status:             models.VoucherStatusUnused,
	}
}

// CreateTestVoucher persists a voucher for use in tests
func CreateTestVoucher(t *testing.T, name string, expiry time.Time) *models.Voucher {
	voucher := NewTestVoucher(name, expiry)
	if err := config.DB.Create(voucher).Error; err != nil {
		t.Fatalf("Failed to create test voucher: %v", err)
	}
	return voucher
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Body       map[string]interface{}
}

// MakeTestRequest makes a test HTTP request
func MakeTestRequest(t *testing.T, router *gin.Engine, req TestRequest) TestResponse {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	var responseBody map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
			t.Fatalf("Failed to unmarshal response body: %v", err)
		}
	}

	return TestResponse{
		StatusCode: w.Code,
		Body:       responseBody,
	}
}

// AssertResponse asserts the test response
func AssertResponse(t *testing.T, response TestResponse, expectedStatusCode int, expectedBody map[string]interface{}) {
	assert.Equal(t, expectedStatusCode, response.StatusCode)
	if expectedBody != nil {
		assert.Equal(t, expectedBody, response.Body)
	}
}
