package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func chargeRequest() ChargeRequest {
	return ChargeRequest{
		Amount:      JobPostingFeePaise,
		Currency:    CurrencyINR,
		Description: "Featured job posting: Junior Architect",
		PayerEmail:  "hr@designstudio.example",
		PayerName:   "Design Studio Pro",
	}
}

func Test_Charge_ApprovedCarriesReference(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != "https://checkout.example.com/v1/checkout" {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))

		var wire map[string]any
		if err := json.Unmarshal(body, &wire); err != nil {
			return false
		}
		return wire["key"] == "test_key" && wire["amount"] == float64(JobPostingFeePaise)
	})).Return(jsonResponse(`{"status":"captured","payment_id":"pay_123"}`), nil)

	client := NewClient("https://checkout.example.com", "test_key")
	client.SetHTTPClient(mockClient)

	outcome, err := client.Charge(context.Background(), chargeRequest())
	assert.NoError(err)
	assert.Equal(Approved, outcome.Status)
	assert.Equal("pay_123", outcome.Reference)
}

func Test_Charge_CancelledByPayer(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(`{"status":"failed","error_code":"payment_cancelled"}`), nil)

	client := NewClient("https://checkout.example.com", "test_key")
	client.SetHTTPClient(mockClient)

	outcome, err := client.Charge(context.Background(), chargeRequest())
	assert.NoError(t, err)
	assert.Equal(t, Cancelled, outcome.Status)
	assert.Empty(t, outcome.Reference)
}

func Test_Charge_DeclinedCarriesReason(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(`{"status":"failed","error_code":"payment_failed","error_description":"card declined"}`), nil)

	client := NewClient("https://checkout.example.com", "test_key")
	client.SetHTTPClient(mockClient)

	outcome, err := client.Charge(context.Background(), chargeRequest())
	assert.NoError(t, err)
	assert.Equal(t, Declined, outcome.Status)
	assert.Equal(t, "card declined", outcome.Reason)
}

func Test_Charge_RejectsInvalidRequestBeforeSending(t *testing.T) {

	mockClient := &mockHTTPClient{}

	client := NewClient("https://checkout.example.com", "test_key")
	client.SetHTTPClient(mockClient)

	request := chargeRequest()
	request.PayerEmail = ""

	_, err := client.Charge(context.Background(), request)
	assert.Error(t, err)
	mockClient.AssertNumberOfCalls(t, "Do", 0)
}
