package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cattery/internal/aifill"
	"cattery/internal/domain"
	"cattery/internal/handler"
	"cattery/internal/service"
	"cattery/mocks"
)

func newAIRouter(formFill *mocks.MockFormFillService) *gin.Engine {
	h := handler.NewAIHandler(formFill)
	r := gin.New()
	r.POST("/ai/form/fill", h.Fill)
	r.GET("/ai/providers", h.Providers)
	return r
}

func TestAIHandler_Fill_Success(t *testing.T) {
	formFill := new(mocks.MockFormFillService)
	r := newAIRouter(formFill)

	formFill.On("Fill", mock.Anything, service.FillInput{
		FormType: domain.FormTypeCat,
		Text:     "山东店 豹猫妹妹 3000元",
		Provider: "zhipu",
	}).Return(&aifill.Output{
		Breed:     strPtr("豹猫妹妹"),
		StoreName: strPtr("山东店"),
		Price:     floatPtr(3000),
	}, nil)

	w := serve(r, http.MethodPost, "/ai/form/fill", map[string]string{
		"form_type": "cat",
		"text":      "山东店 豹猫妹妹 3000元",
		"provider":  "zhipu",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "豹猫妹妹", data["breed"])
	assert.Equal(t, float64(3000), data["price"])
	assert.Nil(t, data["name"], "fields absent from the text are null")
	formFill.AssertExpectations(t)
}

func TestAIHandler_Fill_MissingFormType(t *testing.T) {
	formFill := new(mocks.MockFormFillService)
	r := newAIRouter(formFill)

	w := serve(r, http.MethodPost, "/ai/form/fill", map[string]string{"text": "hello"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	formFill.AssertNotCalled(t, "Fill", mock.Anything, mock.Anything)
}

func TestAIHandler_Fill_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			"not configured",
			&aifill.ConfigurationError{Provider: aifill.ProviderZhipu, Message: "zhipu API key is not configured"},
			http.StatusServiceUnavailable, "AI_NOT_CONFIGURED",
		},
		{
			"provider error",
			&aifill.ProviderError{Provider: aifill.ProviderZhipu, StatusCode: 500},
			http.StatusBadGateway, "AI_PROVIDER_ERROR",
		},
		{
			"timeout",
			&aifill.ProviderError{Provider: aifill.ProviderZhipu, Timeout: true, Err: context.DeadlineExceeded},
			http.StatusGatewayTimeout, "AI_TIMEOUT",
		},
		{
			"malformed",
			&aifill.MalformedOutputError{Detail: "unexpected token"},
			http.StatusBadGateway, "AI_MALFORMED_OUTPUT",
		},
		{"empty text", domain.ErrEmptyFillText, http.StatusBadRequest, "EMPTY_FILL_TEXT"},
		{"form type", domain.ErrUnsupportedFormType, http.StatusBadRequest, "UNSUPPORTED_FORM_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formFill := new(mocks.MockFormFillService)
			r := newAIRouter(formFill)
			formFill.On("Fill", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(r, http.MethodPost, "/ai/form/fill", map[string]string{"form_type": "cat", "text": "x"})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}
}

func TestAIHandler_Providers(t *testing.T) {
	formFill := new(mocks.MockFormFillService)
	r := newAIRouter(formFill)

	formFill.On("Providers").Return([]service.ProviderInfo{
		{ID: aifill.ProviderZhipu, Label: "智谱", Configured: true, Default: true},
		{ID: aifill.ProviderBailian, Label: "百炼"},
	})

	w := serve(r, http.MethodGet, "/ai/providers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.([]interface{})
	assert.Len(t, data, 2)
}
