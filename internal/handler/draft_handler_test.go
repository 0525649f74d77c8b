package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cattery/internal/aifill"
	"cattery/internal/domain"
	"cattery/internal/handler"
	"cattery/internal/service"
	"cattery/mocks"
)

func newDraftRouter(drafts *mocks.MockDraftService) *gin.Engine {
	h := handler.NewDraftHandler(drafts)
	r := gin.New()
	r.POST("/drafts", h.Open)
	r.GET("/drafts/:id", h.Get)
	r.PATCH("/drafts/:id", h.Edit)
	r.POST("/drafts/:id/ai-fill", h.Fill)
	r.POST("/drafts/:id/reset", h.Reset)
	r.POST("/drafts/:id/commit", h.Commit)
	r.DELETE("/drafts/:id", h.Close)
	return r
}

func TestDraftHandler_Open_EmptyBody(t *testing.T) {
	drafts := new(mocks.MockDraftService)
	r := newDraftRouter(drafts)

	id := uuid.New()
	drafts.On("Open", mock.Anything, service.OpenDraftInput{}).
		Return(&service.DraftView{ID: id, AIFilled: aifill.FieldSet{}}, nil)

	w := serve(r, http.MethodPost, "/drafts", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, id.String(), data["id"])
	assert.Equal(t, []interface{}{}, data["ai_filled"])
	drafts.AssertExpectations(t)
}

func TestDraftHandler_Open_ForCat(t *testing.T) {
	drafts := new(mocks.MockDraftService)
	r := newDraftRouter(drafts)

	catID := uuid.New()
	drafts.On("Open", mock.Anything, service.OpenDraftInput{CatID: &catID}).
		Return(nil, domain.ErrCatNotFound)

	w := serve(r, http.MethodPost, "/drafts", map[string]string{"cat_id": catID.String()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CAT_NOT_FOUND", errorCode(t, w))
}

func TestDraftHandler_Fill_Success(t *testing.T) {
	drafts := new(mocks.MockDraftService)
	r := newDraftRouter(drafts)

	id := uuid.New()
	attributed := aifill.FieldSet{aifill.FieldBreed: {}, aifill.FieldPrice: {}}
	drafts.On("Fill", mock.Anything, id, service.DraftFillInput{Text: "豹猫妹妹 3000元"}).
		Return(&service.DraftFillResult{
			Draft: &service.DraftView{
				ID:       id,
				Values:   aifill.FormValues{Breed: "豹猫妹妹", Price: floatPtr(3000)},
				AIFilled: attributed,
			},
			Output: &aifill.Output{Breed: strPtr("豹猫妹妹"), Price: floatPtr(3000)},
		}, nil)

	w := serve(r, http.MethodPost, "/drafts/"+id.String()+"/ai-fill", map[string]string{"text": "豹猫妹妹 3000元"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	draft := data["draft"].(map[string]interface{})
	assert.Equal(t, []interface{}{"breed", "price"}, draft["ai_filled"])
}

func TestDraftHandler_Fill_InProgress(t *testing.T) {
	drafts := new(mocks.MockDraftService)
	r := newDraftRouter(drafts)

	id := uuid.New()
	drafts.On("Fill", mock.Anything, id, mock.Anything).Return(nil, domain.ErrFillInProgress)

	w := serve(r, http.MethodPost, "/drafts/"+id.String()+"/ai-fill", map[string]string{"text": "again"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "FILL_IN_PROGRESS", errorCode(t, w))
}

func TestDraftHandler_Edit(t *testing.T) {
	drafts := new(mocks.MockDraftService)
	r := newDraftRouter(drafts)

	id := uuid.New()
	drafts.On("Edit", mock.Anything, id, mock.MatchedBy(func(e aifill.Edit) bool {
		return e.Name != nil && *e.Name == "团子" && e.Price == nil
	})).Return(&service.DraftView{ID: id}, nil)

	w := serve(r, http.MethodPatch, "/drafts/"+id.String(), map[string]string{"name": "团子"})

	assert.Equal(t, http.StatusOK, w.Code)
	drafts.AssertExpectations(t)
}

func TestDraftHandler_Commit_ValidationError(t *testing.T) {
	drafts := new(mocks.MockDraftService)
	r := newDraftRouter(drafts)

	id := uuid.New()
	drafts.On("Commit", mock.Anything, id).Return(nil, domain.ErrInvalidCat)

	w := serve(r, http.MethodPost, "/drafts/"+id.String()+"/commit", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CAT", errorCode(t, w))
}

func TestDraftHandler_Close(t *testing.T) {
	drafts := new(mocks.MockDraftService)
	r := newDraftRouter(drafts)

	id := uuid.New()
	drafts.On("Close", mock.Anything, id).Return(nil).Once()
	drafts.On("Close", mock.Anything, id).Return(domain.ErrDraftNotFound)

	w := serve(r, http.MethodDelete, "/drafts/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodDelete, "/drafts/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DRAFT_NOT_FOUND", errorCode(t, w))
}

func TestDraftHandler_InvalidID(t *testing.T) {
	r := newDraftRouter(new(mocks.MockDraftService))

	w := serve(r, http.MethodPost, "/drafts/nope/reset", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, w))
}
