package controller_blog

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/domain/mocks"
	"github.com/manhva-oppa/oppa-blog/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMangaController(t *testing.T) {
	uc := mocks.NewMangaUsecase(t)
	ctrl := NewMangaController(uc)
	r := gin.New()
	r.GET("/manga", ctrl.ListHandler)
	r.POST("/manga", ctrl.CreateHandler)
	r.GET("/manga/:id", ctrl.GetHandler)
	r.DELETE("/manga", ctrl.DeleteManyHandler)
	r.PUT("/manga/:id", ctrl.UpdateHandler)
	r.PATCH("/manga/:id", ctrl.PatchHandler)
	r.DELETE("/manga/:id", ctrl.DeleteHandler)

	t.Run("list uses default paging", func(t *testing.T) {
		uc.On("GetPaginated", mock.Anything, 1, 20).
			Return([]*blog_models.Manga{{Title: "Solo Leveling"}}, int64(31), nil).Once()

		w := serve(r, http.MethodGet, "/manga", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 31, decode(t, w)["count"])
	})

	t.Run("list rejects oversized pages", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/manga?page_size=500", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create requires a title", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/manga", `{"author":"Chugong"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_BODY", decode(t, w)["code"])
	})

	t.Run("create", func(t *testing.T) {
		uc.On("Create", mock.Anything, mock.MatchedBy(func(m *blog_models.Manga) bool {
			return m.Title == "Tower of God" && m.Author == "SIU"
		})).Return(&blog_models.Manga{Title: "Tower of God"}, nil).Once()

		w := serve(r, http.MethodPost, "/manga", `{"title":"Tower of God","author":"SIU"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get maps errors", func(t *testing.T) {
		uc.On("GetByID", mock.Anything, "nope").Return(nil, fmt.Errorf("%w: nope", usecase.ErrInvalidID)).Once()
		uc.On("GetByID", mock.Anything, "65f000000000000000000000").Return(nil, domain.ErrNotFound).Once()

		assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/manga/nope", "").Code)
		assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/manga/65f000000000000000000000", "").Code)
	})

	t.Run("delete", func(t *testing.T) {
		uc.On("Delete", mock.Anything, "65f000000000000000000001").Return(nil).Once()

		w := serve(r, http.MethodDelete, "/manga/65f000000000000000000001", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update keeps id and created_at", func(t *testing.T) {
		id := "65f000000000000000000002"
		oid, _ := primitive.ObjectIDFromHex(id)
		created := primitive.DateTime(1700000000000)
		uc.On("GetByID", mock.Anything, id).
			Return(&blog_models.Manga{ID: oid, Title: "Old", CreatedAt: created}, nil).Once()
		uc.On("Update", mock.Anything, mock.MatchedBy(func(m *blog_models.Manga) bool {
			return m.ID == oid && m.CreatedAt == created && m.Title == "Omniscient Reader"
		})).Return(nil).Once()

		w := serve(r, http.MethodPut, "/manga/"+id, `{"id":"65f0000000000000000000ff","title":"Omniscient Reader"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update of missing manga", func(t *testing.T) {
		uc.On("GetByID", mock.Anything, "65f000000000000000000003").Return(nil, domain.ErrNotFound).Once()

		w := serve(r, http.MethodPut, "/manga/65f000000000000000000003", `{"title":"Ghost"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update requires a title", func(t *testing.T) {
		uc.On("GetByID", mock.Anything, "65f000000000000000000002").
			Return(&blog_models.Manga{Title: "Old"}, nil).Once()

		w := serve(r, http.MethodPut, "/manga/65f000000000000000000002", `{"author":"Sing Shong"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("patch drops immutable fields", func(t *testing.T) {
		id := "65f000000000000000000004"
		uc.On("Exists", mock.Anything, id).Return(true, nil).Once()
		uc.On("UpdateByID", mock.Anything, id, map[string]interface{}{"status": "completed"}).Return(nil).Once()

		w := serve(r, http.MethodPatch, "/manga/"+id, `{"status":"completed","_id":"x","created_at":0}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("patch of missing manga", func(t *testing.T) {
		uc.On("Exists", mock.Anything, "65f000000000000000000005").Return(false, nil).Once()

		w := serve(r, http.MethodPatch, "/manga/65f000000000000000000005", `{"status":"ongoing"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("patch rejects empty and blank title", func(t *testing.T) {
		w := serve(r, http.MethodPatch, "/manga/65f000000000000000000004", `{"_id":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serve(r, http.MethodPatch, "/manga/65f000000000000000000004", `{"title":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("patch with malformed id", func(t *testing.T) {
		uc.On("Exists", mock.Anything, "nope").Return(false, fmt.Errorf("%w: nope", usecase.ErrInvalidID)).Once()

		w := serve(r, http.MethodPatch, "/manga/nope", `{"status":"ongoing"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete many", func(t *testing.T) {
		ids := []string{"65f000000000000000000006", "65f000000000000000000007"}
		uc.On("DeleteByIDs", mock.Anything, ids).Return(nil).Once()

		w := serve(r, http.MethodDelete, "/manga", `{"ids":["65f000000000000000000006","65f000000000000000000007"]}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 2, decode(t, w)["count"])
	})

	t.Run("delete many validates ids", func(t *testing.T) {
		w := serve(r, http.MethodDelete, "/manga", `{"ids":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serve(r, http.MethodDelete, "/manga", `{"ids":["65f000000000000000000006","bad"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PARAM", decode(t, w)["code"])
	})
}
