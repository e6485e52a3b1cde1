package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCRUDRoundTrip(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/stores", token, gin.H{
		"name":       "Lounge Aoi",
		"store_type": "Bar",
		"address":    "Shinjuku 2-1-1",
		"is_active":  true,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	store := decodeMap(t, created)
	id := store["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Lounge Aoi", store["name"])
	assert.Equal(t, "Bar", store["store_type"])
	assert.Equal(t, "Shinjuku 2-1-1", store["address"])
	assert.Equal(t, true, store["is_active"])

	got := doJSON(t, http.MethodGet, "/stores/"+id, token, nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, store, decodeMap(t, got))

	list := doJSON(t, http.MethodGet, "/stores", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	rows := decodeList(t, list)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0]["id"])
}

func TestStoreCreateAppliesDefaults(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/stores", token, gin.H{
		"address":   "Kabukicho 1-2-3",
		"is_active": false,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	store := decodeMap(t, created)
	assert.Equal(t, "TTLAND", store["name"])
	assert.Equal(t, "Con Cafe", store["store_type"])
	assert.Equal(t, false, store["is_active"])
}

func TestStoreCreateValidation(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	w := doJSON(t, http.MethodPost, "/stores", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeMap(t, w)
	assert.Contains(t, body, "address")
	assert.Contains(t, body, "is_active")

	w = doJSON(t, http.MethodPost, "/stores", token, gin.H{
		"store_type": "Karaoke",
		"address":    "Someplace",
		"is_active":  true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeMap(t, w)
	assert.Contains(t, body, "store_type")
	assert.NotContains(t, body, "address")
}

func TestStorePut(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/stores", token, gin.H{
		"name":       "Lounge Aoi",
		"store_type": "Bar",
		"address":    "Shinjuku 2-1-1",
		"is_active":  true,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeMap(t, created)["id"].(string)

	updated := doJSON(t, http.MethodPut, "/stores/"+id, token, gin.H{
		"name":       "Lounge Akane",
		"store_type": "Host Club",
		"address":    "Roppongi 3-4-5",
		"is_active":  false,
	})
	require.Equal(t, http.StatusOK, updated.Code)

	store := decodeMap(t, updated)
	assert.Equal(t, id, store["id"])
	assert.Equal(t, "Lounge Akane", store["name"])
	assert.Equal(t, "Host Club", store["store_type"])
	assert.Equal(t, false, store["is_active"])
}

func TestStorePatchKeepsOmittedFields(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/stores", token, gin.H{
		"name":       "Lounge Aoi",
		"store_type": "Bar",
		"address":    "Shinjuku 2-1-1",
		"is_active":  true,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeMap(t, created)["id"].(string)

	patched := doJSON(t, http.MethodPatch, "/stores/"+id, token, gin.H{
		"address": "Shinjuku 5-6-7",
	})
	require.Equal(t, http.StatusOK, patched.Code)

	got := decodeMap(t, doJSON(t, http.MethodGet, "/stores/"+id, token, nil))
	assert.Equal(t, "Shinjuku 5-6-7", got["address"])
	assert.Equal(t, "Lounge Aoi", got["name"])
	assert.Equal(t, "Bar", got["store_type"])
	assert.Equal(t, true, got["is_active"])
}

func TestStoreDeleteThen404(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	created := doJSON(t, http.MethodPost, "/stores", token, gin.H{
		"address":   "Shinjuku 2-1-1",
		"is_active": true,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeMap(t, created)["id"].(string)

	del := doJSON(t, http.MethodDelete, "/stores/"+id, token, nil)
	require.Equal(t, http.StatusNoContent, del.Code)

	got := doJSON(t, http.MethodGet, "/stores/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, got.Code)
	assert.Equal(t, "Not found.", decodeMap(t, got)["detail"])

	again := doJSON(t, http.MethodDelete, "/stores/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestStoreUnknownId404(t *testing.T) {
	resetDB(t)
	token := authedToken(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := doJSON(t, method, "/stores/"+uuid.NewString(), token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}

	w := doJSON(t, http.MethodPut, "/stores/"+uuid.NewString(), token, gin.H{
		"address":   "Nowhere",
		"is_active": true,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, http.MethodPatch, "/stores/"+uuid.NewString(), token, gin.H{
		"address": "Nowhere",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
