package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]string{"id": "p-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decode(t, w)
	assert.Len(t, body, 2)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{"id": "p-1"}, body["data"])
}

func TestHandleError_InsufficientPermissions(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("%w: required 'backup.export'", user.ErrInsufficientPermissions))

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "FORBIDDEN", detail["code"])
	assert.Contains(t, detail["message"], "backup.export")
}

func TestHandleError_Unknown(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, errors.New("socket closed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
