package middleware

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yongsanfmc/instructor-directory/internal/app/models/dto"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation", apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{"wrapped validation", fmt.Errorf("%w: missing name", apperrors.ErrValidationFailed), 400, dto.ErrorCodeValidationFailed},
		{"credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"revoked token", apperrors.ErrTokenRevoked, 401, dto.ErrorCodeInvalidToken},
		{"permission", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"not found", apperrors.ErrResourceNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"write failure", apperrors.ErrStoreWriteFailed, 502, dto.ErrorCodeStoreWrite},
		// Read-side store failure carries its own code so clients can
		// tell it apart from a failed write
		{"read failure", apperrors.ErrStoreUnavailable, 502, dto.ErrorCodeStoreUnavailable},
		{"unknown", fmt.Errorf("something else"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.False(t, resp.Success)
		})
	}
}
