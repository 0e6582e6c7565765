package github

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v58/github"
	"github.com/stretchr/testify/assert"

	"github-migrator/internal/domain/entity"
)

func errorResponse(status int, codes ...string) *github.ErrorResponse {
	resp := &github.ErrorResponse{
		Response: &http.Response{StatusCode: status},
		Message:  http.StatusText(status),
	}
	for _, code := range codes {
		resp.Errors = append(resp.Errors, github.Error{Resource: "Label", Code: code, Field: "name"})
	}
	return resp
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want entity.ErrorKind
	}{
		{"not found", errorResponse(http.StatusNotFound), entity.KindNotFound},
		{"conflict", errorResponse(http.StatusConflict), entity.KindConflict},
		{"label already exists", errorResponse(http.StatusUnprocessableEntity, "already_exists"), entity.KindConflict},
		{"other validation failure", errorResponse(http.StatusUnprocessableEntity, "invalid"), entity.KindOther},
		{"unauthorized", errorResponse(http.StatusUnauthorized), entity.KindOther},
		{"graphql missing node", errors.New("Could not resolve to a ProjectV2 with the number 3."), entity.KindNotFound},
		{"transport failure", errors.New("connection refused"), entity.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", tt.err)
			assert.Equal(t, tt.want, entity.KindOf(err))
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify("op", nil))
}
