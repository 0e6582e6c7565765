package github

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v58/github"

	"github-migrator/internal/domain/entity"
)

// classify wraps err into an entity.APIError carrying its kind
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	apiErr := &entity.APIError{Op: op, Kind: entity.KindOther, Err: err}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		apiErr.StatusCode = errResp.Response.StatusCode
		switch {
		case errResp.Response.StatusCode == http.StatusNotFound:
			apiErr.Kind = entity.KindNotFound
		case errResp.Response.StatusCode == http.StatusConflict:
			apiErr.Kind = entity.KindConflict
		case errResp.Response.StatusCode == http.StatusUnprocessableEntity && alreadyExists(errResp):
			apiErr.Kind = entity.KindConflict
		}
		return apiErr
	}

	// GraphQL reports missing nodes in the response body rather than with a status code
	if strings.Contains(err.Error(), "Could not resolve to") {
		apiErr.Kind = entity.KindNotFound
	}
	return apiErr
}

func alreadyExists(errResp *github.ErrorResponse) bool {
	for _, e := range errResp.Errors {
		if e.Code == "already_exists" {
			return true
		}
	}
	return false
}

func notFound(op, what string) error {
	return &entity.APIError{Op: op, Kind: entity.KindNotFound, Err: errors.New(what + " not found")}
}
