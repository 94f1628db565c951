package peopleapi

import (
	"errors"
	"net"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

// wrapError normalises a People API failure so the core can classify
// it: quota rejections become domain.ErrRateLimited, server and
// network faults become domain.ErrTransient, everything else passes
// through unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusTooManyRequests:
			return errors.Join(domain.ErrRateLimited, err)
		case gerr.Code >= http.StatusInternalServerError:
			return errors.Join(domain.ErrTransient, err)
		case gerr.Code == http.StatusUnauthorized:
			return errors.Join(domain.ErrAuthentication, err)
		}
		return err
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return errors.Join(domain.ErrTransient, err)
	}
	return err
}

// IsNotFound reports whether the error is a 404 from the API.
func IsNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
