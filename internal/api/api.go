package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	models "github.com/skyfarer/flightbook/internal"
	"github.com/skyfarer/flightbook/internal/utils"
)

func getApiError(err error) utils.ApiError {
	ae := utils.ApiError{Msg: err.Error()}
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrFlightNotFound),
		errors.Is(err, models.ErrFareNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrNoFlightsFound),
		errors.Is(err, models.ErrNoFaresFound):
		ae.StatusCode = http.StatusNotFound
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrNotEnoughSeats):
		ae.StatusCode = http.StatusBadRequest
	default:
		ae.StatusCode = http.StatusInternalServerError
	}
	return ae
}

// pathID parses the named path parameter as a UUID. A malformed id is a bad
// request, not a missing row.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		ae := utils.NewBadRequest("invalid " + name)
		utils.RenderResponse(r, w, ae.StatusCode, ae)
		return uuid.Nil, false
	}
	return id, true
}
