package api

import (
	"net/http"

	"github.com/skyfarer/flightbook/internal/ports"
	"github.com/skyfarer/flightbook/internal/utils"
)

func ListFaresHandler(service ports.FareService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fares, err := service.ListFares(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, fares)
	}
}

func GetFareHandler(service ports.FareService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "fare_id")
		if !ok {
			return
		}
		fare, err := service.GetFare(r.Context(), id)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, fare)
	}
}
