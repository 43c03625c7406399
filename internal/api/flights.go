package api

import (
	"net/http"
	"net/url"

	models "github.com/skyfarer/flightbook/internal"
	"github.com/skyfarer/flightbook/internal/ports"
	"github.com/skyfarer/flightbook/internal/utils"
)

func SearchFlightsHandler(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, ae := parseFlightSearch(r.URL.Query())
		if ae != nil {
			utils.RenderResponse(r, w, ae.StatusCode, *ae)
			return
		}

		flights, err := service.SearchFlights(r.Context(), search)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, flights)
	}
}

func GetFlightHandler(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "flight_id")
		if !ok {
			return
		}
		flight, err := service.GetFlight(r.Context(), id)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, flight)
	}
}

func parseFlightSearch(q url.Values) (models.FlightSearch, *utils.ApiError) {
	var search models.FlightSearch

	for _, name := range []string{"departure_city", "arrival_city", "departure_date"} {
		if q.Get(name) == "" {
			ae := utils.NewBadRequest("missing required parameter: " + name)
			return search, &ae
		}
	}

	search.DepartureCity = q.Get("departure_city")
	search.ArrivalCity = q.Get("arrival_city")
	search.TravelClass = q.Get("travel_class")

	departureDate, err := models.ParseDate(q.Get("departure_date"))
	if err != nil {
		ae := utils.NewBadRequest("invalid departure_date")
		return search, &ae
	}
	search.DepartureDate = departureDate

	// return_date is validated when present but does not narrow the search.
	if v := q.Get("return_date"); v != "" {
		returnDate, err := models.ParseDate(v)
		if err != nil {
			ae := utils.NewBadRequest("invalid return_date")
			return search, &ae
		}
		search.ReturnDate = &returnDate
	}

	return search, nil
}
