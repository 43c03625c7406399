package api

import (
	"net/http"

	models "github.com/skyfarer/flightbook/internal"
	"github.com/skyfarer/flightbook/internal/ports"
	"github.com/skyfarer/flightbook/internal/utils"
	"github.com/skyfarer/flightbook/internal/validator"
)

func CreateUserHandler(service ports.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}

		user, err := service.CreateUser(r.Context(), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, user)
	}
}

func GetUserHandler(service ports.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "user_id")
		if !ok {
			return
		}
		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, user)
	}
}
