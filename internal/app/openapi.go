package app

import (
	"net/http"

	"github.com/metinatakli/cinema-tickets/api"
)

var _ api.ServerInterface = (*Application)(nil)

func (app *Application) GetOpenApiSpec(w http.ResponseWriter, r *http.Request) {
	swagger, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
