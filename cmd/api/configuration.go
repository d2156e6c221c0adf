package main

import (
	"net/http"

	"cardlink/internal/connector"
)

type checkPayload struct {
	Contract contractPayload `json:"contract"`
	Sandbox  bool            `json:"sandbox"`
	Locale   string          `json:"locale"`
}

func (app *application) parametersHandler(w http.ResponseWriter, r *http.Request) {
	params := app.connector.GetParameters(r.URL.Query().Get("locale"))
	if err := app.jsonResponse(w, http.StatusOK, params); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) nameHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"name": app.connector.GetName(r.URL.Query().Get("locale")),
	}
	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) checkConfigurationHandler(w http.ResponseWriter, r *http.Request) {
	var payload checkPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	fieldErrors := app.connector.CheckConfiguration(r.Context(), connector.CheckRequest{
		Contract: payload.Contract.toContract(),
		Sandbox:  payload.Sandbox,
		Locale:   payload.Locale,
	})

	data := map[string]any{
		"valid":  len(fieldErrors) == 0,
		"errors": fieldErrors,
	}
	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
