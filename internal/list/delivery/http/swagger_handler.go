package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// AddItem godoc
// @Summary Add an item to a favorite list
// @Description Append an item id to the session user's list of the given kind
// @Tags Lists
// @Accept json
// @Produce json
// @Param request body object{kind=string,id=int} true "List kind (author/dergi/sayi) and item id"
// @Success 201 {object} object{message=string,kind=string,id=int}
// @Failure 400 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Failure 409 {object} object{message=string}
// @Router /lists [post]
func (h *ListHandler) AddItemDoc() {}

// RemoveItem godoc
// @Summary Remove an item from a favorite list
// @Description Remove an item id from the session user's list of the given kind
// @Tags Lists
// @Accept json
// @Produce json
// @Param request body object{kind=string,id=int} true "List kind and item id"
// @Success 200 {object} object{message=string,kind=string,id=int}
// @Failure 400 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /lists [delete]
func (h *ListHandler) RemoveItemDoc() {}

// GetList godoc
// @Summary Read a favorite list
// @Description Return the session user's item ids for the given kind
// @Tags Lists
// @Produce json
// @Param kind query string true "List kind (author/dergi/sayi)"
// @Success 200 {object} object{kind=string,data=[]int}
// @Failure 400 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Router /lists [get]
func (h *ListHandler) GetListDoc() {}
