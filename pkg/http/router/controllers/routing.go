package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/pthyseba/astar/pkg/datastructure"
	helper "github.com/pthyseba/astar/pkg/http/router/routerhelper"
	"github.com/pthyseba/astar/pkg/http/usecases"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &routingAPI{
		routingService: routingService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoute", api.computeRoute)
}

func (api *routingAPI) computeRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := computeRouteRequest{
		Origin:         query.Get("origin"),
		Destination:    query.Get("destination"),
		MaxHopDistance: query.Get("max_hop_distance"),
		DepartureTime:  query.Get("departure_time"),
		Trace:          query.Get("trace"),
	}

	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	var (
		routeRequest usecases.RouteRequest
		err          error
	)

	routeRequest.Origin, err = datastructure.ParseIndex(request.Origin)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("origin must be a valid node id: %w", err))
		return
	}
	routeRequest.Destination, err = datastructure.ParseIndex(request.Destination)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("destination must be a valid node id: %w", err))
		return
	}
	if request.MaxHopDistance != "" {
		maxHopDistance, err := strconv.ParseUint(request.MaxHopDistance, 10, 64)
		if err != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("max_hop_distance must be a non-negative integer: %w", err))
			return
		}
		routeRequest.MaxHopDistance = &maxHopDistance
	}
	if request.DepartureTime != "" {
		routeRequest.Departure, err = time.Parse(time.RFC3339, request.DepartureTime)
		if err != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("departure_time must be RFC3339: %w", err))
			return
		}
	}
	if request.Trace != "" {
		routeRequest.Trace, err = strconv.ParseBool(request.Trace)
		if err != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("trace must be a boolean: %w", err))
			return
		}
	}

	resp, err := api.routingService.ShortestPath(routeRequest)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComputeRouteResponse(resp)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
