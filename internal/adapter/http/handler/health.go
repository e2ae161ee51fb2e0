package handler

import (
	"net/http"

	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
)

// ConnCounter reports how many websocket clients are connected.
type ConnCounter interface {
	Len() int
}

type Health struct {
	serviceName string
	version     string
	conns       ConnCounter
	log         logger.Logger
}

func NewHealth(serviceName, version string, conns ConnCounter, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		version:     version,
		conns:       conns,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	response := envelope{
		"status": "available",
		"system_info": map[string]string{
			"service-name": a.serviceName,
			"version":      a.version,
		},
	}
	if a.conns != nil {
		response["ws_connections"] = a.conns.Len()
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
