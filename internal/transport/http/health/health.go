package health

import (
	"encoding/json"
	"net/http"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
	"github.com/Ckopin0130/PrintManage-sub000/pkg/logger"
)

// HealthReader exposes one collection's subscription state.
type HealthReader interface {
	Health() model.Health
}

type response struct {
	Status      string                  `json:"status"`
	Collections map[string]model.Health `json:"collections"`
}

// Handler reports the coarse connectivity indicator: online only when
// every collection's subscription is online.
func Handler(customers, records, inventory HealthReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := response{
			Collections: map[string]model.Health{
				"customers": customers.Health(),
				"records":   records.Health(),
				"inventory": inventory.Health(),
			},
		}

		res.Status = string(model.HealthOnline)
		for _, h := range res.Collections {
			if h != model.HealthOnline {
				res.Status = string(h)
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
