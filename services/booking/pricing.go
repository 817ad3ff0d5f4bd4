package booking

import (
	"egarage/models"
	"egarage/utils"
)

// ServiceCatalogue is the fixed service-to-price table. Prices are resolved
// server-side at booking time; a client-sent amount is never trusted.
var ServiceCatalogue = map[string]float64{
	"Oil Change":           299,
	"Engine Repair":        2499,
	"Brake Service":        899,
	"Battery Service":      599,
	"AC Repair":            1499,
	"Diagnostics":          699,
	"Transmission Service": 3999,
	"Tire Service":         799,
	"Other":                999,
}

// ResolveServices maps selected service names to priced line items and
// computes the total amount.
func ResolveServices(names []string) ([]models.ServiceItem, float64, error) {
	if len(names) == 0 {
		return nil, 0, utils.NewValidationError("services", "at least one service must be selected")
	}

	items := make([]models.ServiceItem, 0, len(names))
	var total float64
	for _, name := range names {
		price, ok := ServiceCatalogue[name]
		if !ok {
			return nil, 0, utils.NewValidationError("services", "unknown service: "+name)
		}
		items = append(items, models.ServiceItem{Name: name, Price: price})
		total += price
	}
	return items, total, nil
}
