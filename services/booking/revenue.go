package booking

import "egarage/models"

// TotalRevenue walks the whole ledger and sums every line-item price. The
// aggregate is recomputed on every call; nothing is cached or persisted.
func (s *DefaultBookingService) TotalRevenue() (*models.RevenueReport, error) {
	appointments, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}

	report := models.RevenueReport{TotalAppointments: len(appointments)}
	for _, appt := range appointments {
		for _, item := range appt.ServiceType {
			report.TotalRevenue += item.Price
		}
	}
	return &report, nil
}
