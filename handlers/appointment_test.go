package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"egarage/models"
	"egarage/utils"

	"github.com/gin-gonic/gin"
)

type stubBookingService struct {
	bookResp     *models.BookingResponse
	bookErr      error
	confirmResp  *models.Appointment
	confirmErr   error
	revenue      *models.RevenueReport
	appointments []models.Appointment
	listErr      error
}

func (s *stubBookingService) Book(accountID string, req models.BookingRequest) (*models.BookingResponse, error) {
	return s.bookResp, s.bookErr
}

func (s *stubBookingService) ConfirmPayment(accountID, appointmentID, transactionID string) (*models.Appointment, error) {
	return s.confirmResp, s.confirmErr
}

func (s *stubBookingService) Transition(actorID string, role models.Role, appointmentID string, next models.AppointmentStatus) (*models.Appointment, error) {
	return s.confirmResp, s.confirmErr
}

func (s *stubBookingService) ListForCustomer(accountID string) ([]models.Appointment, error) {
	return s.appointments, s.listErr
}

func (s *stubBookingService) ListForProvider(accountID string) ([]models.Appointment, error) {
	return s.appointments, s.listErr
}

func (s *stubBookingService) ListAll() ([]models.Appointment, error) {
	return s.appointments, s.listErr
}

func (s *stubBookingService) TotalRevenue() (*models.RevenueReport, error) {
	return s.revenue, s.listErr
}

func (s *stubBookingService) ExpirePendingPayment(appointmentID string) error { return nil }

func newAppointmentRouter(svc *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &AppointmentHandler{Service: svc}
	r := gin.New()
	identity := func(c *gin.Context) {
		c.Set("accountID", "cust-1")
		c.Set("role", models.RoleCustomer)
	}
	r.POST("/appointment/book", identity, h.Book)
	r.POST("/appointment/:id/payment/confirm", identity, h.ConfirmPayment)
	r.GET("/appointment/total-revenue", h.TotalRevenue)
	r.GET("/appointment/user", identity, h.ListOwn)
	return r
}

func TestBookHandler(t *testing.T) {
	appt := &models.Appointment{ID: "appt-1", Status: models.StatusPendingPayment, Amount: 898}
	svc := &stubBookingService{
		bookResp: &models.BookingResponse{
			Appointment: appt,
			Payment:     &models.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 898, Currency: "inr"},
		},
	}

	body := `{"fullName":"Asha Patel","phoneNumber":"9876543210","vehicle":"Swift","preferredDate":"2026-09-15","preferredTime":"10:30","serviceProviderId":"prov-1","services":["Oil Change","Battery Service"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointment/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newAppointmentRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	var resp models.BookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Appointment.Status != models.StatusPendingPayment {
		t.Errorf("status = %s, want pending_payment", resp.Appointment.Status)
	}
	if resp.Payment == nil || resp.Payment.ClientSecret == "" {
		t.Error("expected payment intent with client secret in response")
	}
}

func TestBookHandlerMalformedBody(t *testing.T) {
	svc := &stubBookingService{}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointment/book", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	newAppointmentRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBookHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", utils.NewValidationError("services", "unknown service: Paint Job"), http.StatusBadRequest},
		{"unknown provider", utils.NewNotFoundError("provider not found"), http.StatusNotFound},
		{"conflict", utils.NewConflictError("duplicate"), http.StatusConflict},
		{"forbidden", utils.NewForbiddenError("nope"), http.StatusForbidden},
	}

	body := `{"fullName":"A","phoneNumber":"1","vehicle":"V","preferredDate":"2026-09-15","preferredTime":"10:30","serviceProviderId":"p","services":["Other"]}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBookingService{bookErr: tt.err}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/appointment/book", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			newAppointmentRouter(svc).ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestConfirmPaymentHandler(t *testing.T) {
	svc := &stubBookingService{
		confirmResp: &models.Appointment{ID: "appt-1", Status: models.StatusPending, PaymentRef: "pi_1"},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointment/appt-1/payment/confirm",
		strings.NewReader(`{"transactionId":"pi_1"}`))
	req.Header.Set("Content-Type", "application/json")
	newAppointmentRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var appt models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
}

func TestTotalRevenueHandler(t *testing.T) {
	svc := &stubBookingService{
		revenue: &models.RevenueReport{TotalRevenue: 1797, TotalAppointments: 2},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointment/total-revenue", nil)
	newAppointmentRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var report models.RevenueReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if report.TotalRevenue != 1797 || report.TotalAppointments != 2 {
		t.Errorf("report = %+v", report)
	}
}

func TestListOwnHandlerEmpty(t *testing.T) {
	svc := &stubBookingService{appointments: []models.Appointment{}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointment/user", nil)
	newAppointmentRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
