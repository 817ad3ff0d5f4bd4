package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"egarage/models"
	"egarage/utils"
)

type mockAppointmentRepo struct {
	appointments map[string]*models.Appointment
	created      int
	updated      int
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[string]*models.Appointment)}
}

func (m *mockAppointmentRepo) Create(a *models.Appointment) error {
	m.created++
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, utils.NewNotFoundError("appointment not found")
	}
	cp := *a
	return &cp, nil
}

func (m *mockAppointmentRepo) Update(a *models.Appointment) error {
	m.updated++
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListByProvider(providerID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.ProviderID == providerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListAll() ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		out = append(out, *a)
	}
	return out, nil
}

type mockProviderRepo struct {
	providers map[string]*models.Provider
}

func newMockProviderRepo(providers ...*models.Provider) *mockProviderRepo {
	m := &mockProviderRepo{providers: make(map[string]*models.Provider)}
	for _, p := range providers {
		m.providers[p.ID] = p
	}
	return m
}

func (m *mockProviderRepo) Create(p *models.Provider) error {
	m.providers[p.ID] = p
	return nil
}

func (m *mockProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := m.providers[id]
	if !ok {
		return nil, utils.NewNotFoundError("provider not found")
	}
	return p, nil
}

func (m *mockProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	for _, p := range m.providers {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	for _, p := range m.providers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProviderRepo) List(filter models.ProviderFilter) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range m.providers {
		out = append(out, *p)
	}
	return out, nil
}

type fakeGateway struct {
	intents int
	fail    bool
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*models.PaymentIntent, error) {
	if g.fail {
		return nil, errors.New("gateway unavailable")
	}
	g.intents++
	return &models.PaymentIntent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Amount:       amount,
		Currency:     currency,
	}, nil
}

type fakeScheduler struct {
	scheduled []string
}

func (s *fakeScheduler) ScheduleExpiry(appointmentID string, in time.Duration) error {
	s.scheduled = append(s.scheduled, appointmentID)
	return nil
}

func validBookingRequest() models.BookingRequest {
	return models.BookingRequest{
		FullName:          "Asha Patel",
		PhoneNumber:       "9876543210",
		Email:             "asha@example.com",
		Vehicle:           "Maruti Swift 2021",
		PreferredDate:     "2026-09-15",
		PreferredTime:     "10:30",
		ServiceProviderID: "prov-1",
		Services:          []string{"Oil Change", "Battery Service"},
	}
}

func newTestService(repo *mockAppointmentRepo, providers *mockProviderRepo, gw PaymentGateway, sched ExpiryScheduler) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:       repo,
		Providers:  providers,
		Gateway:    gw,
		Scheduler:  sched,
		PaymentTTL: 30 * time.Minute,
	}
}

func TestBookPersistsPendingPaymentWithComputedAmount(t *testing.T) {
	repo := newMockAppointmentRepo()
	providers := newMockProviderRepo(&models.Provider{ID: "prov-1", UserID: "prov-acct", Email: "garage@example.com"})
	gw := &fakeGateway{}
	sched := &fakeScheduler{}
	svc := newTestService(repo, providers, gw, sched)

	resp, err := svc.Book("cust-1", validBookingRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if resp.Appointment.Status != models.StatusPendingPayment {
		t.Errorf("status = %s, want %s", resp.Appointment.Status, models.StatusPendingPayment)
	}
	if resp.Appointment.Amount != 898 {
		t.Errorf("amount = %v, want 898", resp.Appointment.Amount)
	}
	if resp.Appointment.UserID != "cust-1" {
		t.Errorf("userID = %s, want cust-1", resp.Appointment.UserID)
	}
	if resp.Payment == nil || resp.Payment.ID == "" {
		t.Error("expected a payment intent in the response")
	}
	if repo.created != 1 {
		t.Errorf("created = %d appointments, want 1", repo.created)
	}
	if len(sched.scheduled) != 1 {
		t.Errorf("scheduled = %d expiries, want 1", len(sched.scheduled))
	}
}

func TestBookIgnoresClientSuppliedAmount(t *testing.T) {
	repo := newMockAppointmentRepo()
	providers := newMockProviderRepo(&models.Provider{ID: "prov-1"})
	svc := newTestService(repo, providers, &fakeGateway{}, &fakeScheduler{})

	req := validBookingRequest()
	req.Services = []string{"Diagnostics"}

	resp, err := svc.Book("cust-1", req)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if resp.Appointment.Amount != 699 {
		t.Errorf("amount = %v, want catalogue price 699", resp.Appointment.Amount)
	}
}

func TestBookUnknownProviderPersistsNothing(t *testing.T) {
	repo := newMockAppointmentRepo()
	providers := newMockProviderRepo()
	svc := newTestService(repo, providers, &fakeGateway{}, &fakeScheduler{})

	_, err := svc.Book("cust-1", validBookingRequest())
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	var nfe *utils.NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("error type = %T, want *utils.NotFoundError", err)
	}
	if repo.created != 0 {
		t.Errorf("created = %d appointments, want 0", repo.created)
	}
}

func TestBookGatewayFailurePersistsNothing(t *testing.T) {
	repo := newMockAppointmentRepo()
	providers := newMockProviderRepo(&models.Provider{ID: "prov-1"})
	svc := newTestService(repo, providers, &fakeGateway{fail: true}, &fakeScheduler{})

	if _, err := svc.Book("cust-1", validBookingRequest()); err == nil {
		t.Fatal("expected gateway error")
	}
	if repo.created != 0 {
		t.Errorf("created = %d appointments, want 0", repo.created)
	}
}

func TestBookRejectsBadDate(t *testing.T) {
	svc := newTestService(newMockAppointmentRepo(), newMockProviderRepo(), &fakeGateway{}, &fakeScheduler{})

	req := validBookingRequest()
	req.PreferredDate = "15-09-2026"

	_, err := svc.Book("cust-1", req)
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want validation error on preferredDate", err)
	}
}

func TestConfirmPayment(t *testing.T) {
	setup := func() (*DefaultBookingService, *mockAppointmentRepo, string) {
		repo := newMockAppointmentRepo()
		providers := newMockProviderRepo(&models.Provider{ID: "prov-1"})
		svc := newTestService(repo, providers, &fakeGateway{}, &fakeScheduler{})
		resp, err := svc.Book("cust-1", validBookingRequest())
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		return svc, repo, resp.Appointment.ID
	}

	t.Run("matching reference promotes to pending", func(t *testing.T) {
		svc, repo, id := setup()
		appt, err := svc.ConfirmPayment("cust-1", id, "pi_test_1")
		if err != nil {
			t.Fatalf("ConfirmPayment: %v", err)
		}
		if appt.Status != models.StatusPending {
			t.Errorf("status = %s, want %s", appt.Status, models.StatusPending)
		}
		if appt.PaymentRef != "pi_test_1" {
			t.Errorf("paymentRef = %q, want pi_test_1", appt.PaymentRef)
		}
		stored, _ := repo.GetByID(id)
		if stored.Status != models.StatusPending {
			t.Errorf("persisted status = %s, want %s", stored.Status, models.StatusPending)
		}
	})

	t.Run("wrong reference rejected", func(t *testing.T) {
		svc, _, id := setup()
		_, err := svc.ConfirmPayment("cust-1", id, "pi_other")
		var verr *utils.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want validation error", err)
		}
	})

	t.Run("another account rejected", func(t *testing.T) {
		svc, _, id := setup()
		_, err := svc.ConfirmPayment("cust-2", id, "pi_test_1")
		var aerr *utils.AuthError
		if !errors.As(err, &aerr) || !aerr.Forbidden {
			t.Fatalf("error = %v, want forbidden", err)
		}
	})

	t.Run("double confirmation conflicts", func(t *testing.T) {
		svc, _, id := setup()
		if _, err := svc.ConfirmPayment("cust-1", id, "pi_test_1"); err != nil {
			t.Fatalf("first ConfirmPayment: %v", err)
		}
		_, err := svc.ConfirmPayment("cust-1", id, "pi_test_1")
		var cerr *utils.ConflictError
		if !errors.As(err, &cerr) {
			t.Fatalf("error = %v, want conflict", err)
		}
	})
}

func TestTransitionRoleRules(t *testing.T) {
	setup := func(status models.AppointmentStatus) (*DefaultBookingService, string) {
		repo := newMockAppointmentRepo()
		providers := newMockProviderRepo(&models.Provider{ID: "prov-1", UserID: "prov-acct"})
		svc := newTestService(repo, providers, &fakeGateway{}, &fakeScheduler{})
		appt := &models.Appointment{
			ID:         "appt-1",
			UserID:     "cust-1",
			ProviderID: "prov-1",
			Status:     status,
		}
		if err := repo.Create(appt); err != nil {
			t.Fatalf("seed: %v", err)
		}
		return svc, appt.ID
	}

	t.Run("customer cancels own", func(t *testing.T) {
		svc, id := setup(models.StatusPending)
		appt, err := svc.Transition("cust-1", models.RoleCustomer, id, models.StatusCancelled)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if appt.Status != models.StatusCancelled {
			t.Errorf("status = %s, want cancelled", appt.Status)
		}
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		svc, id := setup(models.StatusPending)
		if _, err := svc.Transition("cust-1", models.RoleCustomer, id, models.StatusConfirmed); err == nil {
			t.Fatal("expected forbidden")
		}
	})

	t.Run("customer cannot touch others", func(t *testing.T) {
		svc, id := setup(models.StatusPending)
		if _, err := svc.Transition("cust-2", models.RoleCustomer, id, models.StatusCancelled); err == nil {
			t.Fatal("expected forbidden")
		}
	})

	t.Run("owning provider confirms", func(t *testing.T) {
		svc, id := setup(models.StatusPending)
		appt, err := svc.Transition("prov-acct", models.RoleServiceProvider, id, models.StatusConfirmed)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if appt.Status != models.StatusConfirmed {
			t.Errorf("status = %s, want confirmed", appt.Status)
		}
	})

	t.Run("foreign provider rejected", func(t *testing.T) {
		svc, id := setup(models.StatusPending)
		if _, err := svc.Transition("other-acct", models.RoleServiceProvider, id, models.StatusConfirmed); err == nil {
			t.Fatal("expected forbidden")
		}
	})

	t.Run("admin applies any legal transition", func(t *testing.T) {
		svc, id := setup(models.StatusConfirmed)
		appt, err := svc.Transition("admin-1", models.RoleAdmin, id, models.StatusCompleted)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if appt.Status != models.StatusCompleted {
			t.Errorf("status = %s, want completed", appt.Status)
		}
	})

	t.Run("admin cannot break the machine", func(t *testing.T) {
		svc, id := setup(models.StatusCompleted)
		_, err := svc.Transition("admin-1", models.RoleAdmin, id, models.StatusPending)
		var cerr *utils.ConflictError
		if !errors.As(err, &cerr) {
			t.Fatalf("error = %v, want conflict", err)
		}
	})
}

func TestExpirePendingPayment(t *testing.T) {
	repo := newMockAppointmentRepo()
	providers := newMockProviderRepo(&models.Provider{ID: "prov-1"})
	svc := newTestService(repo, providers, &fakeGateway{}, &fakeScheduler{})

	resp, err := svc.Book("cust-1", validBookingRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	id := resp.Appointment.ID

	if err := svc.ExpirePendingPayment(id); err != nil {
		t.Fatalf("ExpirePendingPayment: %v", err)
	}
	stored, _ := repo.GetByID(id)
	if stored.Status != models.StatusCancelled {
		t.Errorf("status = %s, want cancelled", stored.Status)
	}
}

func TestExpireIsNoOpAfterPayment(t *testing.T) {
	repo := newMockAppointmentRepo()
	providers := newMockProviderRepo(&models.Provider{ID: "prov-1"})
	svc := newTestService(repo, providers, &fakeGateway{}, &fakeScheduler{})

	resp, err := svc.Book("cust-1", validBookingRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	id := resp.Appointment.ID
	if _, err := svc.ConfirmPayment("cust-1", id, "pi_test_1"); err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}

	if err := svc.ExpirePendingPayment(id); err != nil {
		t.Fatalf("ExpirePendingPayment: %v", err)
	}
	stored, _ := repo.GetByID(id)
	if stored.Status != models.StatusPending {
		t.Errorf("status = %s, want pending (expiry must not touch paid appointments)", stored.Status)
	}
}

func TestTotalRevenue(t *testing.T) {
	repo := newMockAppointmentRepo()
	providers := newMockProviderRepo(&models.Provider{ID: "prov-1"})
	svc := newTestService(repo, providers, &fakeGateway{}, &fakeScheduler{})

	report, err := svc.TotalRevenue()
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if report.TotalRevenue != 0 || report.TotalAppointments != 0 {
		t.Errorf("empty ledger report = %+v, want zeros", report)
	}

	if _, err := svc.Book("cust-1", validBookingRequest()); err != nil {
		t.Fatalf("Book: %v", err)
	}

	report, err = svc.TotalRevenue()
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if report.TotalAppointments != 1 {
		t.Errorf("totalAppointments = %d, want 1", report.TotalAppointments)
	}
	if report.TotalRevenue != 898 {
		t.Errorf("totalRevenue = %v, want 898", report.TotalRevenue)
	}
}

func TestListForProviderRequiresProfile(t *testing.T) {
	svc := newTestService(newMockAppointmentRepo(), newMockProviderRepo(), &fakeGateway{}, &fakeScheduler{})

	_, err := svc.ListForProvider("no-profile-acct")
	var nfe *utils.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("error = %v, want not found", err)
	}
}
