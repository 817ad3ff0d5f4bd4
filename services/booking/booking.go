package booking

import (
	"context"
	"time"

	appointmentRepo "egarage/database/repository/appointment"
	providerRepo "egarage/database/repository/provider"
	"egarage/models"
	"egarage/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentCurrency is the currency of all payment sessions.
const PaymentCurrency = "inr"

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo       appointmentRepo.AppointmentRepository
	Providers  providerRepo.ProviderRepository
	Gateway    PaymentGateway
	Scheduler  ExpiryScheduler
	PaymentTTL time.Duration
}

// Book validates the request, resolves line-item prices from the catalogue,
// persists the appointment in pending_payment and opens the payment session.
// The appointment is created exactly once; confirmation is a separate step.
func (s *DefaultBookingService) Book(accountID string, req models.BookingRequest) (*models.BookingResponse, error) {
	switch {
	case req.FullName == "":
		return nil, utils.NewValidationError("fullName", "full name is required")
	case req.PhoneNumber == "":
		return nil, utils.NewValidationError("phoneNumber", "phone number is required")
	case req.Vehicle == "":
		return nil, utils.NewValidationError("vehicle", "vehicle is required")
	case req.ServiceProviderID == "":
		return nil, utils.NewValidationError("serviceProviderId", "service provider is required")
	case req.PreferredTime == "":
		return nil, utils.NewValidationError("preferredTime", "preferred time is required")
	}
	if _, err := time.Parse("2006-01-02", req.PreferredDate); err != nil {
		return nil, utils.NewValidationError("preferredDate", "preferred date must be YYYY-MM-DD")
	}

	items, amount, err := ResolveServices(req.Services)
	if err != nil {
		return nil, err
	}

	provider, err := s.Providers.GetByID(req.ServiceProviderID)
	if err != nil {
		return nil, err
	}

	appt := models.Appointment{
		ID:                    uuid.New().String(),
		FullName:              req.FullName,
		PhoneNumber:           req.PhoneNumber,
		Email:                 req.Email,
		Vehicle:               req.Vehicle,
		PreferredDate:         req.PreferredDate,
		PreferredTime:         req.PreferredTime,
		ProviderID:            provider.ID,
		AdditionalInformation: req.AdditionalInformation,
		ServiceType:           items,
		Amount:                amount,
		Status:                models.StatusPendingPayment,
		UserID:                accountID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	intent, err := s.Gateway.CreateIntent(ctx, amount, PaymentCurrency, map[string]string{
		"appointmentId": appt.ID,
		"providerId":    provider.ID,
	})
	if err != nil {
		return nil, err
	}
	appt.PaymentIntentID = intent.ID

	if err := s.Repo.Create(&appt); err != nil {
		return nil, err
	}

	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleExpiry(appt.ID, s.PaymentTTL); err != nil {
			// The appointment stands; it just won't be garbage-collected.
			utils.GetLogger().Warn("failed to schedule payment expiry",
				zap.String("appointment", appt.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("appointment", appt.ID),
		zap.String("provider", provider.ID),
		zap.Float64("amount", amount))

	return &models.BookingResponse{Appointment: &appt, Payment: intent}, nil
}

// ConfirmPayment records the payment provider's success callback. The
// transaction reference must match the session opened at booking time.
func (s *DefaultBookingService) ConfirmPayment(accountID, appointmentID, transactionID string) (*models.Appointment, error) {
	if transactionID == "" {
		return nil, utils.NewValidationError("transactionId", "transaction id is required")
	}

	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != accountID {
		return nil, utils.NewForbiddenError("only the booking account may confirm this payment")
	}
	if appt.Status != models.StatusPendingPayment {
		return nil, utils.NewConflictError("appointment is not awaiting payment")
	}
	if transactionID != appt.PaymentIntentID {
		return nil, utils.NewValidationError("transactionId", "transaction id does not match the payment session")
	}

	if err := appt.Transition(models.StatusPending); err != nil {
		return nil, utils.NewConflictError(err.Error())
	}
	appt.PaymentRef = transactionID

	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment confirmed", zap.String("appointment", appt.ID))
	return appt, nil
}

// Transition applies a status change on behalf of an actor. Customers may
// only cancel their own appointments; the owning provider may confirm,
// complete or cancel; admins may apply any legal transition.
func (s *DefaultBookingService) Transition(actorID string, role models.Role, appointmentID string, next models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}

	switch role {
	case models.RoleCustomer:
		if appt.UserID != actorID {
			return nil, utils.NewForbiddenError("not your appointment")
		}
		if next != models.StatusCancelled {
			return nil, utils.NewForbiddenError("customers may only cancel appointments")
		}
	case models.RoleServiceProvider:
		prov, err := s.Providers.GetByUserID(actorID)
		if err != nil {
			return nil, err
		}
		if prov == nil || prov.ID != appt.ProviderID {
			return nil, utils.NewForbiddenError("appointment belongs to another provider")
		}
	case models.RoleAdmin:
		// Any legal transition.
	default:
		return nil, utils.NewForbiddenError("role not permitted")
	}

	if err := appt.Transition(next); err != nil {
		return nil, utils.NewConflictError(err.Error())
	}
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("appointment status changed",
		zap.String("appointment", appt.ID),
		zap.String("status", string(next)))
	return appt, nil
}

// ListForCustomer returns the appointments booked by the account.
func (s *DefaultBookingService) ListForCustomer(accountID string) ([]models.Appointment, error) {
	return s.Repo.ListByUser(accountID)
}

// ListForProvider resolves the account's provider profile and returns its
// incoming appointments, ordered by preferred date ascending.
func (s *DefaultBookingService) ListForProvider(accountID string) ([]models.Appointment, error) {
	prov, err := s.Providers.GetByUserID(accountID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, utils.NewNotFoundError("no provider profile for this account")
	}
	return s.Repo.ListByProvider(prov.ID)
}

// ListAll returns the full ledger.
func (s *DefaultBookingService) ListAll() ([]models.Appointment, error) {
	return s.Repo.ListAll()
}

// ExpirePendingPayment cancels an appointment still awaiting payment. Safe
// to call after the payment was confirmed; it then does nothing.
func (s *DefaultBookingService) ExpirePendingPayment(appointmentID string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if appt.Status != models.StatusPendingPayment {
		return nil
	}
	if err := appt.Transition(models.StatusCancelled); err != nil {
		return err
	}
	if err := s.Repo.Update(appt); err != nil {
		return err
	}
	utils.GetLogger().Info("unpaid appointment expired", zap.String("appointment", appt.ID))
	return nil
}
