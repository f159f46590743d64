package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
	"github.com/salaoflow/booking-service/internal/integrations/appointmentservice"
	"github.com/salaoflow/booking-service/internal/service/identity"
	"github.com/salaoflow/booking-service/pkg/ptr"
)

// Сообщение об ошибке для клиента, когда хранилище записей недоступно
const userMsgCommitFailed = "Não foi possível concluir o agendamento. Tente novamente."

// UseCase use case подтверждения записи
type UseCase struct {
	sessionStore      SessionStore
	identityResolver  IdentityResolver
	appointmentClient AppointmentServiceClient
	catalog           Catalog
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionStore SessionStore,
	identityResolver IdentityResolver,
	appointmentClient AppointmentServiceClient,
	catalog Catalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionStore:      sessionStore,
		identityResolver:  identityResolver,
		appointmentClient: appointmentClient,
		catalog:           catalog,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute выполняет use case подтверждения записи.
// Личность клиента определяется до отправки commit и его результат
// дожидается синхронно; ответ со старым поколением сессии отбрасывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session=%s", req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем сессию
	session, err := uc.sessionStore.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	// 3. Подтверждать можно только с чекаута
	if session.Step != domain.StepCheckout {
		uc.logger.Warn("ConfirmBooking: session=%s at step %s", session.ID, session.Step)
		return nil, ErrWrongStep
	}

	// 4. Защита от двойного подтверждения
	if session.Submitting {
		uc.logger.Warn("ConfirmBooking: session=%s already submitting", session.ID)
		return nil, ErrAlreadySubmitting
	}

	// 5. Черновик проверяется до любых сетевых вызовов
	if !session.Draft.IsComplete() {
		uc.logger.Warn("ConfirmBooking: session=%s draft incomplete, missing %v", session.ID, session.Draft.MissingFields())
		return nil, fmt.Errorf("%w: missing %v", ErrIncompleteDraft, session.Draft.MissingFields())
	}

	// 6. Помечаем commit в полете и запоминаем поколение
	generation := session.Generation
	session.Submitting = true
	session.UpdatedAt = uc.timeProvider.Now()
	if err := uc.sessionStore.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	// 7. Определяем личность клиента (дожидаемся до commit)
	customer, err := uc.identityResolver.Resolve(ctx, req.CustomerName, req.CustomerPhone, session.Customer)
	if err != nil {
		uc.releaseSubmitting(ctx, session)
		if errors.Is(err, identity.ErrMissingContactInfo) {
			uc.logger.Warn("ConfirmBooking: session=%s has no contact info", session.ID)
			return nil, ErrMissingContactInfo
		}
		return nil, fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
	}

	// 8. Отправляем запись в хранилище
	commitReq := &appointmentservice.CreateAppointmentRequest{
		CustomerID:      customer.ID,
		ServiceID:       session.Draft.ServiceID,
		ProfessionalID:  session.Draft.ProfessionalID,
		AppointmentDate: session.Draft.Date,
		AppointmentTime: session.Draft.Time.String(),
	}
	if customer.Name != "" {
		commitReq.CustomerName = ptr.Ptr(customer.Name)
	}
	if customer.Phone != "" {
		commitReq.CustomerPhone = ptr.Ptr(customer.Phone)
	}

	result, commitErr := uc.appointmentClient.CreateAppointment(ctx, commitReq)

	// 9. Перечитываем сессию: за время commit пользователь мог уйти с чекаута
	session, err = uc.sessionStore.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			uc.logger.Warn("ConfirmBooking: session=%s gone during commit, result discarded", req.SessionID)
			return nil, ErrSuperseded
		}
		return nil, fmt.Errorf("%w: failed to reload session: %v", ErrInternal, err)
	}
	if session.Generation != generation {
		uc.logger.Warn("ConfirmBooking: session=%s navigated during commit (generation %d -> %d), result discarded",
			session.ID, generation, session.Generation)
		return nil, ErrSuperseded
	}

	// 10. Применяем исход
	now := uc.timeProvider.Now()
	session.Submitting = false
	session.Customer = customer
	session.UpdatedAt = now

	if commitErr != nil || !result.Success {
		if commitErr != nil {
			uc.logger.Error("ConfirmBooking: session=%s commit failed: %v", session.ID, commitErr)
			session.FailureReason = userMsgCommitFailed
		} else {
			uc.logger.Warn("ConfirmBooking: session=%s rejected: %s", session.ID, result.Error)
			session.FailureReason = result.Error
			if session.FailureReason == "" {
				session.FailureReason = userMsgCommitFailed
			}
		}
		// Черновик сохраняется для повторной попытки
		session.Step = domain.StepFailure
		if err := uc.sessionStore.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
		}
		return &Response{Session: session}, nil
	}

	// 11. Успех: собираем подтверждение и завершаем флоу
	session.Confirmation = uc.buildConfirmation(ctx, session, customer, result.AppointmentID)
	session.Step = domain.StepSuccess
	session.FailureReason = ""
	session.Draft.Reset()
	session.Category = ""

	if err := uc.sessionStore.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: session=%s confirmed, appointment=%s", session.ID, result.AppointmentID)
	return &Response{Session: session}, nil
}

// buildConfirmation денормализует запись в читаемое подтверждение
func (uc *UseCase) buildConfirmation(ctx context.Context, session *domain.BookingSession, customer *domain.CustomerIdentity, appointmentID string) *domain.AppointmentConfirmation {
	confirmation := &domain.AppointmentConfirmation{
		AppointmentID: appointmentID,
		Time:          session.Draft.Time.String(),
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
	}

	if service, err := uc.catalog.FindService(ctx, session.Draft.ServiceID); err == nil {
		confirmation.ServiceName = service.Name
	}
	if professional, err := uc.catalog.FindProfessional(ctx, session.Draft.ProfessionalID); err == nil {
		confirmation.ProfessionalName = professional.Name
	}

	if parsed, err := time.Parse(domain.DateFormat, session.Draft.Date); err == nil {
		confirmation.Date = parsed.Format(domain.DisplayDateFormat)
	} else {
		confirmation.Date = session.Draft.Date
	}

	return confirmation
}

// releaseSubmitting снимает флаг commit в полете после ошибки подготовки
func (uc *UseCase) releaseSubmitting(ctx context.Context, session *domain.BookingSession) {
	session.Submitting = false
	session.UpdatedAt = uc.timeProvider.Now()
	if err := uc.sessionStore.Save(ctx, session); err != nil {
		uc.logger.Error("ConfirmBooking: session=%s failed to release submitting flag: %v", session.ID, err)
	}
}
