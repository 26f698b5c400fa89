package notifier

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// AttemptRepository определяет контракт журнала попыток доставки.
// Записи только добавляются, никогда не обновляются.
type AttemptRepository interface {
	SaveAttempt(ctx context.Context, attempt *models.NotificationAttempt) error
}

// SMSSender определяет контракт отправки SMS
type SMSSender interface {
	SendSMS(ctx context.Context, toPhone, body string) error
}

// EmailSender определяет контракт отправки email
type EmailSender interface {
	SendEmail(ctx context.Context, toAddr, subject, body string) error
}

// ExternalPublisher определяет контракт передачи тревоги внешней
// экстренной службе
type ExternalPublisher interface {
	Publish(ctx context.Context, event models.AlertEvent) error
}

// Dispatcher выполняет веерную рассылку уведомлений по тревоге.
// Ключевое свойство: отказы каналов изолированы попытка-от-попытки.
// Упавшая SMS контакту А не мешает ни email тому же контакту, ни любым
// попыткам контакту Б, ни уведомлению внешней службы.
type Dispatcher struct {
	attempts AttemptRepository
	sms      SMSSender
	email    EmailSender
	external ExternalPublisher
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewDispatcher(attempts AttemptRepository, sms SMSSender, email EmailSender, external ExternalPublisher, logger *logrus.Logger, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		attempts: attempts,
		sms:      sms,
		email:    email,
		external: external,
		logger:   logger,
		cfg:      cfg,
	}
}

// Dispatch рассылает уведомления по всем каналам всех контактов.
// Контакты обрабатываются в порядке возрастания priority; каналы одного
// контакта между собой не упорядочены и идут параллельно. Параллелизм
// ограничен пулом фиксированного размера, чтобы не упереться в лимиты
// внешних шлюзов. Ошибок не возвращает: каждый исход фиксируется
// записью NotificationAttempt и счетчиками итога.
func (d *Dispatcher) Dispatch(ctx context.Context, alert *models.Alert, contacts []*models.EmergencyContact, includeExternal bool) *models.DispatchSummary {
	log := d.logger.WithFields(logrus.Fields{
		"service":  "notifier",
		"alert_id": alert.ID,
		"contacts": len(contacts),
	})
	log.Info("Starting notification fan-out")

	ordered := make([]*models.EmergencyContact, len(contacts))
	copy(ordered, contacts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	summary := &models.DispatchSummary{AlertID: alert.ID}
	var mu sync.Mutex

	parallelism := d.cfg.DispatchParallelism
	if parallelism < 1 {
		// SetLimit(0) блокирует все g.Go навсегда
		parallelism = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	record := func(contactID int64, ch models.Channel, sendErr error) {
		attempt := &models.NotificationAttempt{
			AlertID:   alert.ID,
			ContactID: contactID,
			Channel:   ch,
			Status:    models.AttemptStatusSent,
			SentAt:    time.Now(),
		}
		if sendErr != nil {
			attempt.Status = models.AttemptStatusFailed
			attempt.Error = sendErr.Error()
		}
		if err := d.attempts.SaveAttempt(ctx, attempt); err != nil {
			log.WithError(err).Error("Failed to save notification attempt")
		}
		mu.Lock()
		summary.Add(ch, sendErr == nil)
		mu.Unlock()
	}

	body := alert.Message
	for _, contact := range ordered {
		contact := contact
		if contact.Phone != "" {
			g.Go(func() error {
				err := d.attemptSend(gctx, func(sendCtx context.Context) error {
					return d.sms.SendSMS(sendCtx, contact.Phone, body)
				})
				if err != nil {
					log.WithError(err).WithField("contact_id", contact.ID).Warn("SMS delivery failed")
				}
				record(contact.ID, models.ChannelSMS, err)
				return nil
			})
		}
		if contact.Email != "" {
			g.Go(func() error {
				err := d.attemptSend(gctx, func(sendCtx context.Context) error {
					return d.email.SendEmail(sendCtx, contact.Email, "Emergency alert", body)
				})
				if err != nil {
					log.WithError(err).WithField("contact_id", contact.ID).Warn("Email delivery failed")
				}
				record(contact.ID, models.ChannelEmail, err)
				return nil
			})
		}
	}

	if includeExternal {
		event := models.NewAlertEvent(alert)
		g.Go(func() error {
			err := d.attemptSend(gctx, func(sendCtx context.Context) error {
				return d.external.Publish(sendCtx, event)
			})
			if err != nil {
				log.WithError(err).Warn("External service notification failed")
			}
			record(0, models.ChannelExternal, err)
			return nil
		})
	}

	_ = g.Wait() // задачи ошибок не возвращают, исходы уже учтены

	log.WithFields(logrus.Fields{
		"sent":   summary.Sent,
		"failed": summary.Failed,
	}).Info("Notification fan-out completed")
	return summary
}

// attemptSend выполняет одну попытку с таймаутом канала.
// Истекший таймаут учитывается как failed, автоматических ретраев
// внутри одного цикла рассылки нет.
func (d *Dispatcher) attemptSend(ctx context.Context, send func(context.Context) error) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.ChannelTimeout)
	defer cancel()
	return send(sendCtx)
}
