package notify

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mireles/storefront/internal/domain/model"
)

const expoTokenPrefix = "ExponentPushToken"

// Dispatcher routes notifications to transports asynchronously. Send never
// blocks the caller and never reports transport failure upward; failures are
// logged only.
type Dispatcher struct {
	expo    Transport
	fcm     Transport
	workers int
	logger  *slog.Logger

	jobs   chan job
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

type job struct {
	recipients []model.PushRecipient
	payload    model.Notification
}

// NewDispatcher constructs the notification worker pool.
func NewDispatcher(expo, fcm Transport, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		expo:    expo,
		fcm:     fcm,
		workers: workers,
		logger:  logger,
		jobs:    make(chan job, queueSize),
	}
}

// Start launches background delivery workers.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Notify enqueues a notification. When the queue is full the notification is
// dropped with a warning: delivery is best-effort and must not stall requests.
func (d *Dispatcher) Notify(recipients []model.PushRecipient, n model.Notification) {
	if len(recipients) == 0 {
		return
	}
	select {
	case d.jobs <- job{recipients: recipients, payload: n}:
	default:
		d.logger.Warn("notification queue full, dropping",
			slog.String("title", n.Title),
			slog.Int("recipients", len(recipients)),
		)
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, j)
		}
	}
}

// deliver partitions the recipients by channel and pushes both partitions
// concurrently. One channel's failure never prevents the other's delivery.
func (d *Dispatcher) deliver(ctx context.Context, j job) {
	expoTokens, fcmTokens := splitRecipients(j.recipients)

	var wg sync.WaitGroup
	push := func(t Transport, tokens []string) {
		defer wg.Done()
		if err := t.Push(ctx, tokens, j.payload); err != nil {
			d.logger.Error("push delivery failed",
				slog.String("transport", t.Name()),
				slog.Int("tokens", len(tokens)),
				slog.String("error", err.Error()),
			)
		}
	}

	if len(expoTokens) > 0 {
		wg.Add(1)
		go push(d.expo, expoTokens)
	}
	if len(fcmTokens) > 0 {
		wg.Add(1)
		go push(d.fcm, fcmTokens)
	}
	wg.Wait()
}

// splitRecipients separates Expo tokens from everything else; unknown types
// fall through to the default FCM channel.
func splitRecipients(recipients []model.PushRecipient) (expo, fcm []string) {
	for _, r := range recipients {
		if r.Token == "" {
			continue
		}
		if r.Type == "expo" || strings.HasPrefix(r.Token, expoTokenPrefix) {
			expo = append(expo, r.Token)
			continue
		}
		fcm = append(fcm, r.Token)
	}
	return expo, fcm
}
