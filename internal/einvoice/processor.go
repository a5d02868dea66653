package einvoice

import (
	"context"
	"sync"
	"time"

	"gstdesk-api/internal/db"
	"gstdesk-api/internal/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultWorkerCount  = 3
	defaultPollInterval = 30 * time.Second
	defaultPollBatch    = 20
	taskBufferSize      = 100
)

// SubmissionProcessor drains queued invoices through GenerateIRN. Invoices
// enter the queue either directly via Enqueue or through the periodic poll
// of the store, which also picks up work left behind by a crashed process.
type SubmissionProcessor struct {
	service *Service
	queries db.Querier

	workerCount  int
	pollInterval time.Duration

	tasks  chan uuid.UUID
	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
}

// NewSubmissionProcessor creates a processor with default worker and poll
// settings
func NewSubmissionProcessor(service *Service, queries db.Querier) *SubmissionProcessor {
	return &SubmissionProcessor{
		service:      service,
		queries:      queries,
		workerCount:  defaultWorkerCount,
		pollInterval: defaultPollInterval,
		tasks:        make(chan uuid.UUID, taskBufferSize),
	}
}

// Start launches the worker pool and the poll loop
func (p *SubmissionProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.pollLoop(ctx)

	logger.Info("submission processor started",
		zap.Int("workers", p.workerCount),
		zap.Duration("poll_interval", p.pollInterval))
}

// Stop shuts the processor down and waits for in-flight submissions
func (p *SubmissionProcessor) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.cancel()
	p.mu.Unlock()

	p.wg.Wait()
	logger.Info("submission processor stopped")
}

// Enqueue hands an invoice to the worker pool without waiting for the next
// poll. A full buffer is not an error; the poll loop will find the invoice.
func (p *SubmissionProcessor) Enqueue(invoiceID uuid.UUID) {
	select {
	case p.tasks <- invoiceID:
	default:
		logger.Warn("submission queue full, deferring to poll",
			zap.String("invoice_id", invoiceID.String()))
	}
}

func (p *SubmissionProcessor) pollLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

func (p *SubmissionProcessor) pollOnce(ctx context.Context) {
	ids, err := p.queries.ListQueuedInvoices(ctx, defaultPollBatch)
	if err != nil {
		logger.Error("polling queued invoices failed", zap.Error(err))
		return
	}

	for _, id := range ids {
		select {
		case p.tasks <- id:
		case <-ctx.Done():
			return
		}
	}
}

func (p *SubmissionProcessor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case invoiceID := <-p.tasks:
			p.process(ctx, invoiceID, id)
		}
	}
}

func (p *SubmissionProcessor) process(ctx context.Context, invoiceID uuid.UUID, workerID int) {
	_, err := p.service.GenerateIRN(ctx, invoiceID)
	if err == nil {
		return
	}

	// Another worker already won the claim, or the invoice got an IRN
	// between poll and pickup. Both are normal under concurrency.
	var alreadyIssued *AlreadyIssuedError
	if errors.Is(err, ErrSubmissionInFlight) || errors.As(err, &alreadyIssued) {
		logger.Debug("invoice already handled by another submission",
			zap.String("invoice_id", invoiceID.String()),
			zap.Int("worker", workerID))
		return
	}

	logger.Error("background IRN generation failed",
		zap.String("invoice_id", invoiceID.String()),
		zap.Int("worker", workerID),
		zap.Error(err))
}
