package mail

import (
	"context"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/config"
)

// WorkerPool manages a pool of workers for sending emails.
type WorkerPool struct {
	size   int
	jobs   chan Message
	sender Sender
}

// NewWorkerPool creates a new worker pool over the configured transport.
func NewWorkerPool(cfg *config.MailConfig, size int) *WorkerPool {
	var sender Sender = logSender{}
	if cfg.Enabled {
		sender = &smtpSender{
			dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
			from:   cfg.From,
		}
	}
	return &WorkerPool{
		size:   size,
		jobs:   make(chan Message, size),
		sender: sender,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Mail worker %d started", id)
	for {
		select {
		case msg := <-wp.jobs:
			if err := wp.sender.Send(msg); err != nil {
				log.Printf("Error sending %q to %s: %v", msg.Subject, msg.To, err)
			}
		case <-ctx.Done():
			log.Printf("Mail worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a message for delivery.
func (wp *WorkerPool) Dispatch(msg Message) {
	wp.jobs <- msg
}
