package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/pkg/mailer"
)

// Notification tasks
const (
	TaskCustomerAck = "customer_ack"
	TaskStaffAlert  = "staff_alert"
)

// Notification is one independent send
type Notification struct {
	Task    string
	Message mailer.Message
}

type dispatchFailure struct {
	event     string
	task      string
	recipient string
	err       error
}

// NotificationDispatcher sends notifications in the background. Every
// notification runs in its own goroutine; failures go to an error channel
// drained by a log sink and never reach the caller.
type NotificationDispatcher struct {
	mailer mailer.Mailer
	logger *logrus.Logger

	mu       sync.RWMutex
	closed   bool
	wg       sync.WaitGroup
	failures chan dispatchFailure
	sinkDone chan struct{}
}

// NewNotificationDispatcher creates a dispatcher and starts its log sink
func NewNotificationDispatcher(m mailer.Mailer, logger *logrus.Logger) *NotificationDispatcher {
	d := &NotificationDispatcher{
		mailer:   m,
		logger:   logger,
		failures: make(chan dispatchFailure, 64),
		sinkDone: make(chan struct{}),
	}
	go d.sink()
	return d
}

// Dispatch starts one goroutine per notification and returns immediately
func (d *NotificationDispatcher) Dispatch(event string, notifications ...Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.WithField("event", event).Warn("Notification dispatcher closed, dropping notifications")
		return
	}

	for _, n := range notifications {
		d.wg.Add(1)
		go d.send(event, n)
	}
}

func (d *NotificationDispatcher) send(event string, n Notification) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.failures <- dispatchFailure{event: event, task: n.Task, recipient: n.Message.To, err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err := d.mailer.Send(context.Background(), n.Message); err != nil {
		d.failures <- dispatchFailure{event: event, task: n.Task, recipient: n.Message.To, err: err}
	}
}

func (d *NotificationDispatcher) sink() {
	defer close(d.sinkDone)
	for f := range d.failures {
		d.logger.WithError(f.err).WithFields(logrus.Fields{
			"event":     f.event,
			"task":      f.task,
			"recipient": f.recipient,
			"mailer":    d.mailer.Name(),
		}).Error("Notification send failed")
	}
}

// Close waits for in-flight sends and stops the log sink.
// Dispatch calls after Close are dropped.
func (d *NotificationDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
	close(d.failures)
	<-d.sinkDone
}
