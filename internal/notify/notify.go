/*
Package notify delivers finished match reports by email.
*/
package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/shanehull/matchscout/internal/types"
)

// NotificationData is the template input for one report.
type NotificationData struct {
	Report *types.Report
}

// RenderedMessage is a ready-to-send email with a plain text alternative.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

type Renderer interface {
	Render(data NotificationData) (*RenderedMessage, error)
}

type Sender interface {
	Send(msg *RenderedMessage) error
}

// Notifier renders and sends reports in the background. Failures are logged and
// never reach the caller.
type Notifier struct {
	renderer Renderer
	sender   Sender
	log      *zap.Logger
	wg       sync.WaitGroup
}

func NewNotifier(renderer Renderer, sender Sender, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{renderer: renderer, sender: sender, log: log}
}

// Notify queues delivery of report. A nil Notifier is a no-op.
func (n *Notifier) Notify(report *types.Report) {
	if n == nil || report == nil {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		log := n.log.With(zap.String("analysis_id", report.ID))

		msg, err := n.renderer.Render(NotificationData{Report: report})
		if err != nil {
			log.Error("Failed to render report email", zap.Error(err))
			return
		}
		if err := n.sender.Send(msg); err != nil {
			log.Error("Failed to send report email", zap.String("subject", msg.Subject), zap.Error(err))
			return
		}
		log.Info("Report email sent", zap.String("subject", msg.Subject))
	}()
}

// Wait blocks until every queued notification has finished.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}
