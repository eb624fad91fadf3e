package controller

import (
	"context"
	"time"

	"github.com/goliatone/go-formctl/pkg/model"
)

// View is the presentation side of the controller: busy indicator, success
// banner, scrolling and blocking alerts.
type View interface {
	SetBusy(busy bool)
	ShowSuccess()
	HideSuccess()
	SuccessVisible() bool
	ScrollTo(field string)
	Alert(message string)
}

// Persister stores records. storage.Sink satisfies it.
type Persister interface {
	Save(ctx context.Context, rec model.Record) bool
	Load(ctx context.Context) (model.Record, bool)
}

// Reporter emits analytics for records. analytics.Sink satisfies it.
type Reporter interface {
	Send(rec model.Record) bool
}

// Sleeper suspends the submitting goroutine for the artificial delay.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration)

// Sleep implements Sleeper.
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) {
	f(ctx, d)
}

// RealSleeper waits on a timer. The wait always runs its full length.
type RealSleeper struct{}

// Sleep implements Sleeper.
func (RealSleeper) Sleep(_ context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
}

// NoDelay returns immediately.
var NoDelay Sleeper = SleeperFunc(func(context.Context, time.Duration) {})
