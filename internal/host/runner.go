package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"feishu-notify/internal/engine/feishu"
	"feishu-notify/internal/platform/config"
)

// Sender delivers one text message. Satisfied by *feishu.Client.
type Sender interface {
	Send(ctx context.Context, msg, ats string) (*feishu.Response, error)
}

// Runner is one module invocation: params in, one result document out, exit
// code back. No state survives Run.
type Runner struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer

	// newSender is swappable in tests.
	newSender func(webhook, secret string, timeout time.Duration) Sender
}

func NewRunner(cfg *config.Config, stdin io.Reader, stdout io.Writer) *Runner {
	return &Runner{
		cfg:    cfg,
		stdin:  stdin,
		stdout: stdout,
		newSender: func(webhook, secret string, timeout time.Duration) Sender {
			return feishu.NewClient(webhook, secret, timeout)
		},
	}
}

// Run executes one invocation. args is os.Args[1:]: the first argument names
// the params file, "-" or nothing means stdin.
func (r *Runner) Run(args []string) int {
	logger := log.With().Str("invocation", uuid.NewString()).Logger()

	src, closeSrc, err := r.paramsSource(args)
	if err != nil {
		logger.Error().Err(err).Msg("cannot read params")
		return NewReporter(r.stdout, nil).Failure(FailureResult{Msg: err.Error()})
	}
	defer closeSrc()

	params, err := ParseParams(src)
	if err != nil {
		logger.Error().Err(err).Msg("invalid params")
		return NewReporter(r.stdout, nil).Failure(FailureResult{Msg: err.Error()})
	}

	reporter := NewReporter(r.stdout, params.Scrub)

	if params.CheckMode() {
		logger.Info().Msg("check mode, skipping send")
		return reporter.Success(SuccessResult{Changed: false})
	}

	msg := params.Get("msg")
	ats := params.Get("ats")
	sender := r.newSender(params.Get("webhook"), params.Get("secret"), r.cfg.HTTP.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.HTTP.Timeout)
	defer cancel()

	if _, err := sender.Send(ctx, msg, ats); err != nil {
		logger.Error().Str("cause", params.Scrub(causeOf(err))).Msg("delivery failed")
		return reporter.Failure(FailureResult{
			Msg:         fmt.Sprintf("unable to send msg: %s", msg),
			FeishuError: causeOf(err),
			Exception:   fmt.Sprintf("%T: %v", err, err),
		})
	}

	logger.Info().Msg("message delivered")
	return reporter.Success(SuccessResult{Changed: true, Msg: msg, Ats: ats})
}

func (r *Runner) paramsSource(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return r.stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open params file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// causeOf extracts the short human-readable cause for the failure report.
// Remote rejections surface the endpoint's error string verbatim.
func causeOf(err error) string {
	var terr *feishu.TransportError
	if errors.As(err, &terr) {
		return terr.Cause
	}
	var rerr *feishu.RemoteError
	if errors.As(err, &rerr) {
		return rerr.Remote
	}
	var derr *feishu.DecodeError
	if errors.As(err, &derr) {
		return derr.Cause
	}
	var eerr *feishu.EncodeError
	if errors.As(err, &eerr) {
		return eerr.Cause
	}
	return err.Error()
}
