package host

import (
	"encoding/json"
	"io"

	"github.com/rs/zerolog/log"
)

// SuccessResult is the report written on the success path. Changed is false
// only for check-mode runs, where nothing was sent.
type SuccessResult struct {
	Changed bool   `json:"changed"`
	Msg     string `json:"msg,omitempty"`
	Ats     string `json:"ats,omitempty"`
}

// FailureResult is the single failure shape every error collapses into:
// the attempted message, a short cause, and a diagnostic detail string.
type FailureResult struct {
	Failed      bool   `json:"failed"`
	Changed     bool   `json:"changed"`
	Msg         string `json:"msg"`
	FeishuError string `json:"feishu_error,omitempty"`
	Exception   string `json:"exception,omitempty"`
}

// Reporter writes exactly one result document to the host and yields the
// process exit code. All outgoing strings pass through scrub so sensitive
// parameter values never leave the process.
type Reporter struct {
	out   io.Writer
	scrub func(string) string
}

func NewReporter(out io.Writer, scrub func(string) string) *Reporter {
	if scrub == nil {
		scrub = func(s string) string { return s }
	}
	return &Reporter{out: out, scrub: scrub}
}

func (r *Reporter) Success(res SuccessResult) int {
	res.Msg = r.scrub(res.Msg)
	res.Ats = r.scrub(res.Ats)
	if err := json.NewEncoder(r.out).Encode(res); err != nil {
		// The host never saw the report; exiting 0 would claim success
		// with nothing to back it.
		log.Error().Err(err).Msg("failed to write success report")
		return 1
	}
	return 0
}

func (r *Reporter) Failure(res FailureResult) int {
	res.Failed = true
	res.Msg = r.scrub(res.Msg)
	res.FeishuError = r.scrub(res.FeishuError)
	res.Exception = r.scrub(res.Exception)
	if err := json.NewEncoder(r.out).Encode(res); err != nil {
		log.Error().Err(err).Msg("failed to write failure report")
	}
	return 1
}
