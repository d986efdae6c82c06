package feishu

import "strings"

// AtAll is the recipient spec meaning every member of the enterprise
// application. It is also the default when no recipients are given.
const AtAll = "@all"

// maxRecipients is the cap the bot platform documents for '|'-separated
// member lists.
const maxRecipients = 10

// textMessage is the wire shape of a signed text notification. The bot API
// wants the timestamp as a string-encoded integer.
type textMessage struct {
	Timestamp string      `json:"timestamp"`
	Sign      string      `json:"sign"`
	MsgType   string      `json:"msg_type"`
	Content   textContent `json:"content"`
}

type textContent struct {
	Text string `json:"text"`
}

// Response is the decoded Feishu envelope. A zero Code means the message was
// accepted; anything else carries the endpoint's error string in Msg.
type Response struct {
	Code int            `json:"code"`
	Msg  string         `json:"msg"`
	Data map[string]any `json:"data,omitempty"`
}

// SplitRecipients normalizes a recipient spec into member IDs. Empty input
// and AtAll both mean "everyone" and return nil.
func SplitRecipients(ats string) []string {
	ats = strings.TrimSpace(ats)
	if ats == "" || ats == AtAll {
		return nil
	}
	var out []string
	for _, id := range strings.Split(ats, "|") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
