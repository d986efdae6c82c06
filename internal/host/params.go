package host

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"feishu-notify/internal/engine/feishu"
)

// ParamSpec describes one invocation parameter. NoLog marks values that must
// never reach logs or reports; the reporter scrubs them from every outgoing
// string.
type ParamSpec struct {
	Required bool
	NoLog    bool
	Default  string
}

// argumentSpec is the module's parameter surface: four fields, two of them
// sensitive, matching the playbook-facing contract.
var argumentSpec = map[string]ParamSpec{
	"webhook": {Required: true, NoLog: true},
	"secret":  {Required: true, NoLog: true},
	"ats":     {Default: feishu.AtAll},
	"msg":     {Required: true},
}

// checkModeKey is the host-internal flag asking for a dry run. Keys with a
// leading underscore are host plumbing, not module parameters.
const checkModeKey = "_check_mode"

// minScrubLen keeps redaction from going degenerate: substituting a one or
// two character value would mangle nearly every report string, and a value
// that short is not meaningfully hidden by redaction anyway.
const minScrubLen = 6

type Params struct {
	values    map[string]string
	checkMode bool
	sensitive []string
}

// ParseParams decodes and validates the JSON params document the host hands
// us. Unknown parameters are rejected; unknown underscore keys are ignored.
func ParseParams(r io.Reader) (*Params, error) {
	var raw map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid params JSON: %w", err)
	}

	p := &Params{values: make(map[string]string, len(argumentSpec))}

	for name, val := range raw {
		if name == checkModeKey {
			b, ok := val.(bool)
			if !ok {
				return nil, fmt.Errorf("parameter %s must be a boolean", checkModeKey)
			}
			p.checkMode = b
			continue
		}
		if strings.HasPrefix(name, "_") {
			continue
		}

		spec, known := argumentSpec[name]
		if !known {
			return nil, fmt.Errorf("unsupported parameter: %s", name)
		}
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("parameter %s must be a string", name)
		}
		p.values[name] = s
		if spec.NoLog && len(s) >= minScrubLen {
			p.sensitive = append(p.sensitive, s)
		}
	}

	for name, spec := range argumentSpec {
		if _, present := p.values[name]; present {
			continue
		}
		if spec.Required {
			return nil, fmt.Errorf("missing required parameter: %s", name)
		}
		p.values[name] = spec.Default
	}

	// Longest first, so a value containing another is redacted whole
	// instead of being split by the shorter match.
	sort.Slice(p.sensitive, func(i, j int) bool {
		return len(p.sensitive[i]) > len(p.sensitive[j])
	})

	return p, nil
}

func (p *Params) Get(name string) string {
	return p.values[name]
}

func (p *Params) CheckMode() bool {
	return p.checkMode
}

// Scrub replaces every sensitive parameter value occurring in s. Transport
// errors embed the request URL, so the webhook would otherwise leak into
// failure reports.
func (p *Params) Scrub(s string) string {
	for _, v := range p.sensitive {
		s = strings.ReplaceAll(s, v, "********")
	}
	return s
}
