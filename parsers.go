package twocaptcha

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// parseSubmitResponse decodes an in.php response. A well-formed response is
// the literal "OK|" followed by the job id, returned verbatim.
func parseSubmitResponse(body string) (string, error) {
	if strings.HasPrefix(body, okPrefix) {
		id := strings.TrimPrefix(body, okPrefix)
		if id != "" {
			return id, nil
		}
	}
	return "", serviceErrorFromBody(body)
}

// parsePollResult decodes a res.php status response into the tagged variant.
// Exactly three cases: the not-ready sentinel, an "OK|" payload, or an error
// payload. withCost splits a trailing field off as the solve price (the
// get2 action).
func parsePollResult(body string, withCost bool) PollResult {
	if body == sentinelNotReady {
		return PollResult{Status: StatusPending}
	}
	if strings.HasPrefix(body, okPrefix) {
		rest := strings.TrimPrefix(body, okPrefix)
		res := PollResult{Status: StatusSolved, Text: rest}
		if withCost {
			if text, cost, ok := strings.Cut(rest, "|"); ok {
				res.Text = text
				res.Cost = cost
			}
		}
		return res
	}
	return PollResult{Status: StatusFailed, Err: serviceErrorFromBody(body)}
}

// parseBulkResults pairs a pipe-delimited bulk response with the submitted
// id list positionally: the Nth field answers the Nth id. A field-count
// mismatch is a hard error rather than a silent misalignment.
func parseBulkResults(ids []string, body string) (map[string]PollResult, error) {
	if isErrorBody(body) {
		return nil, serviceErrorFromBody(body)
	}
	fields := strings.Split(body, "|")
	if len(fields) != len(ids) {
		return nil, &BulkCountError{Want: len(ids), Got: len(fields)}
	}
	out := make(map[string]PollResult, len(ids))
	for i, id := range ids {
		if fields[i] == sentinelNotReady {
			out[id] = PollResult{Status: StatusPending}
		} else {
			out[id] = PollResult{Status: StatusSolved, Text: fields[i]}
		}
	}
	return out, nil
}

// parsePingbackList decodes a get_pingback response: "OK|url1|url2|...".
// A bare "OK" means the whitelist is empty.
func parsePingbackList(body string) ([]string, error) {
	if body == "OK" {
		return nil, nil
	}
	if strings.HasPrefix(body, okPrefix) {
		var urls []string
		for _, u := range strings.Split(strings.TrimPrefix(body, okPrefix), "|") {
			if u != "" {
				urls = append(urls, u)
			}
		}
		return urls, nil
	}
	return nil, serviceErrorFromBody(body)
}

// parseBalance decodes a getbalance response, a bare decimal number.
func parseBalance(body string) (float64, error) {
	if isErrorBody(body) {
		return 0, serviceErrorFromBody(body)
	}
	bal, err := strconv.ParseFloat(strings.TrimSpace(body), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed balance response %q", truncate(body, 100))
	}
	return bal, nil
}

// loadDocument is the generic shape of the load.php XML response: a root
// element holding named numeric fields.
type loadDocument struct {
	XMLName xml.Name
	Fields  []loadField `xml:",any"`
}

type loadField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// parseLoadStats decodes the load.php XML document into name -> value.
// When names are given, only those fields are returned. Non-numeric fields
// are skipped.
func parseLoadStats(body string, names []string) (map[string]float64, error) {
	if isErrorBody(body) {
		return nil, serviceErrorFromBody(body)
	}
	var doc loadDocument
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal load stats: %w", err)
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	out := make(map[string]float64, len(doc.Fields))
	for _, f := range doc.Fields {
		name := f.XMLName.Local
		if len(want) > 0 && !want[name] {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
		if err != nil {
			slog.Debug("skip non-numeric load field", slog.String("field", name))
			continue
		}
		out[name] = v
	}
	return out, nil
}
