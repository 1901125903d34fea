package twocaptcha

import "testing"

func TestParseSubmitResponse(t *testing.T) {
	id, err := parseSubmitResponse("OK|2122988149")
	if err != nil {
		t.Fatal(err)
	}
	if id != "2122988149" {
		t.Fatalf("expected id 2122988149, got %s", id)
	}
}

func TestParseSubmitResponse_Error(t *testing.T) {
	_, err := parseSubmitResponse("ERROR:1001")
	svcErr, ok := err.(*ServiceError)
	if !ok {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if svcErr.Code != 1001 {
		t.Fatalf("expected code 1001, got %d", svcErr.Code)
	}
}

func TestParseSubmitResponse_EmptyID(t *testing.T) {
	if _, err := parseSubmitResponse("OK|"); err == nil {
		t.Fatal("expected error for empty job id")
	}
}

func TestParsePollResult(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		withCost bool
		status   Status
		text     string
		cost     string
	}{
		{"not ready", "CAPCHA_NOT_READY", false, StatusPending, "", ""},
		{"not ready cost-aware", "CAPCHA_NOT_READY", true, StatusPending, "", ""},
		{"solved", "OK|h8tr4d", false, StatusSolved, "h8tr4d", ""},
		{"solved with cost", "OK|abc123|5", true, StatusSolved, "abc123", "5"},
		{"solved cost-aware no cost field", "OK|abc123", true, StatusSolved, "abc123", ""},
		{"error", "ERROR:22", false, StatusFailed, "", ""},
		{"unrecognized", "something odd", false, StatusFailed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parsePollResult(tt.body, tt.withCost)
			if res.Status != tt.status {
				t.Fatalf("status = %v, want %v", res.Status, tt.status)
			}
			if res.Text != tt.text {
				t.Fatalf("text = %q, want %q", res.Text, tt.text)
			}
			if res.Cost != tt.cost {
				t.Fatalf("cost = %q, want %q", res.Cost, tt.cost)
			}
			if tt.status == StatusFailed && res.Err == nil {
				t.Fatal("expected service error on failed result")
			}
		})
	}
}

func TestParsePollResult_UnrecognizedKeepsRawMessage(t *testing.T) {
	res := parsePollResult("some garbage body", false)
	if res.Status != StatusFailed {
		t.Fatalf("expected failed, got %v", res.Status)
	}
	if res.Err.Code != 0 {
		t.Fatalf("expected code 0, got %d", res.Err.Code)
	}
	if res.Err.Message != "some garbage body" {
		t.Fatalf("expected raw body as message, got %q", res.Err.Message)
	}
}

func TestParseBulkResults(t *testing.T) {
	ids := []string{"1", "2", "3"}
	out, err := parseBulkResults(ids, "text1|CAPCHA_NOT_READY|text3")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	if out["1"].Status != StatusSolved || out["1"].Text != "text1" {
		t.Fatalf("id 1: got %+v", out["1"])
	}
	if out["2"].Status != StatusPending {
		t.Fatalf("id 2: expected pending, got %+v", out["2"])
	}
	if out["3"].Status != StatusSolved || out["3"].Text != "text3" {
		t.Fatalf("id 3: got %+v", out["3"])
	}
}

func TestParseBulkResults_CountMismatch(t *testing.T) {
	_, err := parseBulkResults([]string{"1", "2", "3"}, "text1|text2")
	cntErr, ok := err.(*BulkCountError)
	if !ok {
		t.Fatalf("expected *BulkCountError, got %T (%v)", err, err)
	}
	if cntErr.Want != 3 || cntErr.Got != 2 {
		t.Fatalf("expected want=3 got=2, have %+v", cntErr)
	}
}

func TestParseBulkResults_ErrorBody(t *testing.T) {
	_, err := parseBulkResults([]string{"1"}, "ERROR:1")
	if _, ok := err.(*ServiceError); !ok {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
}

func TestParsePingbackList(t *testing.T) {
	urls, err := parsePingbackList("OK|http://a.example/cb|http://b.example/cb")
	if err != nil {
		t.Fatal(err)
	}
	if len(urls) != 2 || urls[0] != "http://a.example/cb" || urls[1] != "http://b.example/cb" {
		t.Fatalf("unexpected urls: %v", urls)
	}
}

func TestParsePingbackList_Empty(t *testing.T) {
	urls, err := parsePingbackList("OK")
	if err != nil {
		t.Fatal(err)
	}
	if len(urls) != 0 {
		t.Fatalf("expected empty list, got %v", urls)
	}
}

func TestParseBalance(t *testing.T) {
	bal, err := parseBalance("456.33")
	if err != nil {
		t.Fatal(err)
	}
	if bal != 456.33 {
		t.Fatalf("expected 456.33, got %f", bal)
	}

	if _, err := parseBalance("ERROR:1"); err == nil {
		t.Fatal("expected error for error body")
	}
	if _, err := parseBalance("not a number"); err == nil {
		t.Fatal("expected error for malformed balance")
	}
}

func TestParseLoadStats(t *testing.T) {
	body := `<load>
		<waiting>20</waiting>
		<load>42.5</load>
		<minbid>0.712</minbid>
		<averageRecognitionTime>12.1</averageRecognitionTime>
		<comment>not a number</comment>
	</load>`

	all, err := parseLoadStats(body, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 numeric fields, got %d: %v", len(all), all)
	}
	if all["load"] != 42.5 {
		t.Fatalf("expected load 42.5, got %f", all["load"])
	}

	some, err := parseLoadStats(body, []string{"waiting", "minbid"})
	if err != nil {
		t.Fatal(err)
	}
	if len(some) != 2 || some["waiting"] != 20 || some["minbid"] != 0.712 {
		t.Fatalf("unexpected filtered stats: %v", some)
	}
}
