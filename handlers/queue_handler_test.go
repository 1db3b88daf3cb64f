package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"numclass-server/models"
	"numclass-server/phone"
)

func TestClassifyQueuedNumber(t *testing.T) {
	qn := models.NewQueuedNumber("+44 7700 900123")
	country := "gb"
	qn.Country = &country
	body, err := json.Marshal(qn)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	cn, err := ClassifyQueuedNumber(testTable(), body)
	if err != nil {
		t.Fatalf("ClassifyQueuedNumber: %v", err)
	}
	if cn.Mid != qn.Mid {
		t.Errorf("expected mid %s, got %s", qn.Mid, cn.Mid)
	}
	if !cn.Valid || cn.Type == nil || *cn.Type != phone.Mobile {
		t.Errorf("expected valid MOBILE, got valid=%v type=%v", cn.Valid, cn.Type)
	}
	if cn.ValidForCountry == nil || !*cn.ValidForCountry {
		t.Errorf("expected valid_for_country true, got %v", cn.ValidForCountry)
	}
	if key := ResultRoutingKey("numbers.classified", cn); key != "numbers.classified.gb" {
		t.Errorf("unexpected routing key %q", key)
	}
}

func TestClassifyQueuedNumberUnknownCountry(t *testing.T) {
	body := []byte(`{"mid":"m-1","phonenumber":"+7 912 345 67 89"}`)

	cn, err := ClassifyQueuedNumber(testTable(), body)
	if err != nil {
		t.Fatalf("ClassifyQueuedNumber: %v", err)
	}
	if cn.Valid || cn.Country != nil {
		t.Errorf("expected no candidate country, got %+v", cn)
	}
	if cn.ValidForCountry != nil {
		t.Errorf("expected valid_for_country to be omitted")
	}
	if key := ResultRoutingKey("numbers.classified", cn); key != "numbers.classified.unknown" {
		t.Errorf("unexpected routing key %q", key)
	}
}

func TestClassifyQueuedNumberMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"mid":`,
		"missing mid":   `{"phonenumber":"+16502530000"}`,
		"missing phone": `{"mid":"m-1","phonenumber":" "}`,
	}
	for name, body := range cases {
		_, err := ClassifyQueuedNumber(testTable(), []byte(body))
		if !errors.Is(err, ErrMalformedQueuedNumber) {
			t.Errorf("%s: expected ErrMalformedQueuedNumber, got %v", name, err)
		}
	}
}

func TestNewQueuedClassificationLog(t *testing.T) {
	cn, err := ClassifyQueuedNumber(testTable(), []byte(`{"mid":"m-1","phonenumber":"+1 650 253"}`))
	if err != nil {
		t.Fatalf("ClassifyQueuedNumber: %v", err)
	}

	entry := NewQueuedClassificationLog(cn)
	if entry.Source != models.SourceQueue {
		t.Errorf("expected source %s, got %s", models.SourceQueue, entry.Source)
	}
	if entry.Status != models.Invalid {
		t.Errorf("expected status %s, got %s", models.Invalid, entry.Status)
	}
	if entry.Sanitized != "1650253" {
		t.Errorf("unexpected sanitized %q", entry.Sanitized)
	}
	if entry.Countries == nil || *entry.Countries != "US" || entry.Type != nil {
		t.Errorf("unexpected countries/type %v %v", entry.Countries, entry.Type)
	}

	cn, _ = ClassifyQueuedNumber(testTable(), []byte(`{"mid":"m-2","phonenumber":"+1 800 555 0100"}`))
	entry = NewQueuedClassificationLog(cn)
	if entry.Status != models.Valid || entry.Type == nil || *entry.Type != "TOLL_FREE" {
		t.Errorf("unexpected entry %+v", entry)
	}
}
