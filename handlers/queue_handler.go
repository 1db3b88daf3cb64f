// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"numclass-server/models"
	"numclass-server/phone"
)

var ErrMalformedQueuedNumber = errors.New("malformed queued number")

// ClassifyQueuedNumber decodes a QueuedNumber message body and classifies it
// against table. Errors wrap ErrMalformedQueuedNumber; such messages should
// not be redelivered.
func ClassifyQueuedNumber(table phone.Table, body []byte) (*models.ClassifiedNumber, error) {
	var qn models.QueuedNumber
	if err := json.Unmarshal(body, &qn); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQueuedNumber, err)
	}
	if qn.Mid == "" {
		return nil, fmt.Errorf("%w: missing mid", ErrMalformedQueuedNumber)
	}
	if strings.TrimSpace(qn.PhoneNumber) == "" {
		return nil, fmt.Errorf("%w: missing phonenumber", ErrMalformedQueuedNumber)
	}

	p := phone.New(qn.PhoneNumber, table)
	cn := models.NewClassifiedNumber(qn.Mid, qn.PhoneNumber, p)
	if qn.Country != nil && *qn.Country != "" {
		validFor := p.ValidForCountry(strings.ToUpper(*qn.Country))
		cn.ValidForCountry = &validFor
	}
	return cn, nil
}

// ResultRoutingKey is the key a ClassifiedNumber is published under.
func ResultRoutingKey(prefix string, cn *models.ClassifiedNumber) string {
	country := "unknown"
	if cn.Country != nil {
		country = strings.ToLower(*cn.Country)
	}
	return prefix + "." + country
}

// NewQueuedClassificationLog is NewClassificationLog for a queue result.
func NewQueuedClassificationLog(cn *models.ClassifiedNumber) models.ClassificationLog {
	entry := models.ClassificationLog{
		Source:    models.SourceQueue,
		Status:    models.Invalid,
		Sanitized: cn.Sanitized,
		Country:   cn.Country,
	}
	switch {
	case cn.Valid:
		entry.Status = models.Valid
	case cn.Possible:
		entry.Status = models.Possible
	}
	if len(cn.Countries) > 0 {
		countries := strings.Join(cn.Countries, ",")
		entry.Countries = &countries
	}
	if cn.Type != nil {
		typ := cn.Type.String()
		entry.Type = &typ
	}
	return entry
}
