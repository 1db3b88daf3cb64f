// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"numclass-server/phone"

	"github.com/google/uuid"
)

// QueuedNumber is a classification request read from the work queue.
type QueuedNumber struct {
	// Mid is the unique message identifier
	Mid string `json:"mid"`
	// PhoneNumber is the raw, unsanitized input
	PhoneNumber string `json:"phonenumber"`
	// Country optionally asks for a validity verdict for one country
	Country *string `json:"country,omitempty"`
	// Timestamp when the message was created
	CreatedAt time.Time `json:"created_at"`
}

// ClassifiedNumber is published for every consumed QueuedNumber.
type ClassifiedNumber struct {
	Mid             string                `json:"mid"`
	PhoneNumber     string                `json:"phonenumber"`
	Sanitized       string                `json:"sanitized"`
	Valid           bool                  `json:"valid"`
	Possible        bool                  `json:"possible"`
	Type            *phone.Tag            `json:"type"`
	Types           []phone.Tag           `json:"types"`
	Country         *string               `json:"country"`
	Countries       []string              `json:"countries"`
	ValidForCountry *bool                 `json:"valid_for_country,omitempty"`
	Results         []phone.CountryResult `json:"results"`
	ClassifiedAt    time.Time             `json:"classified_at"`
}

// NewQueuedNumber creates a new queued number with a generated message ID
func NewQueuedNumber(phoneNumber string) *QueuedNumber {
	return &QueuedNumber{
		Mid:         uuid.New().String(),
		PhoneNumber: phoneNumber,
		CreatedAt:   time.Now(),
	}
}

// NewClassifiedNumber copies the query results of p into a message.
func NewClassifiedNumber(mid, raw string, p *phone.Phone) *ClassifiedNumber {
	cn := &ClassifiedNumber{
		Mid:          mid,
		PhoneNumber:  raw,
		Sanitized:    p.Sanitized(),
		Valid:        p.Valid(),
		Possible:     p.Possible(),
		Types:        p.Types(),
		Countries:    p.Countries(),
		Results:      p.Results(),
		ClassifiedAt: time.Now(),
	}
	if t, ok := p.Type(); ok {
		cn.Type = &t
	}
	if c, ok := p.Country(); ok {
		cn.Country = &c
	}
	return cn
}
