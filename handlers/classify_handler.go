// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"numclass-server/commons"
	"numclass-server/middlewares"
	"numclass-server/models"
	"numclass-server/phone"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// ClassifyHandler godoc
// @Summary      Classify a phone number
// @Description  Classifies a raw phone number against every numbering plan whose dialing code prefixes it. Numbers that match nothing are reported as invalid, not as an error.
// @Tags         numbers
// @Accept       json
// @Produce      json
// @Param        classifyRequest  body  ClassifyRequest  true  "Classify request payload"
// @Success      200 {object} ClassifyResponse "Classification result"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing phone_number"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, API key required"
// @Failure      503 {object} echo.HTTPError     "Numbering plans not loaded"
// @Router       /v1/numbers/classify [post]
func ClassifyHandler(c echo.Context) error {
	logger := c.Logger()

	if commons.Plans == nil {
		logger.Error("Numbering plans not loaded.")
		return echo.ErrServiceUnavailable
	}

	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid classify request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		logger.Error("Missing PhoneNumber in classify request.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "phone_number field is required",
		}
	}

	p := phone.New(req.PhoneNumber, commons.Plans.Table)
	recordClassifications(logger, models.SourceAPI, middlewares.GetAuthenticatedAPIKeyID(c), p)

	return c.JSON(http.StatusOK, newClassifyResponse(req.PhoneNumber, req.Country, p))
}

// BulkClassifyHandler godoc
// @Summary      Classify multiple phone numbers
// @Description  Classifies up to BULK_CLASSIFY_LIMIT phone numbers. Results keep the request order.
// @Tags         numbers
// @Accept       json
// @Produce      json
// @Param        bulkClassifyRequest  body  BulkClassifyRequest  true  "Bulk classify request payload"
// @Success      200 {object} BulkClassifyResponse "Classification results"
// @Failure      400 {object} echo.HTTPError     "Bad request, empty or oversized phone_numbers array"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, API key required"
// @Failure      503 {object} echo.HTTPError     "Numbering plans not loaded"
// @Router       /v1/numbers/bulk-classify [post]
func BulkClassifyHandler(c echo.Context) error {
	logger := c.Logger()

	if commons.Plans == nil {
		logger.Error("Numbering plans not loaded.")
		return echo.ErrServiceUnavailable
	}

	var req BulkClassifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid bulk classify request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if len(req.PhoneNumbers) == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "phone_numbers field must be a non-empty array",
		}
	}

	limit := commons.GetEnvInt("BULK_CLASSIFY_LIMIT", 100)
	if len(req.PhoneNumbers) > limit {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("phone_numbers field must not contain more than %d entries", limit),
		}
	}

	phones := classifyAll(req.PhoneNumbers, commons.Plans.Table, commons.GetEnvInt("BULK_CLASSIFY_WORKERS", 8))
	recordClassifications(logger, models.SourceBulk, middlewares.GetAuthenticatedAPIKeyID(c), phones...)

	data := make([]ClassifyResponse, len(phones))
	for i, p := range phones {
		data[i] = newClassifyResponse(req.PhoneNumbers[i], req.Country, p)
	}

	logger.Debugf("Classified %d phone numbers", len(data))
	return c.JSON(http.StatusOK, BulkClassifyResponse{
		Data:    data,
		Count:   len(data),
		Message: "Phone numbers classified successfully",
	})
}

// classifyAll classifies each input on a bounded number of goroutines; the
// result at index i always belongs to raws[i].
func classifyAll(raws []string, table phone.Table, workers int) []*phone.Phone {
	phones := make([]*phone.Phone, len(raws))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			phones[i] = phone.New(raw, table)
			return nil
		})
	}
	_ = g.Wait()

	return phones
}

func newClassifyResponse(raw string, country *string, p *phone.Phone) ClassifyResponse {
	resp := ClassifyResponse{
		PhoneNumber:    raw,
		Sanitized:      p.Sanitized(),
		NationalNumber: p.NationalNumber(),
		Valid:          p.Valid(),
		Possible:       p.Possible(),
		Types:          p.Types(),
		PossibleTypes:  p.PossibleTypes(),
		Countries:      p.Countries(),
		Results:        p.Results(),
	}
	if t, ok := p.Type(); ok {
		resp.Type = &t
	}
	if c, ok := p.Country(); ok {
		resp.Country = &c
	}
	if country != nil && *country != "" {
		validFor := p.ValidForCountry(strings.ToUpper(*country))
		resp.ValidForCountry = &validFor
	}
	return resp
}
