// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "numclass-server/phone"

// swagger:model ClassifyRequest
type ClassifyRequest struct {
	// Raw phone number, any formatting
	// required: true
	PhoneNumber string `json:"phone_number" example:"+1 (650) 253-0000"`
	// Optional ISO 3166-1 alpha-2 country to report validity for
	Country *string `json:"country" example:"US"`
}

// swagger:model BulkClassifyRequest
type BulkClassifyRequest struct {
	// Raw phone numbers, classified independently
	// required: true
	PhoneNumbers []string `json:"phone_numbers" example:"+1 650 253 0000,+44 7700 900123"`
	// Optional ISO 3166-1 alpha-2 country to report validity for
	Country *string `json:"country" example:"GB"`
}

// swagger:model ClassifyResponse
type ClassifyResponse struct {
	// Input as received
	PhoneNumber string `json:"phone_number" example:"+1 (650) 253-0000"`
	// Digits of the input
	Sanitized string `json:"sanitized" example:"16502530000"`
	// National number of the last evaluated country
	NationalNumber string `json:"national_number" example:"6502530000"`
	// Whether any country reports a valid type
	Valid bool `json:"valid" example:"true"`
	// Whether any country reports a possible type
	Possible bool `json:"possible" example:"true"`
	// First valid type
	Type *phone.Tag `json:"type" swaggertype:"string" example:"FIXED_OR_MOBILE"`
	// Distinct valid types across countries
	Types []phone.Tag `json:"types" swaggertype:"array,string"`
	// Distinct possible types across countries
	PossibleTypes []phone.Tag `json:"possible_types" swaggertype:"array,string"`
	// First candidate country
	Country *string `json:"country" example:"US"`
	// Every candidate country in table order
	Countries []string `json:"countries"`
	// Set when the request named a country
	ValidForCountry *bool `json:"valid_for_country,omitempty"`
	// Per-country breakdown
	Results []phone.CountryResult `json:"results"`
}

// swagger:model BulkClassifyResponse
type BulkClassifyResponse struct {
	// Results in request order
	Data []ClassifyResponse `json:"data"`
	// Number of classified inputs
	Count int `json:"count" example:"2"`
	// Message indicating successful operation
	Message string `json:"message" example:"Phone numbers classified successfully"`
}

// swagger:model CountryDetails
type CountryDetails struct {
	// Country or region identifier
	ID string `json:"id" example:"US"`
	// Dialing code prefix
	CountryCode string `json:"country_code" example:"1"`
	// Number types defined by the plan
	Types []phone.Tag `json:"types" swaggertype:"array,string"`
}

// swagger:model CountryListResponse
type CountryListResponse struct {
	Data    []CountryDetails `json:"data"`
	Count   int              `json:"count" example:"245"`
	Message string           `json:"message" example:"Countries retrieved successfully"`
}

// swagger:model PaginationDetails
type PaginationDetails struct {
	// Current page number
	Page int `json:"page"`
	// Page size
	PageSize int `json:"page_size"`
	// Total number of items
	Total int64 `json:"total"`
	// Total number of pages
	TotalPages int `json:"total_pages"`
}

// swagger:model ClassificationLogDetails
type ClassificationLogDetails struct {
	EID       string  `json:"eid" example:"2b1f8c8e-2a55-4d0e-bb7c-9f0c2b1c7a10"`
	Source    string  `json:"source" example:"API"`
	Status    string  `json:"status" example:"VALID"`
	Sanitized string  `json:"sanitized" example:"16502530000"`
	Country   *string `json:"country" example:"US"`
	Type      *string `json:"type" example:"FIXED_OR_MOBILE"`
	Countries *string `json:"countries" example:"US"`
	CreatedAt string  `json:"created_at" example:"2023-10-01T12:00:00Z"`
}

// swagger:model ClassificationLogListResponse
type ClassificationLogListResponse struct {
	Data       []ClassificationLogDetails `json:"data"`
	Pagination PaginationDetails          `json:"pagination"`
	Message    string                     `json:"message" example:"Classification logs retrieved successfully"`
}

// swagger:model ClassificationLogSummaryResponse
type ClassificationLogSummaryResponse struct {
	Total    int64  `json:"total" example:"120"`
	Valid    int64  `json:"valid" example:"100"`
	Possible int64  `json:"possible" example:"12"`
	Invalid  int64  `json:"invalid" example:"8"`
	Message  string `json:"message" example:"Classification summary retrieved successfully"`
}

// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Countries int    `json:"countries" example:"245"`
}
