// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"numclass-server/commons"
	"numclass-server/phone"

	"github.com/labstack/echo/v4"
)

// GetCountriesHandler godoc
// @Summary      List numbering plans
// @Description  Lists the loaded numbering plans in table order, which is also the order countries are reported in.
// @Tags         countries
// @Produce      json
// @Success      200 {object} CountryListResponse "Loaded numbering plans"
// @Failure      503 {object} echo.HTTPError     "Numbering plans not loaded"
// @Router       /v1/countries [get]
func GetCountriesHandler(c echo.Context) error {
	if commons.Plans == nil {
		c.Logger().Error("Numbering plans not loaded.")
		return echo.ErrServiceUnavailable
	}

	data := countryDetails(commons.Plans.Table)
	return c.JSON(http.StatusOK, CountryListResponse{
		Data:    data,
		Count:   len(data),
		Message: "Countries retrieved successfully",
	})
}

// GetCountryHandler godoc
// @Summary      Get a numbering plan
// @Description  Returns every plan registered under the given id.
// @Tags         countries
// @Produce      json
// @Param        country_id  path  string  true  "Country or region identifier"
// @Success      200 {object} CountryListResponse "Matching numbering plans"
// @Failure      404 {object} echo.HTTPError     "Country not found"
// @Failure      503 {object} echo.HTTPError     "Numbering plans not loaded"
// @Router       /v1/countries/{country_id} [get]
func GetCountryHandler(c echo.Context) error {
	if commons.Plans == nil {
		c.Logger().Error("Numbering plans not loaded.")
		return echo.ErrServiceUnavailable
	}

	entries := commons.Plans.LookupByID(c.Param("country_id"))
	if len(entries) == 0 {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Country not found",
		}
	}

	data := countryDetails(entries)
	return c.JSON(http.StatusOK, CountryListResponse{
		Data:    data,
		Count:   len(data),
		Message: "Countries retrieved successfully",
	})
}

// HealthHandler reports readiness once numbering plans are loaded.
func HealthHandler(c echo.Context) error {
	if commons.Plans == nil {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "loading"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Countries: len(commons.Plans.Table)})
}

func countryDetails(entries []phone.CountryMetadata) []CountryDetails {
	data := make([]CountryDetails, 0, len(entries))
	for _, e := range entries {
		types := []phone.Tag{}
		for _, tag := range phone.Tags() {
			if _, ok := e.Types[tag]; ok {
				types = append(types, tag)
			}
		}
		data = append(data, CountryDetails{
			ID:          e.ID,
			CountryCode: e.DialingCodePrefix,
			Types:       types,
		})
	}
	return data
}
