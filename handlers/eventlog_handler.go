// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"numclass-server/db"
	"numclass-server/models"
	"numclass-server/phone"

	"github.com/labstack/echo/v4"
)

func CreateClassificationLogs(logs []models.ClassificationLog) error {
	if db.Conn == nil || len(logs) == 0 {
		return nil
	}
	if err := db.Conn.CreateInBatches(&logs, 100).Error; err != nil {
		return fmt.Errorf("failed to create classification logs: %w", err)
	}
	return nil
}

func NewClassificationLog(source models.ClassificationSource, apiKeyID *uint, p *phone.Phone) models.ClassificationLog {
	entry := models.ClassificationLog{
		Source:    source,
		Status:    classificationStatus(p),
		Sanitized: p.Sanitized(),
		APIKeyID:  apiKeyID,
	}
	if country, ok := p.Country(); ok {
		entry.Country = &country
		countries := strings.Join(p.Countries(), ",")
		entry.Countries = &countries
	}
	if t, ok := p.Type(); ok {
		typ := t.String()
		entry.Type = &typ
	}
	return entry
}

func classificationStatus(p *phone.Phone) models.ClassificationStatus {
	switch {
	case p.Valid():
		return models.Valid
	case p.Possible():
		return models.Possible
	default:
		return models.Invalid
	}
}

// recordClassifications never fails the request; audit failures are logged.
func recordClassifications(logger echo.Logger, source models.ClassificationSource, apiKeyID *uint, phones ...*phone.Phone) {
	logs := make([]models.ClassificationLog, 0, len(phones))
	for _, p := range phones {
		logs = append(logs, NewClassificationLog(source, apiKeyID, p))
	}
	if err := CreateClassificationLogs(logs); err != nil {
		logger.Error(err)
	}
}

// GetClassificationLogsHandler godoc
// @Summary      Get classification logs
// @Description  Retrieves recorded classifications, newest first.
// @Tags         event-logs
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key."  default(Bearer <your_api_key_here>)
// @Param        page       query   int     false  "Page number (default 1)"
// @Param        page_size  query   int     false  "Page size (default 10, max 100)"
// @Param        status     query   string  false  "VALID, POSSIBLE or INVALID"
// @Success      200 {object} ClassificationLogListResponse "Paginated list of classification logs"
// @Failure      400 {object} echo.HTTPError     "Bad request, unknown status filter"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired API key"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/event-logs [get]
func GetClassificationLogsHandler(c echo.Context) error {
	logger := c.Logger()

	if db.Conn == nil {
		logger.Error("Database not initialized.")
		return echo.ErrInternalServerError
	}

	page, pageSize := parsePagination(c)

	query := db.Conn.Model(&models.ClassificationLog{})
	if status := strings.ToUpper(c.QueryParam("status")); status != "" {
		switch models.ClassificationStatus(status) {
		case models.Valid, models.Possible, models.Invalid:
			query = query.Where("status = ?", status)
		default:
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "status must be one of VALID, POSSIBLE, INVALID",
			}
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Errorf("Failed to count classification logs: %v", err)
		return echo.ErrInternalServerError
	}

	offset := (page - 1) * pageSize
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	var logs []models.ClassificationLog
	if err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&logs).Error; err != nil {
		logger.Errorf("Failed to fetch classification logs: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]ClassificationLogDetails, 0, len(logs))
	for _, l := range logs {
		details = append(details, ClassificationLogDetails{
			EID:       l.EID.String(),
			Source:    string(l.Source),
			Status:    string(l.Status),
			Sanitized: l.Sanitized,
			Country:   l.Country,
			Type:      l.Type,
			Countries: l.Countries,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, ClassificationLogListResponse{
		Data: details,
		Pagination: PaginationDetails{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Message: "Classification logs retrieved successfully",
	})
}

// GetClassificationLogsSummaryHandler godoc
// @Summary      Get classification summary
// @Description  Counts recorded classifications by status.
// @Tags         event-logs
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer API key."  default(Bearer <your_api_key_here>)
// @Success      200 {object} ClassificationLogSummaryResponse "Classification counts"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired API key"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/event-logs/summary [get]
func GetClassificationLogsSummaryHandler(c echo.Context) error {
	logger := c.Logger()

	if db.Conn == nil {
		logger.Error("Database not initialized.")
		return echo.ErrInternalServerError
	}

	var rows []struct {
		Status models.ClassificationStatus
		Count  int64
	}
	if err := db.Conn.Model(&models.ClassificationLog{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		logger.Errorf("Failed to summarize classification logs: %v", err)
		return echo.ErrInternalServerError
	}

	resp := ClassificationLogSummaryResponse{Message: "Classification summary retrieved successfully"}
	for _, r := range rows {
		resp.Total += r.Count
		switch r.Status {
		case models.Valid:
			resp.Valid = r.Count
		case models.Possible:
			resp.Possible = r.Count
		case models.Invalid:
			resp.Invalid = r.Count
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func parsePagination(c echo.Context) (int, int) {
	page := 1
	pageSize := 10
	if p := c.QueryParam("page"); p != "" {
		if _, err := fmt.Sscanf(p, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}
	if ps := c.QueryParam("page_size"); ps != "" {
		if _, err := fmt.Sscanf(ps, "%d", &pageSize); err != nil || pageSize < 1 {
			pageSize = 10
		}
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
