package handler

import (
	"context"
	"encoding/json"
	"event_manager/constants"
	"event_manager/database"
	"event_manager/helper"
	"event_manager/model"
	"event_manager/utils"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const analyticsCacheTTL = 5 * time.Minute

// GetAnalytics returns the full dashboard: overview, per-event
// performance, daily trends, department breakdown, payment mix and the
// trailing-12-months comparison, with derived rates. Results are cached
// per scope; cache problems are ignored, store problems degrade the
// views to zero values.
func GetAnalytics(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	filterInput := c.Locals("filter").(model.FilterTicketInput)
	scope := scopeFromFilter(claim.AccountId, filterInput)

	cacheKey := analyticsCacheKey(scope)
	ctx := context.Background()

	if redisClient != nil {
		if cached, err := redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
			var report utils.AnalyticsReport
			if err := json.Unmarshal(cached, &report); err == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, report)
			}
		}
	}

	report := utils.BuildAnalyticsReport(database.DB, scope)

	if redisClient != nil {
		if payload, err := json.Marshal(report); err == nil {
			if err := redisClient.Set(ctx, cacheKey, payload, analyticsCacheTTL).Err(); err != nil {
				log.Printf("analytics cache write failed: %v", err)
			}
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func analyticsCacheKey(scope utils.TicketScope) string {
	from, to := "", ""
	if scope.From != nil {
		from = scope.From.Format("2006-01-02")
	}
	if scope.To != nil {
		to = scope.To.Format("2006-01-02")
	}
	checkedIn := ""
	if scope.CheckedIn != nil {
		checkedIn = fmt.Sprintf("%t", *scope.CheckedIn)
	}
	return fmt.Sprintf("analytics:%d:%d:%s:%s:%s:%s",
		scope.OrganizerId, scope.EventId, scope.Status, checkedIn, from, to)
}
