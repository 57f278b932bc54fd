package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tutor_market/constants"
	"tutor_market/service"
	"tutor_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const statisticCacheTTL = 5 * time.Minute

// StatisticHandler cache kết quả thống kê trong redis, TTL 5 phút.
// Cache nil thì luôn tính lại từ DB.
type StatisticHandler struct {
	stats *service.StatisticService
	cache *redis.Client
}

func NewStatisticHandler(stats *service.StatisticService, cache *redis.Client) *StatisticHandler {
	return &StatisticHandler{stats: stats, cache: cache}
}

// respondCached trả về bản cache nếu có, không thì tính và lưu lại.
func (h *StatisticHandler) respondCached(c *fiber.Ctx, key string, compute func() (any, error)) error {
	ctx := context.Background()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, key).Result(); err == nil {
			return utils.SuccessResponse(c, fiber.StatusOK, json.RawMessage(cached))
		}
	}

	data, err := compute()
	if err != nil {
		if errors.Is(err, service.ErrInvalidYear) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.YEAR_INVALID, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if h.cache != nil {
		if raw, err := json.Marshal(data); err == nil {
			h.cache.Set(ctx, key, raw, statisticCacheTTL)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, data)
}

func (h *StatisticHandler) MonthlyRevenue(c *fiber.Ctx) error {
	year, ok := c.Locals("inputYear").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse year fail"))
	}

	key := fmt.Sprintf("statistic:revenue:%d", year)
	return h.respondCached(c, key, func() (any, error) {
		return h.stats.MonthlyRevenue(year)
	})
}

func (h *StatisticHandler) AccountStatus(c *fiber.Ctx) error {
	return h.respondCached(c, "statistic:accounts:status", func() (any, error) {
		return h.stats.AccountStatusStats()
	})
}

func (h *StatisticHandler) CourseStatus(c *fiber.Ctx) error {
	return h.respondCached(c, "statistic:courses:status", func() (any, error) {
		return h.stats.CourseStatusStats()
	})
}

func (h *StatisticHandler) TopAccount(c *fiber.Ctx) error {
	top, err := h.stats.TopAccount()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if top == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_TOP_PERFORMER, errors.New("no finished course"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, top)
}

func (h *StatisticHandler) TopTutor(c *fiber.Ctx) error {
	top, err := h.stats.TopTutor()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if top == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_TOP_PERFORMER, errors.New("no finished course"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, top)
}

func (h *StatisticHandler) Overview(c *fiber.Ctx) error {
	return h.respondCached(c, "statistic:overview", func() (any, error) {
		return h.stats.Overview()
	})
}
