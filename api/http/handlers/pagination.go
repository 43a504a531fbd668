package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/taskmanager/pkg/task"
)

// parsePageLimit reads ?page and ?limit. Non-numeric values fall back to the
// defaults and anything below 1 is raised to 1.
func parsePageLimit(c *fiber.Ctx) (page, limit int) {
	return atLeastOne(c.Query("page"), task.DefaultPage), atLeastOne(c.Query("limit"), task.DefaultLimit)
}

func atLeastOne(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return def
	}
	return max(n, 1)
}
