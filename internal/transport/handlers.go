package transport

import (
	"github.com/ds124wfegd/tomato-gateway/internal/service"
)

type ClassificationHandler struct {
	service service.ClassificationService
}

func NewClassificationHandler(service service.ClassificationService) *ClassificationHandler {
	return &ClassificationHandler{service: service}
}

type SystemHandler struct {
	stats  service.StatsService
	health service.HealthService
}

func NewSystemHandler(stats service.StatsService, health service.HealthService) *SystemHandler {
	return &SystemHandler{stats: stats, health: health}
}
