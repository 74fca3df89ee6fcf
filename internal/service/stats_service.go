package service

import (
	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/repository"
)

type StatsService interface {
	Dashboard() (*dto.DashboardStats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Dashboard() (*dto.DashboardStats, error) {
	return s.statsRepo.DashboardStats()
}
