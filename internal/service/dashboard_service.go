package service

import (
	"context"

	"boxpoint-api/internal/repository"
)

type DashboardStats struct {
	repository.ProductStats
	TotalCategories int64 `json:"total_categories"`
	TotalImages     int64 `json:"total_images"`
}

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	imageRepo    repository.ImageRepository
}

func NewDashboardService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, iRepo repository.ImageRepository) DashboardService {
	return &dashboardService{productRepo: pRepo, categoryRepo: cRepo, imageRepo: iRepo}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	productStats, err := s.productRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	images, err := s.imageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ProductStats:    *productStats,
		TotalCategories: categories,
		TotalImages:     images,
	}, nil
}
