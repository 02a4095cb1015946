package repository

import (
	"rkcp-score/config"
	"rkcp-score/pkg/logger"
)

type Repository struct {
	RKCPAPIRepo RKCPAPIRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) *Repository {
	return &Repository{
		RKCPAPIRepo: NewRKCPAPIRepository(cfg, log),
	}
}
