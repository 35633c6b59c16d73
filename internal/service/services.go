package service

import (
	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/store"
)

type Services struct {
	AuthService AuthService
	PostService PostService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		PostService: NewPostService(repositories.PostRepository, logger),
	}
}
