package store

import (
	"github.com/postboard/postboard/internal/logger"
)

type Repositories struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
	}
}
