package client

import (
	"context"

	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, identifier, password string) (*LoginResponse, error)
	Ping(ctx context.Context) error

	ListCategories(ctx context.Context) ([]string, error)
	ListLearnings(ctx context.Context, userID int64) ([]models.LearningItem, error)
	CreateLearning(ctx context.Context, token, title, category string) error
	DeleteLearning(ctx context.Context, token string, id int64) error

	ListSkills(ctx context.Context, token string, userID int64) ([]string, error)
	CreateSkill(ctx context.Context, token, topic string) error
	UpdateSkill(ctx context.Context, token, oldTopic, newTopic string) error
	DeleteSkill(ctx context.Context, token, topic string) error
}
