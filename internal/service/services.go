package service

import (
	"github.com/abhishek/learngrow/internal/completion"
	"github.com/abhishek/learngrow/internal/config"
	"github.com/abhishek/learngrow/internal/repository"
)

type Services struct {
	Account *AccountService
	Chat    *ChatService
}

func NewServices(repos *repository.Repositories, gateway completion.Gateway, cfg *config.Config) *Services {
	return &Services{
		Account: NewAccountService(repos.User, cfg),
		Chat:    NewChatService(gateway, repos.ChatRecord),
	}
}
