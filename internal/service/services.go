package service

import (
	"github.com/evan/sports-club-website/internal/config"
	"github.com/evan/sports-club-website/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Program     *ProgramService
	Coach       *CoachService
	Testimonial *TestimonialService
	Tournament  *TournamentService
	Page        *PageService
	Global      *GlobalService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, repos.Session, cfg),
		Program:     NewProgramService(repos.Program, cfg),
		Coach:       NewCoachService(repos.Coach, cfg),
		Testimonial: NewTestimonialService(repos.Testimonial, cfg),
		Tournament:  NewTournamentService(repos.Tournament, cfg),
		Page:        NewPageService(repos.Page),
		Global:      NewGlobalService(repos.Global),
	}
}
