package usecases

import (
	"chatwidget/internal/entities"
	"chatwidget/internal/repository"
)

// DashboardUsecase backs the business admin dashboard: custom response
// management, widget settings, conversation browsing and analytics. All
// operations are scoped to one business.
type DashboardUsecase struct {
	responseRepo *repository.ResponseRepository
	settingsRepo *repository.SettingsRepository
	sessionRepo  *repository.SessionRepository
	statsRepo    *repository.StatsRepository
}

func NewDashboardUsecase(responseRepo *repository.ResponseRepository, settingsRepo *repository.SettingsRepository, sessionRepo *repository.SessionRepository, statsRepo *repository.StatsRepository) *DashboardUsecase {
	return &DashboardUsecase{
		responseRepo: responseRepo,
		settingsRepo: settingsRepo,
		sessionRepo:  sessionRepo,
		statsRepo:    statsRepo,
	}
}

// Custom Response Management
func (u *DashboardUsecase) ListResponses(businessID int) ([]entities.CustomResponse, error) {
	return u.responseRepo.ListByBusiness(businessID)
}

func (u *DashboardUsecase) CreateResponse(resp *entities.CustomResponse) error {
	return u.responseRepo.Create(resp)
}

func (u *DashboardUsecase) UpdateResponse(resp *entities.CustomResponse) error {
	return u.responseRepo.Update(resp)
}

func (u *DashboardUsecase) DeleteResponse(id, businessID int) error {
	return u.responseRepo.Delete(id, businessID)
}

func (u *DashboardUsecase) GetResponse(id int) (*entities.CustomResponse, error) {
	return u.responseRepo.GetByID(id)
}

// Widget Settings
func (u *DashboardUsecase) GetAllSettings(businessID int) ([]repository.WidgetSetting, error) {
	return u.settingsRepo.All(businessID)
}

func (u *DashboardUsecase) SetSetting(businessID int, key, value string) error {
	return u.settingsRepo.Set(businessID, key, value)
}

// Conversations
func (u *DashboardUsecase) ListSessions(businessID, limit int) ([]entities.ChatSession, error) {
	return u.sessionRepo.ListByBusiness(businessID, limit)
}

func (u *DashboardUsecase) GetSessionTranscript(sessionID, businessID int) ([]entities.Message, error) {
	session, err := u.sessionRepo.GetForBusiness(sessionID, businessID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return u.sessionRepo.History(sessionID)
}

// Analytics
func (u *DashboardUsecase) GetStats(businessID int) (*repository.BusinessStats, error) {
	return u.statsRepo.GetBusinessStats(businessID)
}

func (u *DashboardUsecase) GetDailyActivity(businessID, days int) ([]repository.DailyActivity, error) {
	return u.statsRepo.GetDailyActivity(businessID, days)
}
