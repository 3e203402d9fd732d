package analyticsService

import (
	"context"

	"github.com/sirupsen/logrus"

	"PersonalFinance/internal/api/analytics"
	analyticsRepository "PersonalFinance/internal/api/analytics/repository"
	"PersonalFinance/internal/entity"
	"PersonalFinance/pkg/utils"
)

type IAnalyticsService interface {
	GetReport(ctx context.Context, query analytics.ReportQuery) (entity.Report, error)
}

type analyticsService struct {
	log                 *logrus.Logger
	analyticsRepository analyticsRepository.Repository
	utils               utils.IUtils
}

func New(log *logrus.Logger, ar analyticsRepository.Repository, utils utils.IUtils) IAnalyticsService {
	return &analyticsService{
		log:                 log,
		analyticsRepository: ar,
		utils:               utils,
	}
}
