package dto

import "bordados-backend/pkg/types"

type DashboardStatsDTO struct {
	CountByStatus []types.DashboardCountByStatus   `json:"count_by_status"`
	Monthly       []types.DashboardMonthlyPoint    `json:"monthly"`
	ByServiceType []types.DashboardServiceTypeStat `json:"by_service_type"`
	Delays        *types.DashboardDelayStats       `json:"delays"`
	TopClients    []types.DashboardTopClient       `json:"top_clients"`
}
