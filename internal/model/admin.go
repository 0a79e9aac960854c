package model

// AdminStats содержит агрегаты по всем признаниям.
type AdminStats struct {
	TotalProposals int   `json:"totalProposals"`
	PaidProposals  int   `json:"paidProposals"`
	TotalViews     int   `json:"totalViews"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

// AdminOverviewResponse представляет ответ внутренней админки:
// агрегаты и полный список признаний, новые сверху.
type AdminOverviewResponse struct {
	Stats     AdminStats          `json:"stats"`
	Proposals []*ProposalResponse `json:"proposals"`
}
