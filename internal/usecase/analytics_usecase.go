package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidPeriod = errors.New("invalid analytics period")

// trendWindowCap bounds the day-by-day trend loop. The "all" period trends
// over the most recent year only.
const trendWindowCap = 365

type UserMetrics struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
}

type PropertyMetrics struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"by_status"`
	ByType           map[string]int `json:"by_type"`
	ByState          map[string]int `json:"by_state"`
	VerifiedCount    int            `json:"verified_count"`
	VerificationRate float64        `json:"verification_rate"`
}

type InquiryMetrics struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ResponseRate float64        `json:"response_rate"`
}

type ActionMetrics struct {
	Total    int            `json:"total"`
	ByAction map[string]int `json:"by_action"`
}

type TrendPoint struct {
	Date       string `json:"date"`
	Users      int    `json:"users"`
	Properties int    `json:"properties"`
	Inquiries  int    `json:"inquiries"`
}

type AnalyticsSummary struct {
	NewListings    int     `json:"new_listings"`
	NewUsers       int     `json:"new_users"`
	NewInquiries   int     `json:"new_inquiries"`
	ListingGrowth  float64 `json:"listing_growth"`
	UserGrowth     float64 `json:"user_growth"`
	ModerationLoad int     `json:"moderation_load"`
}

// AnalyticsOverview is the marketplace health snapshot for one window.
type AnalyticsOverview struct {
	Period       string           `json:"period"`
	From         time.Time        `json:"from"`
	To           time.Time        `json:"to"`
	Users        UserMetrics      `json:"users"`
	Properties   PropertyMetrics  `json:"properties"`
	Inquiries    InquiryMetrics   `json:"inquiries"`
	AdminActions ActionMetrics    `json:"admin_actions"`
	Summary      AnalyticsSummary `json:"summary"`
	Trends       []TrendPoint     `json:"trends,omitempty"`
}

// IAnalyticsUseCase computes marketplace health metrics over a requested
// window. Any underlying fetch failure aborts the whole aggregation; there
// is no partial-result mode.

type IAnalyticsUseCase interface {
	Overview(ctx context.Context, period string, includeTrends bool) (AnalyticsOverview, error)
}

type AnalyticsUseCase struct {
	profiles   interfaces.IProfileRepository
	properties interfaces.IPropertyRepository
	inquiries  interfaces.IInquiryRepository
	actions    interfaces.IAdminActionRepository
	now        func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(
	profiles interfaces.IProfileRepository,
	properties interfaces.IPropertyRepository,
	inquiries interfaces.IInquiryRepository,
	actions interfaces.IAdminActionRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		profiles:   profiles,
		properties: properties,
		inquiries:  inquiries,
		actions:    actions,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// periodWindow resolves a period token to [from, to). A zero from means
// unbounded ("all").
func periodWindow(period string, now time.Time) (time.Time, time.Time, error) {
	switch period {
	case "7d":
		return now.AddDate(0, 0, -7), now, nil
	case "30d":
		return now.AddDate(0, 0, -30), now, nil
	case "90d":
		return now.AddDate(0, 0, -90), now, nil
	case "1y":
		return now.AddDate(-1, 0, 0), now, nil
	case "all":
		return time.Time{}, now, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}

func (u *AnalyticsUseCase) Overview(ctx context.Context, period string, includeTrends bool) (AnalyticsOverview, error) {
	now := u.now()
	from, to, err := periodWindow(period, now)
	if err != nil {
		return AnalyticsOverview{}, err
	}

	var (
		profiles   []entities.Profile
		properties []entities.Property
		inquiries  []entities.Inquiry
		actions    []entities.AdminAction
	)

	// Fan-out the four window fetches; the first failure cancels the rest
	// and fails the whole aggregation.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = u.profiles.ListCreatedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		properties, err = u.properties.ListCreatedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		inquiries, err = u.inquiries.ListCreatedBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		actions, err = u.actions.ListCreatedBetween(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return AnalyticsOverview{}, err
	}

	overview := AnalyticsOverview{
		Period:       period,
		From:         from,
		To:           to,
		Users:        reduceUsers(profiles),
		Properties:   reduceProperties(properties),
		Inquiries:    reduceInquiries(inquiries),
		AdminActions: reduceActions(actions),
	}

	overview.Summary = AnalyticsSummary{
		NewListings:    overview.Properties.Total,
		NewUsers:       overview.Users.Total,
		NewInquiries:   overview.Inquiries.Total,
		ModerationLoad: overview.AdminActions.Total,
	}

	// Growth compares this window to the previous window of equal length.
	// Meaningless for "all", which has no previous window.
	if !from.IsZero() {
		prevFrom := from.Add(-to.Sub(from))
		var prevProps, prevUsers int
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			prevProps, err = u.properties.CountCreatedBetween(gctx, prevFrom, from)
			return err
		})
		g.Go(func() error {
			var err error
			prevUsers, err = u.profiles.CountCreatedBetween(gctx, prevFrom, from)
			return err
		})
		if err := g.Wait(); err != nil {
			return AnalyticsOverview{}, err
		}
		overview.Summary.ListingGrowth = growthRate(overview.Properties.Total, prevProps)
		overview.Summary.UserGrowth = growthRate(overview.Users.Total, prevUsers)
	}

	if includeTrends {
		trends, err := u.trends(ctx, from, to)
		if err != nil {
			return AnalyticsOverview{}, err
		}
		overview.Trends = trends
	}

	return overview, nil
}

// trends walks the window one day at a time, issuing a count query per
// entity per day. Deliberately naive: window sizes are bounded and this
// path is not latency-sensitive.
func (u *AnalyticsUseCase) trends(ctx context.Context, from, to time.Time) ([]TrendPoint, error) {
	days := trendWindowCap
	if !from.IsZero() {
		if d := int(to.Sub(from).Hours() / 24); d < days {
			days = d
		}
	}

	points := make([]TrendPoint, 0, days)
	for i := days; i > 0; i-- {
		dayStart := to.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		users, err := u.profiles.CountCreatedBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		properties, err := u.properties.CountCreatedBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		inquiries, err := u.inquiries.CountCreatedBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		points = append(points, TrendPoint{
			Date:       dayStart.Format("2006-01-02"),
			Users:      users,
			Properties: properties,
			Inquiries:  inquiries,
		})
	}
	return points, nil
}

func reduceUsers(profiles []entities.Profile) UserMetrics {
	m := UserMetrics{Total: len(profiles), ByType: map[string]int{}}
	for _, p := range profiles {
		m.ByType[string(p.UserType)]++
	}
	return m
}

func reduceProperties(props []entities.Property) PropertyMetrics {
	m := PropertyMetrics{
		Total:    len(props),
		ByStatus: map[string]int{},
		ByType:   map[string]int{},
		ByState:  map[string]int{},
	}
	for _, p := range props {
		m.ByStatus[string(p.Status)]++
		m.ByType[string(p.PropertyType)]++
		m.ByState[p.State]++
		if p.Verification == entities.VerificationStatusVerified {
			m.VerifiedCount++
		}
	}
	m.VerificationRate = ratio(m.VerifiedCount, m.Total)
	return m
}

func reduceInquiries(inquiries []entities.Inquiry) InquiryMetrics {
	m := InquiryMetrics{Total: len(inquiries), ByStatus: map[string]int{}}
	handled := 0
	for _, i := range inquiries {
		m.ByStatus[string(i.Status)]++
		if i.Status != entities.InquiryStatusPending {
			handled++
		}
	}
	m.ResponseRate = ratio(handled, m.Total)
	return m
}

func reduceActions(actions []entities.AdminAction) ActionMetrics {
	m := ActionMetrics{Total: len(actions), ByAction: map[string]int{}}
	for _, a := range actions {
		m.ByAction[string(a.Action)]++
	}
	return m
}

// ratio guards against division by zero.
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// growthRate compares the current window count to the previous one.
func growthRate(current, previous int) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 1
	}
	return float64(current-previous) / float64(previous)
}
