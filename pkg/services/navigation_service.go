package services

import (
	"context"

	"github.com/samber/lo"

	"github.com/xdpzq/devcore/pkg/auth"
	"github.com/xdpzq/devcore/pkg/domain"
)

// authGatedPages require a logged-in user.
var authGatedPages = []domain.Page{
	domain.PageTerminal,
	domain.PageHistory,
	domain.PageCodeView,
}

// maintenanceExemptPages stay reachable for everyone during maintenance,
// so an admin can still get to the login form.
var maintenanceExemptPages = []domain.Page{
	domain.PageHome,
	domain.PageLogin,
	domain.PageMaintenance,
}

type navigationService struct {
	settings SettingsRepository
}

func NewNavigationService(settings SettingsRepository) *navigationService {
	return &navigationService{settings: settings}
}

// Navigate resolves a requested page against the gating rules and records
// the outcome on the session. Maintenance wins over the auth gate.
func (n *navigationService) Navigate(ctx context.Context, sess *auth.Session, target domain.Page) (domain.Page, error) {
	if !target.Valid() {
		return "", domain.ErrUnknownPage
	}

	settings, err := n.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	resolved := n.resolve(sess, settings, target)
	sess.SetPage(resolved)
	return resolved, nil
}

func (n *navigationService) resolve(sess *auth.Session, settings domain.GlobalSettings, target domain.Page) domain.Page {
	user := sess.User()

	if settings.MaintenanceMode && !sess.IsAdmin() && !lo.Contains(maintenanceExemptPages, target) {
		return domain.PageMaintenance
	}
	if user == nil && lo.Contains(authGatedPages, target) {
		return domain.PageLogin
	}
	if target == domain.PageAdmin && !sess.IsAdmin() {
		return domain.PageHome
	}
	return target
}
