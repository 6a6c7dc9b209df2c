package session

// RouteClass partitions the application's routes by who may reach them.
type RouteClass int

const (
	// RouteProtected covers the dashboard and its sub-pages.
	RouteProtected RouteClass = iota
	// RouteAnonymous covers login and register.
	RouteAnonymous
	// RouteForgotPassword covers the forgot-password form.
	RouteForgotPassword
	// RouteResetPassword covers the reset form, which also needs the
	// email carried over from the forgot-password step.
	RouteResetPassword
)

// Decision is the guard's verdict for one navigation.
type Decision int

const (
	// Allow renders the requested route.
	Allow Decision = iota
	// RedirectLogin sends the user to the login route.
	RedirectLogin
	// RedirectHome sends the user to the dashboard.
	RedirectHome
)

// Decide computes reachability for one navigation. It is a pure function
// of credential presence and, for the reset route, the email carried from
// the forgot-password step; it is re-evaluated on every navigation.
//
// Landing on reset-password without a carried email redirects to login on
// purpose: it keeps the form from being used to reset an arbitrary
// unverified account.
func Decide(class RouteClass, authenticated bool, resetEmail string) Decision {
	switch class {
	case RouteProtected:
		if authenticated {
			return Allow
		}
		return RedirectLogin
	case RouteAnonymous, RouteForgotPassword:
		if authenticated {
			return RedirectHome
		}
		return Allow
	case RouteResetPassword:
		if !authenticated && resetEmail != "" {
			return Allow
		}
		return RedirectLogin
	default:
		return RedirectLogin
	}
}
